package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/bravoman80000/Country-Sim-Bot/internal/config"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/persistence"
	"github.com/bravoman80000/Country-Sim-Bot/internal/session"
	"github.com/bravoman80000/Country-Sim-Bot/internal/telegram"
)

// loadConfig decodes the settings and installs the default logger writing
// to w.
func loadConfig(w io.Writer) (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, err
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return cfg, nil
}

// openSession opens the configured store and binds a session to it. The
// caller closes the store.
func openSession(cfg config.Config) (*session.Session, persistence.Store, error) {
	store, err := persistence.Open(cfg.StoreOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}

	var dice engine.Source
	if cfg.DiceSeed != 0 {
		dice = engine.NewSeededSource(cfg.DiceSeed)
	}
	s, err := session.New(store, session.Options{
		DataDirs:        cfg.DataDirs(),
		DefaultCalendar: cfg.StartCalendar(),
		Dice:            dice,
	})
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return s, store, nil
}

// newBot wires the Telegram worker to a session. The update offset is kept
// in the active config file.
func newBot(cfg config.Config, s *session.Session) *telegram.Bot {
	client := telegram.NewClient(cfg.TelegramToken)
	auth := telegram.NewAuthorizer(client, cfg.GMRole, cfg.GMUsers, slog.Default())
	return telegram.NewBot(client, s, auth, telegram.Options{
		ChatID: cfg.TelegramChatID,
		State:  viper.GetViper(),
	})
}
