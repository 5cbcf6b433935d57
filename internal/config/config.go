// Package config decodes the Archivist's settings from viper.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/persistence"
)

// EnvPrefix prefixes environment overrides, e.g. ARCHIVIST_TELEGRAM_TOKEN.
const EnvPrefix = "ARCHIVIST"

// Config is the full set of runtime settings.
type Config struct {
	DataDir    string   `mapstructure:"data_dir"`
	Store      string   `mapstructure:"store"`
	SQLitePath string   `mapstructure:"sqlite_path"`
	GMRole     string   `mapstructure:"gm_role"`
	GMUsers    []int64  `mapstructure:"gm_users"`
	Calendar   Calendar `mapstructure:"calendar"`

	TelegramToken  string `mapstructure:"telegram_token"`
	TelegramChatID int64  `mapstructure:"telegram_chat_id"`

	HTTPAddr string `mapstructure:"http_addr"`
	LogLevel string `mapstructure:"log_level"`
	// DiceSeed replays a fixed sequence of rolls when non-zero.
	DiceSeed int64 `mapstructure:"dice_seed"`
}

// Calendar is the starting point used before any turn has been saved.
type Calendar struct {
	StartYear int `mapstructure:"start_year"`
	StartTurn int `mapstructure:"start_turn"`
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "./data")
	v.SetDefault("store", persistence.DriverJSON)
	v.SetDefault("sqlite_path", "")
	v.SetDefault("gm_role", "GM (Game Manager)")
	v.SetDefault("gm_users", []int64{})
	v.SetDefault("calendar.start_year", 1444)
	v.SetDefault("calendar.start_turn", 1)
	v.SetDefault("telegram_token", "")
	v.SetDefault("telegram_chat_id", 0)
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("dice_seed", 0)
}

// BindEnv makes ARCHIVIST_* variables override file settings.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the rest of the program cannot honour.
func (c Config) Validate() error {
	switch c.Store {
	case persistence.DriverJSON, persistence.DriverSQLite:
	default:
		return fmt.Errorf("store %q: want %q or %q", c.Store, persistence.DriverJSON, persistence.DriverSQLite)
	}
	if c.Calendar.StartTurn < 1 || c.Calendar.StartTurn > 4 {
		return fmt.Errorf("calendar.start_turn %d: must be between 1 and 4", c.Calendar.StartTurn)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// StoreOptions selects the document store.
func (c Config) StoreOptions() persistence.Options {
	return persistence.Options{Driver: c.Store, DataDir: c.DataDir, SQLitePath: c.SQLitePath}
}

// DataDirs lists where tier and chronicle overrides are looked up.
func (c Config) DataDirs() []string {
	return []string{c.DataDir, filepath.Join(c.DataDir, "rules")}
}

// StartCalendar is the calendar used when none has been saved.
func (c Config) StartCalendar() data.Calendar {
	return data.Calendar{Year: c.Calendar.StartYear, Turn: c.Calendar.StartTurn}
}

// ParseLevel maps a log_level setting to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", s, err)
	}
	return l, nil
}
