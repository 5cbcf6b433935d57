package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot and the keep-alive endpoint",
	Long: `Long-polls Telegram for commands in the configured chat and answers
GET / on http_addr so hosting platforms can keep the process awake.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(os.Stderr)
		if err != nil {
			return err
		}
		if cfg.TelegramToken == "" {
			return errors.New("telegram_token is not set; run 'archivist bot telegram' first")
		}

		s, store, err := openSession(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           keepAliveHandler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			slog.Info("keep-alive listening", "addr", cfg.HTTPAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("keep-alive server failed", "error", err)
			}
		}()

		err = newBot(cfg, s).Start(ctx)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if serr := srv.Shutdown(shutdownCtx); serr != nil {
			slog.Warn("keep-alive shutdown", "error", serr)
		}
		return err
	},
}

func keepAliveHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "Bot is awake."})
	})
	return mux
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
