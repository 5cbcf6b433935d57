package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bravoman80000/Country-Sim-Bot/internal/session"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive operator console",
	Long: `Opens a console on the configured world where the local operator acts as GM.
Usage:
	> /declarewar name: Italian Wars attacker: France defender: Venice`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		withBot, _ := cmd.Flags().GetBool("telegram")

		cfg, err := loadConfig(os.Stderr)
		if err != nil {
			return err
		}
		s, store, err := openSession(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		// The console owns the terminal; logs go to a file beside the documents.
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return err
		}
		logPath := filepath.Join(cfg.DataDir, "archivist.log")
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
		if _, err := loadConfig(logFile); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		if withBot && cfg.TelegramToken != "" {
			bot := newBot(cfg, s)
			go func() {
				if err := bot.Start(ctx); err != nil {
					slog.Error("telegram bot stopped", "error", err)
				}
			}()
			fmt.Printf("[Telegram Bot] Active for chat %d\n", cfg.TelegramChatID)
		}

		operator := session.Actor{ID: "console", Name: "operator", IsGM: true}
		source := fmt.Sprintf("%s store @ %s", cfg.Store, cfg.DataDir)
		if err := RunTUI(ctx, s, operator, source); err != nil {
			return fmt.Errorf("console failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("telegram", false, "also run the Telegram bot in the background when configured")
}
