package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	botToken  string
	botChatID string
	botGMs    []int64
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Manage chat bot configuration",
}

var telegramBotCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Register the Telegram bot token, chat and GMs",
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := bufio.NewScanner(os.Stdin)
		prompt := func(label string) string {
			fmt.Print(label)
			if scanner.Scan() {
				return strings.TrimSpace(scanner.Text())
			}
			return ""
		}

		if botToken == "" && viper.GetString("telegram_token") == "" {
			fmt.Println("---")
			fmt.Println("Create your Telegram Bot & Get Token")
			fmt.Println("Open Telegram and search for the official @BotFather.")
			fmt.Println("Send the /newbot command and follow the prompts to name your bot and choose a unique username.")
			fmt.Println("BotFather will provide you with an HTTP API token. It is required for all API interactions.")
			fmt.Println("Disable privacy mode in BotFather's settings so the bot can read every command in the group.")
			fmt.Println("---")
			botToken = prompt("token: ")
		}
		if botChatID == "" && viper.GetInt64("telegram_chat_id") == 0 {
			fmt.Println("---")
			fmt.Println("How to get your Telegram Chat ID:")
			fmt.Println("1. Add your bot to the group.")
			fmt.Println("2. Send a message in the group (e.g., /checkturn).")
			fmt.Println("3. Access https://api.telegram.org/bot<TOKEN>/getUpdates in your browser.")
			fmt.Println("4. Look for the 'chat' object and its 'id' field (it usually starts with a minus sign).")
			fmt.Println("---")
			botChatID = prompt("chat_id: ")
		}

		if botToken != "" {
			viper.Set("telegram_token", botToken)
		}
		if botChatID != "" {
			id, err := strconv.ParseInt(botChatID, 10, 64)
			if err != nil {
				return fmt.Errorf("chat id %q: %w", botChatID, err)
			}
			viper.Set("telegram_chat_id", id)
		}
		if len(botGMs) > 0 {
			viper.Set("gm_users", botGMs)
		}

		path, err := writeConfig()
		if err != nil {
			return fmt.Errorf("error saving configuration: %w", err)
		}
		fmt.Printf("Telegram configuration saved to %s\n", path)
		fmt.Printf("Admins titled %q are GMs; run 'archivist serve' to start.\n", viper.GetString("gm_role"))
		return nil
	},
}

// writeConfig saves viper's settings to the file in use, creating
// $HOME/.archivist.yaml when there is none yet.
func writeConfig() (string, error) {
	if err := viper.WriteConfig(); err == nil {
		return viper.ConfigFileUsed(), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(home, ".archivist.yaml")
	if err := viper.WriteConfigAs(path); err != nil {
		return "", err
	}
	viper.SetConfigFile(path)
	return path, nil
}

func init() {
	rootCmd.AddCommand(botCmd)
	botCmd.AddCommand(telegramBotCmd)

	telegramBotCmd.Flags().StringVarP(&botToken, "token", "t", "", "Telegram bot API token")
	telegramBotCmd.Flags().StringVarP(&botChatID, "chat_id", "c", "", "Telegram group chat ID")
	telegramBotCmd.Flags().Int64SliceVarP(&botGMs, "gm", "g", nil, "Telegram user ids always allowed to run GM commands")
}
