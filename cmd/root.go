package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bravoman80000/Country-Sim-Bot/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "archivist",
	Short: "The Archivist keeps the ledger of nations, wars and turns",
	Long: `The Archivist is a game-master assistant for play-by-chat grand strategy.
It records countries and their stats, declares and resolves wars, and keeps
the year/turn clock, answering slash commands from Telegram or a local console.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	config.SetDefaults(viper.GetViper())

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.archivist.yaml)")
	flags.String("data_dir", "./data", "directory holding the world documents")
	flags.String("store", "json", "document store: json or sqlite")
	flags.String("log_level", "info", "log level: debug, info, warn or error")
	for _, name := range []string{"data_dir", "store", "log_level"} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".archivist")
	}
	config.BindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}
