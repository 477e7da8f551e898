package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benjaminschreck/go-deck/internal/config"
	"github.com/benjaminschreck/go-deck/pkg/deck"
)

// appConfig is loaded before any subcommand runs.
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:               "deck",
	Short:             "Build PowerPoint presentations from deck files",
	Long:              "deck turns a TOML or JSON list of slides into a standalone .pptx archive, and can verify, watch and serve them.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .deck.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error or off")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".deck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	deck.SetGlobalConfig(cfg.Deck())
	return nil
}

// outputPath returns the -o flag of cmd, falling back to the configured
// output.
func outputPath(cmd *cobra.Command) string {
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return out
	}
	return appConfig.Output
}
