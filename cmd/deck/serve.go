package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benjaminschreck/go-deck/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve deck building and verification over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(appConfig.Server).ListenAndServe(ctx)
}
