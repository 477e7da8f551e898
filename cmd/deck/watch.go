package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-deck/internal/watch"
	"github.com/benjaminschreck/go-deck/pkg/deck"
)

var watchCmd = &cobra.Command{
	Use:   "watch <deck>",
	Short: "Rebuild a presentation whenever its deck file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringP("output", "o", "", "output .pptx path (default from config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	deckPath, out := args[0], outputPath(cmd)

	w, err := watch.New(deckPath, appConfig.Watch.Debounce)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s -> %s (ctrl-c to stop)\n", deckPath, out)
	return w.Run(ctx, func() error {
		_, err := deck.BuildFile(deckPath, out)
		return err
	})
}
