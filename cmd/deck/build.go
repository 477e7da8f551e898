package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-deck/pkg/deck"
)

var buildCmd = &cobra.Command{
	Use:   "build <deck>",
	Short: "Write a presentation from a deck file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output .pptx path (default from config)")
	buildCmd.Flags().String("title", "", "document title, overriding the deck")
	buildCmd.Flags().String("creator", "", "document author, overriding the deck")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	result, err := deck.BuildFile(args[0], outputPath(cmd), buildOptions(cmd)...)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d slides, %d bytes)\n", result.Path, result.Slides, result.Bytes)
	return nil
}

func buildOptions(cmd *cobra.Command) []deck.Option {
	var opts []deck.Option
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		opts = append(opts, deck.WithTitle(title))
	}
	if creator, _ := cmd.Flags().GetString("creator"); creator != "" {
		opts = append(opts, deck.WithCreator(creator))
	}
	return opts
}
