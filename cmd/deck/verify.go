package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-deck/pkg/deck"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file.pptx>",
	Short: "Check the package structure of a presentation",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().Bool("json", false, "print the report as JSON")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	report, err := deck.VerifyFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "%s: %d parts, %d slides\n", report.Path, report.Parts, report.Slides)
		for _, issue := range report.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
	}

	if !report.OK() {
		return fmt.Errorf("%s: %d issues found", report.Path, len(report.Issues))
	}
	return nil
}
