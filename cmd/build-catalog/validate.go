// Validate command: run ingestion and schema validation without exporting.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate topic records without exporting",
	Long: `Validate loads every topic record, runs schema validation, and checks
for duplicate ids. No snapshot is written. The exit code is 1 when any
record is rejected, so the command slots into CI and pre-commit hooks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runPipeline(cmd.Context())
		if err != nil {
			return err
		}
		report := result.Report
		// Audit findings are out of scope here; validate is the
		// blocking-errors-only view.
		report.Audit = nil

		if flagJSON {
			printJSON(report)
		} else {
			report.WriteSummary(os.Stdout, false)
		}
		if report.Blocking(false) {
			os.Exit(exitUserError)
		}
		return nil
	},
}
