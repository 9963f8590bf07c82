// Audit command: report content quality findings without exporting.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report link and language-tag findings",
	Long: `Audit runs the quality checks over every registered topic: malformed
resource URLs, duplicated URLs within a topic, and unknown code-example
language tags. With --check-links it also probes each URL for
reachability. Findings never block unless --strict is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runPipeline(cmd.Context())
		if err != nil {
			return err
		}
		report := result.Report

		if flagJSON {
			printJSON(report.Audit)
		} else if report.Audit.Empty() {
			fmt.Println("no findings")
		} else {
			for _, f := range report.Audit.All() {
				fmt.Printf("[%s] %s %s: %s\n", f.Kind, f.TopicID, f.Path, f.Detail)
			}
		}

		if effectiveStrict() && !report.Audit.Empty() {
			os.Exit(exitUserError)
		}
		return nil
	},
}
