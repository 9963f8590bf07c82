// Command build-catalog validates, indexes, audits, and exports the
// content catalog. The root command runs the full build; subcommands give
// authors the individual stages for incremental work.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
