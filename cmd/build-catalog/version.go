// Version command for the build-catalog CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyforge/catalog/pkg/catalog"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build-catalog version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("build-catalog", catalog.Version)
	},
}
