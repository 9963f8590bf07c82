// Search command: query the catalog the way the presentation layer does.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search topics by keyword",
	Long: `Search builds the catalog in memory and runs a ranked keyword query
over titles, summaries, and key points. An empty query lists every topic
in authoring order. Intended for authors checking how their topics rank.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runPipeline(cmd.Context())
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		matches := result.Index.Search(query)

		if flagJSON {
			printJSON(matches)
			return nil
		}
		if len(matches) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for i, t := range matches {
			fmt.Printf("%2d. %-30s %s [%s]\n", i+1, t.ID, t.Title, t.Category)
		}
		return nil
	},
}
