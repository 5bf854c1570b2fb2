package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <url>",
		Short: "Scan a retailer page for deals",
		Long: "Scrapes the given retailer page, matches every candidate listing\n" +
			"against the BAXUS catalog, and prints the resulting price comparisons.",
		Example: `  # Scan a product page
  bpc scan https://example-wines.com/macallan-18

  # JSON output for scripting
  bpc scan https://example-wines.com/macallan-18 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.TriggerScan(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Printf("Scan %s %s: %d candidates, %d matches\n\n",
				resp.Run.ID,
				resp.Run.Status,
				resp.Run.CandidatesFound,
				resp.Run.MatchesFound,
			)

			if len(resp.Results) == 0 {
				fmt.Println("No matches found.")
				return nil
			}

			return printResultsTable(resp.Results)
		},
	}
}
