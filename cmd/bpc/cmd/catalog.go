package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	var maxPages int

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Fetch the BAXUS catalog",
		Long:  "Fetches the currently listed BAXUS catalog through the server.",
		Example: `  # Show the full catalog
  bpc catalog

  # Cap the fetch at 3 pages
  bpc catalog --max-pages 3`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.GetCatalog(context.Background(), maxPages)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Entries) == 0 {
				fmt.Println("Catalog is empty.")
				return nil
			}

			fmt.Printf("%d catalog entries\n\n", resp.Total)
			return printCatalogTable(resp.Entries)
		},
	}
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page cap for the catalog fetch")

	return cmd
}
