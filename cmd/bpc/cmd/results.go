package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/Ebun22/baxus-price-checker/internal/api/client"
)

func resultsCmd() *cobra.Command {
	resultsRoot := &cobra.Command{
		Use:   "results",
		Short: "Query match results",
		Long: "Browse persisted match results with filters for scan run,\n" +
			"savings, and sold-out state.",
	}

	resultsRoot.AddCommand(
		resultsListCmd(),
		resultsGetCmd(),
	)

	return resultsRoot
}

func resultsListCmd() *cobra.Command {
	var (
		scanRunID  string
		cheaper    bool
		soldOut    string
		minSavings float64
		limit      int
		offset     int
		orderBy    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List match results with optional filters",
		Example: `  # All results, newest first
  bpc results list

  # Deals only, biggest savings first
  bpc results list --cheaper --order-by savings

  # Results for one scan run
  bpc results list --run 2f9c7a1e-...

  # In-stock deals saving at least $25
  bpc results list --cheaper --sold-out false --min-savings 25`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListResults(context.Background(), &apiclient.ListResultsParams{
				ScanRunID:     scanRunID,
				CheaperOnly:   cheaper,
				SoldOut:       soldOut,
				MinSavingsUSD: minSavings,
				Limit:         limit,
				Offset:        offset,
				OrderBy:       orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Results) == 0 {
				fmt.Println("No match results found.")
				return nil
			}

			fmt.Printf("Showing %d of %d results\n\n", len(resp.Results), resp.Total)
			return printResultsTable(resp.Results)
		},
	}
	cmd.Flags().StringVar(&scanRunID, "run", "", "scan run ID filter")
	cmd.Flags().BoolVar(&cheaper, "cheaper", false, "only results cheaper on BAXUS")
	cmd.Flags().StringVar(&soldOut, "sold-out", "", "sold-out filter (true, false)")
	cmd.Flags().Float64Var(&minSavings, "min-savings", 0, "minimum savings in USD")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().
		StringVar(&orderBy, "order-by", "", "sort order (savings, price, created_at)")

	return cmd
}

func resultsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show match result details",
		Example: `  bpc results get 7bd41c55-...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			r, err := c.GetResult(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(r)
			}

			return printResultDetail(r)
		},
	}
}
