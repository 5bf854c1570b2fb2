package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func runsCmd() *cobra.Command {
	runsRoot := &cobra.Command{
		Use:   "runs",
		Short: "Query scan runs",
		Long:  "Browse the history of scan runs recorded by the server.",
	}

	runsRoot.AddCommand(
		runsListCmd(),
		runsGetCmd(),
	)

	return runsRoot
}

func runsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent scan runs",
		Example: `  # List the 20 most recent runs
  bpc runs list

  # List more
  bpc runs list --limit 100`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			runs, err := c.ListScans(context.Background(), limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(runs)
			}

			if len(runs) == 0 {
				fmt.Println("No scan runs found.")
				return nil
			}

			return printScanRunsTable(runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs")

	return cmd
}

func runsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show scan run details",
		Example: `  bpc runs get 2f9c7a1e-...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			run, err := c.GetScan(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(run)
			}

			return printScanRunDetail(run)
		},
	}
}
