// Package cmd implements the CLI commands for the baxus-price-checker server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "baxus-price-checker",
	Short: "Find whisky deals by comparing retailer pages against BAXUS",
	Long: "An API-first service that scrapes retailer pages for bottle listings, " +
		"matches them against the BAXUS catalog, computes normalized USD price " +
		"comparisons, and alerts on savings.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
