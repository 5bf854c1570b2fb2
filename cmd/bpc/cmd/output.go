package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printScanRunsTable(runs []domain.ScanRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTARGET\tSTATUS\tCANDIDATES\tMATCHES\tSTARTED\n")
	for i := range runs {
		r := &runs[i]
		tw.writef("%s\t%s\t%s\t%d\t%d\t%s\n",
			r.ID,
			truncate(r.TargetURL, 50),
			r.Status,
			r.CandidatesFound,
			r.MatchesFound,
			r.StartedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printScanRunDetail(r *domain.ScanRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", r.ID)
	tw.writef("Target:\t%s\n", r.TargetURL)
	tw.writef("Status:\t%s\n", r.Status)
	tw.writef("Candidates:\t%d\n", r.CandidatesFound)
	tw.writef("Catalog Size:\t%d\n", r.CatalogSize)
	tw.writef("Matches:\t%d\n", r.MatchesFound)
	tw.writef("Started:\t%s\n", r.StartedAt.Format("2006-01-02 15:04:05"))
	if r.CompletedAt != nil {
		tw.writef("Completed:\t%s\n", r.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	if r.ErrorText != "" {
		tw.writef("Error:\t%s\n", r.ErrorText)
	}
	return tw.finish()
}

func printResultsTable(results []domain.StoredMatchResult) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tBOTTLE\tBAXUS\tRETAIL (USD)\tSAVINGS\tSOLD OUT\n")
	for i := range results {
		r := &results[i]
		soldOut := ""
		if r.IsSoldOut {
			soldOut = "yes"
		}
		tw.writef("%s\t%s\t$%.2f\t$%.2f\t$%.2f (%.1f%%)\t%s\n",
			r.ID,
			truncate(r.CatalogName, 40),
			r.CatalogPriceUSD,
			r.ConvertedPriceUSD,
			r.SavingsUSD,
			r.SavingsPct,
			soldOut,
		)
	}
	return tw.finish()
}

func printResultDetail(r *domain.StoredMatchResult) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", r.ID)
	tw.writef("Scan Run:\t%s\n", r.ScanRunID)
	tw.writef("Bottle:\t%s\n", r.CatalogName)
	tw.writef("Catalog Entry:\t%s\n", r.CatalogEntryID)
	tw.writef("BAXUS Price:\t$%.2f\n", r.CatalogPriceUSD)
	tw.writef("Site Title:\t%s\n", r.CandidateTitle)
	tw.writef("Site Price:\t%s%.2f\n", r.CandidateCurrency, r.CandidatePrice)
	tw.writef("Retail (USD):\t$%.2f\n", r.ConvertedPriceUSD)
	tw.writef("Savings:\t$%.2f (%.1f%%)\n", r.SavingsUSD, r.SavingsPct)
	tw.writef("Sold Out:\t%v\n", r.IsSoldOut)
	tw.writef("Cheaper on BAXUS:\t%v\n", r.Cheaper)
	return tw.finish()
}

func printCatalogTable(entries []domain.CatalogEntry) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tPRICE (USD)\n")
	for i := range entries {
		tw.writef("%s\t%s\t$%.2f\n",
			entries[i].ID,
			truncate(entries[i].Name, 50),
			entries[i].PriceUSD,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
