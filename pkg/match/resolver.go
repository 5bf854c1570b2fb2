package match

import (
	"strings"

	"github.com/Ebun22/baxus-price-checker/pkg/currency"
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// Resolve matches scraped candidates against the catalog and produces the
// final result list.
//
// Candidates are processed in scan-discovery order. Once a candidate title
// resolves, it is locked: no later iteration produces a second result for the
// same title. Catalog entries are scanned in catalog order and the FIRST entry
// clearing its threshold wins; scoring stops there (first-match tie-break, not
// best-score). The output is keyed by catalog entry ID, so a later candidate
// claiming an already-claimed entry replaces the earlier result in place
// (last-write-wins, position preserved).
//
// Sold-out candidates skip price validation and currency conversion entirely:
// the result encodes "full price is the saving" by doubling the catalog price,
// and is always flagged cheaper.
func Resolve(
	candidates []domain.CandidateListing,
	catalog []domain.CatalogEntry,
) []domain.MatchResult {
	locked := make(map[string]bool, len(candidates))
	byEntry := make(map[string]int, len(candidates))

	var results []domain.MatchResult

	upsert := func(r domain.MatchResult) {
		if i, ok := byEntry[r.CatalogEntryID]; ok {
			results[i] = r
			return
		}
		byEntry[r.CatalogEntryID] = len(results)
		results = append(results, r)
	}

	for _, cand := range candidates {
		if locked[cand.Title] {
			continue
		}

		if cand.IsSoldOut {
			for i := range catalog {
				entry := &catalog[i]
				if !Matches(cand.Title, entry.Name) {
					continue
				}
				upsert(domain.MatchResult{
					CatalogEntryID:    entry.ID,
					CatalogName:       entry.Name,
					CatalogPriceUSD:   entry.PriceUSD,
					ImageURL:          entry.ImageURL,
					AnimationURL:      entry.AnimationURL,
					CandidateTitle:    cand.Title,
					CandidatePrice:    cand.Price,
					CandidateCurrency: cand.Currency,
					ConvertedPriceUSD: entry.PriceUSD * 2,
					IsSoldOut:         true,
					Cheaper:           true,
				})
				locked[cand.Title] = true
				break
			}
			continue
		}

		// A blank or zero-price candidate always scores nothing.
		if cand.Title == "" || strings.TrimSpace(cand.Currency) == "" || cand.Price == 0 {
			continue
		}

		for i := range catalog {
			entry := &catalog[i]
			if !Matches(cand.Title, entry.Name) {
				continue
			}
			converted := currency.ToUSD(cand.Price, cand.Currency)
			upsert(domain.MatchResult{
				CatalogEntryID:    entry.ID,
				CatalogName:       entry.Name,
				CatalogPriceUSD:   entry.PriceUSD,
				ImageURL:          entry.ImageURL,
				AnimationURL:      entry.AnimationURL,
				CandidateTitle:    cand.Title,
				CandidatePrice:    cand.Price,
				CandidateCurrency: cand.Currency,
				ConvertedPriceUSD: converted,
				Cheaper:           entry.PriceUSD < converted,
			})
			locked[cand.Title] = true
			break
		}
	}

	return results
}
