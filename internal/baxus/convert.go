package baxus

import (
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// ToCatalogEntries converts listing hits into domain catalog entries.
// Hits without a usable identifier or name are dropped.
func ToCatalogEntries(hits []ListingHit) []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(hits))
	for i := range hits {
		if e, ok := toCatalogEntry(&hits[i]); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

func toCatalogEntry(hit *ListingHit) (domain.CatalogEntry, bool) {
	id := hit.Source.ID
	if id == "" {
		id = hit.ID
	}
	if id == "" || hit.Source.Name == "" {
		return domain.CatalogEntry{}, false
	}

	return domain.CatalogEntry{
		ID:           id,
		Name:         hit.Source.Name,
		PriceUSD:     hit.Source.Price,
		ImageURL:     hit.Source.ImageURL,
		AnimationURL: hit.Source.AnimationURL,
	}, true
}
