package match

import (
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// ComputeSavings quantifies what buying from the catalog saves over the
// scraped site price.
//
// For sold-out matches the site offers nothing to buy, so the full catalog
// price counts as the saving and the percentage is pinned at 100. For normal
// matches a negative amount means the catalog is the more expensive side;
// callers surface that distinctly rather than hiding it.
func ComputeSavings(r domain.MatchResult) domain.Savings {
	if r.IsSoldOut {
		return domain.Savings{Amount: r.CatalogPriceUSD, Percentage: 100}
	}

	amount := r.ConvertedPriceUSD - r.CatalogPriceUSD

	var pct float64
	if r.ConvertedPriceUSD != 0 {
		pct = amount / r.ConvertedPriceUSD * 100
	}

	return domain.Savings{Amount: amount, Percentage: pct}
}
