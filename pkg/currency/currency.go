// Package currency normalizes scraped prices into US dollars using a fixed
// conversion table. Rates are deliberately static constants, not live-fetched;
// comparisons only need rough parity, and the catalog side is already in USD.
package currency

// Fixed conversion rates against the reference unit (USD).
const (
	nairaPerUSD   = 1602.0
	usdPerEuro    = 1.14
	usdPerPound   = 1.31
)

// Symbol constants recognized by the scraper and the normalizer.
const (
	SymbolUSD   = "$"
	SymbolPound = "£"
	SymbolEuro  = "€"
	SymbolNaira = "₦"
)

// ToUSD converts an amount in the given currency to US dollars.
// Currency may be a symbol ("₦", "€", "£", "$") or an ISO-style code
// ("NGN", "EUR", "GBP", "USD"). Unrecognized currencies pass through
// unchanged, matching the treatment of bare dollar amounts.
func ToUSD(amount float64, currency string) float64 {
	switch currency {
	case SymbolNaira, "NGN":
		return amount / nairaPerUSD
	case SymbolEuro, "EUR":
		return amount * usdPerEuro
	case SymbolPound, "GBP":
		return amount * usdPerPound
	default:
		return amount
	}
}
