package scrape

import (
	"regexp"
	"strconv"
	"strings"
)

// PriceSignal is a validated price extracted from raw text.
type PriceSignal struct {
	Amount   float64
	Currency string
}

// Plausible bottle price range for bare numbers with no currency symbol.
// Prices below $5 or above $100,000 are almost never real listings.
const (
	minPlausiblePrice = 5
	maxPlausiblePrice = 100000
)

// symbolNumberRegex matches a currency symbol immediately before or after a
// numeric token. Groups 1/2 capture symbol-first, groups 3/4 number-first.
var symbolNumberRegex = regexp.MustCompile(
	`([£$€₦])\s*([0-9][0-9,]*(?:\.[0-9]+)?)|([0-9][0-9,]*(?:\.[0-9]+)?)\s*([£$€₦])`,
)

// bareNumberRegex matches the first numeric token in a text: digits with
// optional thousands commas and at most one decimal point.
var bareNumberRegex = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)

// priceContextKeywords qualify a bare number as a plausible price when found
// in the price text or its parent's text.
var priceContextKeywords = []string{"price", "cost", "sold", "bid", "result"}

// nonPriceUnits disqualify a bare number: texts carrying volume, weight, or
// strength units describe the bottle, not its price.
var nonPriceUnits = []string{
	"ml", "cl", "l", "oz", "mg", "g", "kg",
	"abv", "%", "proof", "year", "aged",
}

// ParsePrice applies the price-parsing policy to the text of a located
// price element, first success wins:
//
//  1. a currency symbol adjacent to a number;
//  2. a bare number, accepted only with a price-context keyword in the text
//     or its parent's text, no disqualifying unit in the text itself, and a
//     value inside the plausible range — currency defaults to "$".
//
// The nested descendant scan (stage 3) needs tree access and lives in Scan.
// Returns ok == false when no stage succeeds; that is not an error, the
// candidate is simply dropped.
func ParsePrice(text, parentText string) (PriceSignal, bool) {
	if sig, ok := parseSymbolAdjacent(text); ok {
		return sig, true
	}
	return parseContextualNumber(text, parentText)
}

// parseSymbolAdjacent extracts a symbol+number pair, in either order.
func parseSymbolAdjacent(text string) (PriceSignal, bool) {
	m := symbolNumberRegex.FindStringSubmatch(text)
	if m == nil {
		return PriceSignal{}, false
	}

	if m[1] != "" && m[2] != "" {
		return PriceSignal{Amount: parseAmount(m[2]), Currency: m[1]}, true
	}
	if m[3] != "" && m[4] != "" {
		return PriceSignal{Amount: parseAmount(m[3]), Currency: m[4]}, true
	}
	return PriceSignal{}, false
}

// parseContextualNumber accepts a bare number only in a price-ish context.
// Context keywords may come from the text or its parent; disqualifying units
// are checked against the text alone.
func parseContextualNumber(text, parentText string) (PriceSignal, bool) {
	lower := strings.ToLower(text)
	parentLower := strings.ToLower(parentText)

	if !containsAny(lower, priceContextKeywords) &&
		!containsAny(parentLower, priceContextKeywords) {
		return PriceSignal{}, false
	}
	if containsAny(lower, nonPriceUnits) {
		return PriceSignal{}, false
	}

	m := bareNumberRegex.FindString(text)
	if m == "" {
		return PriceSignal{}, false
	}

	amount := parseAmount(m)
	if amount < minPlausiblePrice || amount > maxPlausiblePrice {
		return PriceSignal{}, false
	}
	return PriceSignal{Amount: amount, Currency: "$"}, true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// parseAmount strips thousands separators and converts to float64.
// The regexes guarantee the remainder parses; on a miss we return 0.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
