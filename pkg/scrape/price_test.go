package scrape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ebun22/baxus-price-checker/pkg/scrape"
)

func TestParsePriceSymbolAdjacent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		text         string
		wantAmount   float64
		wantCurrency string
	}{
		{"dollar", "$49.99", 49.99, "$"},
		{"pound with comma", "£1,250", 1250, "£"},
		{"euro with space", "€ 89.50", 89.5, "€"},
		{"naira large", "₦120,000", 120000, "₦"},
		{"symbol after number", "1250 $", 1250, "$"},
		{"embedded in sentence", "Now only $35 while stocks last", 35, "$"},
		{"thousands and decimals", "$1,234.56", 1234.56, "$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sig, ok := scrape.ParsePrice(tt.text, "")
			assert.True(t, ok)
			assert.InDelta(t, tt.wantAmount, sig.Amount, 0.001)
			assert.Equal(t, tt.wantCurrency, sig.Currency)
		})
	}
}

func TestParsePriceContextualNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		parentText string
		wantOK     bool
		wantAmount float64
	}{
		{"price keyword in text", "Price: 45", "", true, 45},
		{"cost keyword in text", "Cost 89", "", true, 89},
		{"keyword in parent only", "1,800", "Winning bid: 1,800", true, 1800},
		{"sold keyword in parent", "245", "Sold for 245", true, 245},
		{"no context keyword", "45", "", false, 0},
		{"volume unit disqualifies", "Price: 700ml", "", false, 0},
		{"abv disqualifies", "price 43% abv", "", false, 0},
		{"age statement disqualifies", "price: 12 year", "", false, 0},
		{"below plausible range", "Price: 3", "", false, 0},
		{"above plausible range", "Price: 250,000", "", false, 0},
		{"at lower bound", "Price: 5", "", true, 5},
		{"at upper bound", "Price: 100,000", "", true, 100000},
		{"empty text", "", "", false, 0},
		{"keyword but no number", "Price on request", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sig, ok := scrape.ParsePrice(tt.text, tt.parentText)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantAmount, sig.Amount, 0.001)
				assert.Equal(t, "$", sig.Currency)
			}
		})
	}
}

func TestParsePriceSymbolBeatsContext(t *testing.T) {
	t.Parallel()

	// When a symbol pair is present the contextual stage never runs, so
	// the disqualifying unit in the text is irrelevant.
	sig, ok := scrape.ParsePrice("700ml bottle, price $120", "")
	assert.True(t, ok)
	assert.InDelta(t, 120.0, sig.Amount, 0.001)
	assert.Equal(t, "$", sig.Currency)
}
