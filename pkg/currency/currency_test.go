package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ebun22/baxus-price-checker/pkg/currency"
)

func TestToUSD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   float64
		currency string
		want     float64
	}{
		{name: "euro symbol", amount: 100, currency: "€", want: 114.0},
		{name: "euro code", amount: 100, currency: "EUR", want: 114.0},
		{name: "pound symbol", amount: 100, currency: "£", want: 131.0},
		{name: "pound code", amount: 100, currency: "GBP", want: 131.0},
		{name: "naira symbol", amount: 1602, currency: "₦", want: 1.0},
		{name: "naira code", amount: 1602, currency: "NGN", want: 1.0},
		{name: "dollar passthrough", amount: 50, currency: "$", want: 50.0},
		{name: "usd code passthrough", amount: 50, currency: "USD", want: 50.0},
		{name: "unknown currency passthrough", amount: 42, currency: "CHF", want: 42.0},
		{name: "empty currency passthrough", amount: 42, currency: "", want: 42.0},
		{name: "zero amount", amount: 0, currency: "€", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := currency.ToUSD(tt.amount, tt.currency)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
