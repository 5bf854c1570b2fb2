// Package notify defines the notification interface and implementations
// for savings alert delivery.
package notify

import (
	"context"
)

// SavingsAlert contains the data needed to send a savings alert
// notification for one catalog match.
type SavingsAlert struct {
	CatalogName       string
	CatalogEntryID    string
	CandidateTitle    string
	TargetURL         string
	ImageURL          string
	CatalogPriceUSD   float64
	ConvertedPriceUSD float64
	SavingsUSD        float64
	SavingsPct        float64
	IsSoldOut         bool
}

// Notifier defines the interface for sending savings alert notifications.
type Notifier interface {
	SendAlert(ctx context.Context, alert *SavingsAlert) error
	SendBatchAlert(ctx context.Context, alerts []SavingsAlert, targetURL string) error
}
