package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendAlert logs and discards a single alert.
func (n *NoOpNotifier) SendAlert(_ context.Context, alert *SavingsAlert) error {
	n.log.Debug("notification discarded (no backend configured)",
		"catalog_name", alert.CatalogName,
		"candidate", alert.CandidateTitle,
		"savings_usd", alert.SavingsUSD,
	)
	return nil
}

// SendBatchAlert logs and discards a batch of alerts.
func (n *NoOpNotifier) SendBatchAlert(_ context.Context, alerts []SavingsAlert, targetURL string) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"target", targetURL,
		"count", len(alerts),
	)
	return nil
}
