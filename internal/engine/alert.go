package engine

import (
	"context"

	"github.com/Ebun22/baxus-price-checker/internal/metrics"
	"github.com/Ebun22/baxus-price-checker/internal/notify"
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

const batchThreshold = 5

// AlertPolicy decides which match results fire a savings alert.
type AlertPolicy struct {
	Enabled       bool
	MinSavingsUSD float64
	MinSavingsPct float64
}

// qualifies reports whether a result clears the alert thresholds.
func (p AlertPolicy) qualifies(r *domain.StoredMatchResult) bool {
	if !p.Enabled || !r.Cheaper {
		return false
	}
	return r.SavingsUSD >= p.MinSavingsUSD && r.SavingsPct >= p.MinSavingsPct
}

// processAlerts sends notifications for results that clear the alert
// policy. A run with 5+ qualifying results is sent as a batch. Notification
// failures are logged but never fail the scan.
func (eng *Engine) processAlerts(
	ctx context.Context,
	targetURL string,
	results []domain.StoredMatchResult,
) {
	var alerts []notify.SavingsAlert
	for i := range results {
		if eng.alerts.qualifies(&results[i]) {
			alerts = append(alerts, buildSavingsAlert(targetURL, &results[i]))
		}
	}

	if len(alerts) == 0 {
		return
	}

	var err error
	if len(alerts) >= batchThreshold {
		err = eng.notifier.SendBatchAlert(ctx, alerts, targetURL)
	} else {
		for i := range alerts {
			if err = eng.notifier.SendAlert(ctx, &alerts[i]); err != nil {
				break
			}
		}
	}

	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		eng.log.Error("sending savings alerts failed", "target", targetURL, "error", err)
		return
	}

	metrics.AlertsFiredTotal.Add(float64(len(alerts)))
}

func buildSavingsAlert(targetURL string, r *domain.StoredMatchResult) notify.SavingsAlert {
	return notify.SavingsAlert{
		CatalogName:       r.CatalogName,
		CatalogEntryID:    r.CatalogEntryID,
		CandidateTitle:    r.CandidateTitle,
		TargetURL:         targetURL,
		ImageURL:          r.ImageURL,
		CatalogPriceUSD:   r.CatalogPriceUSD,
		ConvertedPriceUSD: r.ConvertedPriceUSD,
		SavingsUSD:        r.SavingsUSD,
		SavingsPct:        r.SavingsPct,
		IsSoldOut:         r.IsSoldOut,
	}
}
