// Package engine orchestrates scan runs: page fetching, candidate
// extraction, catalog matching, persistence, and alerting.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Ebun22/baxus-price-checker/internal/baxus"
	"github.com/Ebun22/baxus-price-checker/internal/metrics"
	"github.com/Ebun22/baxus-price-checker/internal/notify"
	"github.com/Ebun22/baxus-price-checker/internal/store"
	"github.com/Ebun22/baxus-price-checker/pkg/match"
	"github.com/Ebun22/baxus-price-checker/pkg/scrape"
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// PageFetcher retrieves a retailer page as a parsed document.
type PageFetcher interface {
	Page(ctx context.Context, url string) (*goquery.Document, error)
}

// Engine runs the scan pipeline with injected dependencies.
type Engine struct {
	store    store.Store
	catalog  baxus.CatalogClient
	fetcher  PageFetcher
	notifier notify.Notifier
	log      *slog.Logger

	pageSize int
	maxPages int
	alerts   AlertPolicy
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	c baxus.CatalogClient,
	f PageFetcher,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:    s,
		catalog:  c,
		fetcher:  f,
		notifier: n,
		log:      slog.Default(),
		pageSize: baxus.DefaultPageSize,
		maxPages: baxus.DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithCatalogPaging sets the catalog page size and page cap.
func WithCatalogPaging(pageSize, maxPages int) EngineOption {
	return func(e *Engine) {
		e.pageSize = pageSize
		e.maxPages = maxPages
	}
}

// WithAlertPolicy sets the thresholds for savings alerts.
func WithAlertPolicy(p AlertPolicy) EngineOption {
	return func(e *Engine) {
		e.alerts = p
	}
}

// Evaluate matches candidates against the catalog and computes savings for
// each result. It is pure and shared by scan runs and the stateless
// comparison endpoint.
func Evaluate(
	candidates []domain.CandidateListing,
	catalog []domain.CatalogEntry,
) []domain.StoredMatchResult {
	matches := match.Resolve(candidates, catalog)

	results := make([]domain.StoredMatchResult, 0, len(matches))
	for _, m := range matches {
		savings := match.ComputeSavings(m)
		results = append(results, domain.StoredMatchResult{
			MatchResult: m,
			SavingsUSD:  savings.Amount,
			SavingsPct:  savings.Percentage,
		})
	}
	return results
}

// RunScan executes a full scan of one target page: fetch the page and the
// catalog concurrently, extract candidates, match, persist, and alert.
// The scan run record is completed with either outcome; the returned error
// reflects the pipeline failure if any.
func (eng *Engine) RunScan(
	ctx context.Context,
	targetURL string,
) (*domain.ScanRun, []domain.StoredMatchResult, error) {
	start := time.Now()
	defer func() {
		metrics.ScanDuration.Observe(time.Since(start).Seconds())
	}()

	run := &domain.ScanRun{TargetURL: targetURL}
	if err := eng.store.CreateScanRun(ctx, run); err != nil {
		return nil, nil, fmt.Errorf("creating scan run: %w", err)
	}

	eng.log.Info("scan starting", "run_id", run.ID, "target", targetURL)

	doc, catalog, err := eng.gather(ctx, targetURL)
	if err != nil {
		eng.failRun(ctx, run, err)
		return run, nil, err
	}

	candidates := scrape.Scan(doc)
	metrics.ScanCandidatesFound.Observe(float64(len(candidates)))

	results := Evaluate(candidates, catalog)
	metrics.ScanMatchesFound.Observe(float64(len(results)))

	for i := range results {
		results[i].ScanRunID = run.ID
	}

	if err := eng.store.InsertMatchResults(ctx, results); err != nil {
		eng.failRun(ctx, run, fmt.Errorf("persisting match results: %w", err))
		return run, nil, err
	}

	run.Status = domain.ScanCompleted
	run.CandidatesFound = len(candidates)
	run.CatalogSize = len(catalog)
	run.MatchesFound = len(results)

	if err := eng.store.CompleteScanRun(
		ctx, run.ID, domain.ScanCompleted, "",
		len(candidates), len(catalog), len(results),
	); err != nil {
		eng.log.Error("completing scan run failed", "run_id", run.ID, "error", err)
	}

	metrics.ScanRunsTotal.WithLabelValues(string(domain.ScanCompleted)).Inc()

	eng.log.Info("scan complete",
		"run_id", run.ID,
		"candidates", len(candidates),
		"catalog_size", len(catalog),
		"matches", len(results),
	)

	eng.processAlerts(ctx, targetURL, results)

	return run, results, nil
}

// gather fetches the target page and the full catalog concurrently. Both
// must succeed before matching starts.
func (eng *Engine) gather(
	ctx context.Context,
	targetURL string,
) (*goquery.Document, []domain.CatalogEntry, error) {
	var (
		wg         sync.WaitGroup
		doc        *goquery.Document
		catalog    []domain.CatalogEntry
		docErr     error
		catalogErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		doc, docErr = eng.fetcher.Page(ctx, targetURL)
	}()

	go func() {
		defer wg.Done()
		catalog, catalogErr = baxus.FetchCatalog(ctx, eng.catalog,
			baxus.WithPageSize(eng.pageSize),
			baxus.WithMaxPages(eng.maxPages),
		)
	}()

	wg.Wait()

	if docErr != nil {
		return nil, nil, fmt.Errorf("fetching target page: %w", docErr)
	}
	if catalogErr != nil {
		return nil, nil, fmt.Errorf("fetching catalog: %w", catalogErr)
	}

	return doc, catalog, nil
}

func (eng *Engine) failRun(ctx context.Context, run *domain.ScanRun, cause error) {
	run.Status = domain.ScanFailed
	run.ErrorText = cause.Error()

	if err := eng.store.CompleteScanRun(
		ctx, run.ID, domain.ScanFailed, cause.Error(), 0, 0, 0,
	); err != nil {
		eng.log.Error("recording scan failure failed", "run_id", run.ID, "error", err)
	}

	metrics.ScanRunsTotal.WithLabelValues(string(domain.ScanFailed)).Inc()

	eng.log.Error("scan failed", "run_id", run.ID, "error", cause)
}
