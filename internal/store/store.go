// Package store defines the datastore abstraction for baxus-price-checker.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// ResultQuery defines optional filters for match result queries.
type ResultQuery struct {
	ScanRunID     *string
	CheaperOnly   bool
	SoldOut       *bool
	MinSavingsUSD *float64
	Limit         int // default 50
	Offset        int
	OrderBy       string // "savings", "price", "created_at"
}

// Store defines all data access operations for baxus-price-checker.
type Store interface {
	// Scan runs
	CreateScanRun(ctx context.Context, run *domain.ScanRun) error
	CompleteScanRun(
		ctx context.Context,
		id string,
		status domain.ScanRunStatus,
		errText string,
		candidatesFound, catalogSize, matchesFound int,
	) error
	GetScanRun(ctx context.Context, id string) (*domain.ScanRun, error)
	ListScanRuns(ctx context.Context, limit int) ([]domain.ScanRun, error)

	// Match results
	InsertMatchResults(ctx context.Context, results []domain.StoredMatchResult) error
	GetMatchResult(ctx context.Context, id string) (*domain.StoredMatchResult, error)
	ListMatchResults(ctx context.Context, opts *ResultQuery) ([]domain.StoredMatchResult, int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
