package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateScanRun inserts a new scan run and fills in its ID and start time.
func (s *PostgresStore) CreateScanRun(ctx context.Context, run *domain.ScanRun) error {
	if run.Status == "" {
		run.Status = domain.ScanRunning
	}

	args := pgx.NamedArgs{
		"target_url": run.TargetURL,
		"status":     string(run.Status),
	}

	return s.pool.QueryRow(ctx, queryCreateScanRun, args).Scan(
		&run.ID, &run.StartedAt,
	)
}

// CompleteScanRun finalizes a scan run with its outcome and counts.
func (s *PostgresStore) CompleteScanRun(
	ctx context.Context,
	id string,
	status domain.ScanRunStatus,
	errText string,
	candidatesFound, catalogSize, matchesFound int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteScanRun,
		id, string(status), errText, candidatesFound, catalogSize, matchesFound,
	)
	if err != nil {
		return fmt.Errorf("completing scan run: %w", err)
	}
	return nil
}

// GetScanRun retrieves a scan run by its ID.
func (s *PostgresStore) GetScanRun(ctx context.Context, id string) (*domain.ScanRun, error) {
	run := &domain.ScanRun{}
	if err := scanRun(s.pool.QueryRow(ctx, queryGetScanRun, id), run); err != nil {
		return nil, err
	}
	return run, nil
}

// ListScanRuns returns the most recent scan runs, newest first.
func (s *PostgresStore) ListScanRuns(ctx context.Context, limit int) ([]domain.ScanRun, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListScanRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("querying scan runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ScanRun
	for rows.Next() {
		var run domain.ScanRun
		if err := scanRun(rows, &run); err != nil {
			return nil, fmt.Errorf("scanning scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// InsertMatchResults upserts match results keyed by (scan_run_id,
// catalog_entry_id), so re-running a scan replaces its prior rows.
func (s *PostgresStore) InsertMatchResults(
	ctx context.Context,
	results []domain.StoredMatchResult,
) error {
	for i := range results {
		r := &results[i]
		args := pgx.NamedArgs{
			"scan_run_id":         r.ScanRunID,
			"catalog_entry_id":    r.CatalogEntryID,
			"catalog_name":        r.CatalogName,
			"catalog_price_usd":   r.CatalogPriceUSD,
			"image_url":           r.ImageURL,
			"animation_url":       r.AnimationURL,
			"candidate_title":     r.CandidateTitle,
			"candidate_price":     r.CandidatePrice,
			"candidate_currency":  r.CandidateCurrency,
			"converted_price_usd": r.ConvertedPriceUSD,
			"is_sold_out":         r.IsSoldOut,
			"cheaper":             r.Cheaper,
			"savings_usd":         r.SavingsUSD,
			"savings_pct":         r.SavingsPct,
		}

		err := s.pool.QueryRow(ctx, queryInsertMatchResult, args).Scan(
			&r.ID, &r.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting match result for %s: %w", r.CatalogEntryID, err)
		}
	}
	return nil
}

// GetMatchResult retrieves a match result by its ID.
func (s *PostgresStore) GetMatchResult(
	ctx context.Context,
	id string,
) (*domain.StoredMatchResult, error) {
	r := &domain.StoredMatchResult{}
	if err := scanMatchResult(s.pool.QueryRow(ctx, queryGetMatchResult, id), r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListMatchResults queries match results with optional filters, returning
// results and total count.
func (s *PostgresStore) ListMatchResults(
	ctx context.Context,
	opts *ResultQuery,
) ([]domain.StoredMatchResult, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting match results: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying match results: %w", err)
	}
	defer rows.Close()

	var results []domain.StoredMatchResult
	for rows.Next() {
		var r domain.StoredMatchResult
		if err := scanMatchResult(rows, &r); err != nil {
			return nil, 0, fmt.Errorf("scanning match result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating match results: %w", err)
	}

	return results, total, nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable, run *domain.ScanRun) error {
	return row.Scan(
		&run.ID, &run.TargetURL, &run.Status, &run.CandidatesFound,
		&run.CatalogSize, &run.MatchesFound, &run.ErrorText,
		&run.StartedAt, &run.CompletedAt,
	)
}

func scanMatchResult(row scannable, r *domain.StoredMatchResult) error {
	return row.Scan(
		&r.ID, &r.ScanRunID, &r.CatalogEntryID, &r.CatalogName, &r.CatalogPriceUSD,
		&r.ImageURL, &r.AnimationURL,
		&r.CandidateTitle, &r.CandidatePrice, &r.CandidateCurrency,
		&r.ConvertedPriceUSD, &r.IsSoldOut, &r.Cheaper,
		&r.SavingsUSD, &r.SavingsPct, &r.CreatedAt,
	)
}
