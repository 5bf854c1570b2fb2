package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Scan run queries.
const (
	queryCreateScanRun = `
		INSERT INTO scan_runs (target_url, status, started_at)
		VALUES (@target_url, @status, now())
		RETURNING id, started_at`

	queryCompleteScanRun = `
		UPDATE scan_runs SET
			status = $2,
			error_text = $3,
			candidates_found = $4,
			catalog_size = $5,
			matches_found = $6,
			completed_at = now()
		WHERE id = $1`

	queryGetScanRun = `
		SELECT id, target_url, status, candidates_found, catalog_size,
			matches_found, error_text, started_at, completed_at
		FROM scan_runs
		WHERE id = $1`

	queryListScanRuns = `
		SELECT id, target_url, status, candidates_found, catalog_size,
			matches_found, error_text, started_at, completed_at
		FROM scan_runs
		ORDER BY started_at DESC
		LIMIT $1`
)

// Match result queries.
const (
	queryInsertMatchResult = `
		INSERT INTO match_results (
			scan_run_id, catalog_entry_id, catalog_name, catalog_price_usd,
			image_url, animation_url,
			candidate_title, candidate_price, candidate_currency,
			converted_price_usd, is_sold_out, cheaper,
			savings_usd, savings_pct, created_at
		) VALUES (
			@scan_run_id, @catalog_entry_id, @catalog_name, @catalog_price_usd,
			@image_url, @animation_url,
			@candidate_title, @candidate_price, @candidate_currency,
			@converted_price_usd, @is_sold_out, @cheaper,
			@savings_usd, @savings_pct, now()
		)
		ON CONFLICT (scan_run_id, catalog_entry_id) DO UPDATE SET
			catalog_name = EXCLUDED.catalog_name,
			catalog_price_usd = EXCLUDED.catalog_price_usd,
			image_url = EXCLUDED.image_url,
			animation_url = EXCLUDED.animation_url,
			candidate_title = EXCLUDED.candidate_title,
			candidate_price = EXCLUDED.candidate_price,
			candidate_currency = EXCLUDED.candidate_currency,
			converted_price_usd = EXCLUDED.converted_price_usd,
			is_sold_out = EXCLUDED.is_sold_out,
			cheaper = EXCLUDED.cheaper,
			savings_usd = EXCLUDED.savings_usd,
			savings_pct = EXCLUDED.savings_pct
		RETURNING id, created_at`

	queryGetMatchResult = `
		SELECT id, scan_run_id, catalog_entry_id, catalog_name, catalog_price_usd,
			image_url, animation_url,
			candidate_title, candidate_price, candidate_currency,
			converted_price_usd, is_sold_out, cheaper,
			savings_usd, savings_pct, created_at
		FROM match_results
		WHERE id = $1`
)
