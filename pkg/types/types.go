// Package domain defines the core business types for the BAXUS price checker.
package domain

import (
	"time"
)

// CandidateListing is a title/price/availability tuple harvested from a page's
// content tree. It has not yet been matched against the catalog.
//
// A materialized candidate always carries either a validated positive price or
// IsSoldOut == true; the scanner never emits a zero-price in-stock candidate.
type CandidateListing struct {
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	IsSoldOut bool    `json:"is_sold_out"`
}

// CatalogEntry is an authoritative bottle record from the BAXUS listings
// service. Read-only to the matching core.
type CatalogEntry struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PriceUSD     float64 `json:"price_usd"`
	ImageURL     string  `json:"image_url,omitempty"`
	AnimationURL string  `json:"animation_url,omitempty"`
}

// MatchResult pairs a scraped candidate with the catalog entry it resolved to.
// The result collection is keyed by CatalogEntryID: a later candidate claiming
// the same entry replaces an earlier result (last-write-wins).
type MatchResult struct {
	CatalogEntryID    string  `json:"catalog_entry_id"`
	CatalogName       string  `json:"catalog_name"`
	CatalogPriceUSD   float64 `json:"catalog_price_usd"`
	ImageURL          string  `json:"image_url,omitempty"`
	AnimationURL      string  `json:"animation_url,omitempty"`
	CandidateTitle    string  `json:"candidate_title"`
	CandidatePrice    float64 `json:"candidate_price"`
	CandidateCurrency string  `json:"candidate_currency"`
	ConvertedPriceUSD float64 `json:"converted_price_usd"`
	IsSoldOut         bool    `json:"is_sold_out"`
	Cheaper           bool    `json:"cheaper"`
}

// Savings quantifies the price difference for a resolved match.
// Negative Amount means the catalog price is higher than the site price;
// that is surfaced as-is, never clamped.
type Savings struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// ScanRunStatus represents the lifecycle state of a scan run.
type ScanRunStatus string

// Scan run status constants.
const (
	ScanRunning   ScanRunStatus = "running"
	ScanCompleted ScanRunStatus = "completed"
	ScanFailed    ScanRunStatus = "failed"
)

// ScanRun records a single execution of the scrape-and-match pipeline
// against one target URL.
type ScanRun struct {
	ID              string        `json:"id"                     db:"id"`
	TargetURL       string        `json:"target_url"             db:"target_url"`
	Status          ScanRunStatus `json:"status"                 db:"status"`
	CandidatesFound int           `json:"candidates_found"       db:"candidates_found"`
	CatalogSize     int           `json:"catalog_size"           db:"catalog_size"`
	MatchesFound    int           `json:"matches_found"          db:"matches_found"`
	ErrorText       string        `json:"error_text,omitempty"   db:"error_text"`
	StartedAt       time.Time     `json:"started_at"             db:"started_at"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
}

// StoredMatchResult is a MatchResult persisted with its scan run context.
type StoredMatchResult struct {
	ID        string `json:"id"          db:"id"`
	ScanRunID string `json:"scan_run_id" db:"scan_run_id"`
	MatchResult
	SavingsUSD float64   `json:"savings_usd" db:"savings_usd"`
	SavingsPct float64   `json:"savings_pct" db:"savings_pct"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}
