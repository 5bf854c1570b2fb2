package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// ResultsResponse wraps a paginated match result response.
type ResultsResponse struct {
	Results []domain.StoredMatchResult `json:"results"`
	Total   int                        `json:"total"`
}

// ListResultsParams defines query parameters for match result queries.
type ListResultsParams struct {
	ScanRunID     string
	CheaperOnly   bool
	SoldOut       string // "true", "false", or "" for no filter
	MinSavingsUSD float64
	Limit         int
	Offset        int
	OrderBy       string
}

// ListResults returns match results matching the given parameters.
func (c *Client) ListResults(
	ctx context.Context,
	params *ListResultsParams,
) (*ResultsResponse, error) {
	q := url.Values{}
	if params.ScanRunID != "" {
		q.Set("scan_run_id", params.ScanRunID)
	}
	if params.CheaperOnly {
		q.Set("cheaper_only", "true")
	}
	if params.SoldOut != "" {
		q.Set("sold_out", params.SoldOut)
	}
	if params.MinSavingsUSD > 0 {
		q.Set("min_savings_usd", strconv.FormatFloat(params.MinSavingsUSD, 'f', -1, 64))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/results"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ResultsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetResult returns a single match result by ID.
func (c *Client) GetResult(ctx context.Context, id string) (*domain.StoredMatchResult, error) {
	var r domain.StoredMatchResult
	if err := c.get(ctx, fmt.Sprintf("/api/v1/results/%s", id), &r); err != nil {
		return nil, err
	}
	return &r, nil
}
