package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// TriggerScanResponse wraps a completed scan run with its matches.
type TriggerScanResponse struct {
	Run     domain.ScanRun             `json:"run"`
	Results []domain.StoredMatchResult `json:"results"`
}

// TriggerScan runs the scrape-and-match pipeline against the given URL.
func (c *Client) TriggerScan(ctx context.Context, targetURL string) (*TriggerScanResponse, error) {
	body := map[string]any{"target_url": targetURL}

	var resp TriggerScanResponse
	if err := c.post(ctx, "/api/v1/scans", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListScans returns recent scan runs, newest first.
func (c *Client) ListScans(ctx context.Context, limit int) ([]domain.ScanRun, error) {
	path := "/api/v1/scans"
	if limit > 0 {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(limit))
		path += "?" + q.Encode()
	}

	var resp struct {
		Runs []domain.ScanRun `json:"runs"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Runs, nil
}

// GetScan returns a single scan run by ID.
func (c *Client) GetScan(ctx context.Context, id string) (*domain.ScanRun, error) {
	var run domain.ScanRun
	if err := c.get(ctx, fmt.Sprintf("/api/v1/scans/%s", id), &run); err != nil {
		return nil, err
	}
	return &run, nil
}
