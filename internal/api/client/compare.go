package client

import (
	"context"

	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// CompareResponse wraps a stateless comparison response.
type CompareResponse struct {
	Results     []domain.StoredMatchResult `json:"results"`
	CatalogSize int                        `json:"catalog_size"`
}

// Compare matches candidates against the catalog without recording a scan
// run. A nil or empty catalog makes the server fetch the live catalog.
func (c *Client) Compare(
	ctx context.Context,
	candidates []domain.CandidateListing,
	catalog []domain.CatalogEntry,
) (*CompareResponse, error) {
	body := map[string]any{"candidates": candidates}
	if len(catalog) > 0 {
		body["catalog"] = catalog
	}

	var resp CompareResponse
	if err := c.post(ctx, "/api/v1/compare", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
