package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// CatalogResponse wraps a catalog fetch response.
type CatalogResponse struct {
	Entries []domain.CatalogEntry `json:"entries"`
	Total   int                   `json:"total"`
}

// GetCatalog fetches the current listed BAXUS catalog through the API.
func (c *Client) GetCatalog(ctx context.Context, maxPages int) (*CatalogResponse, error) {
	path := "/api/v1/catalog"
	if maxPages > 0 {
		q := url.Values{}
		q.Set("max_pages", strconv.Itoa(maxPages))
		path += "?" + q.Encode()
	}

	var resp CatalogResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
