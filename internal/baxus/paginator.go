package baxus

import (
	"context"
	"fmt"

	"github.com/Ebun22/baxus-price-checker/internal/metrics"
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// Pagination defaults. The listings endpoint serves fixed-size pages; the
// page cap bounds a full catalog fetch when the API keeps reporting more.
const (
	DefaultPageSize = 20
	DefaultMaxPages = 50
)

type fetchConfig struct {
	pageSize int
	maxPages int
}

// FetchOption configures FetchCatalog.
type FetchOption func(*fetchConfig)

// WithPageSize overrides the page size requested per call.
func WithPageSize(n int) FetchOption {
	return func(c *fetchConfig) {
		c.pageSize = n
	}
}

// WithMaxPages overrides the page cap for a full fetch.
func WithMaxPages(n int) FetchOption {
	return func(c *fetchConfig) {
		c.maxPages = n
	}
}

// FetchCatalog pages through the listed catalog from offset zero and
// returns all entries, stopping at a short page or the page cap.
func FetchCatalog(
	ctx context.Context,
	client CatalogClient,
	opts ...FetchOption,
) ([]domain.CatalogEntry, error) {
	cfg := fetchConfig{
		pageSize: DefaultPageSize,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var entries []domain.CatalogEntry

	for page := 0; page < cfg.maxPages; page++ {
		resp, err := client.Search(ctx, SearchRequest{
			From:   page * cfg.pageSize,
			Size:   cfg.pageSize,
			Listed: true,
		})
		if err != nil {
			return nil, fmt.Errorf("fetching catalog page %d: %w", page, err)
		}

		entries = append(entries, ToCatalogEntries(resp.Hits)...)

		if !resp.HasMore {
			break
		}
	}

	metrics.CatalogEntriesFetched.Set(float64(len(entries)))

	return entries, nil
}
