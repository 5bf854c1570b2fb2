package baxus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Ebun22/baxus-price-checker/internal/metrics"
)

const (
	defaultListingsURL = "https://services.baxus.co/api/search/listings"
	defaultPageSize    = 20
)

// ListingsClient implements CatalogClient against the BAXUS listings
// search endpoint.
type ListingsClient struct {
	tokens      TokenProvider
	listingsURL string
	client      *http.Client
	rateLimiter *RateLimiter
}

// ListingsOption configures the ListingsClient.
type ListingsOption func(*ListingsClient)

// WithListingsURL overrides the default listings endpoint.
func WithListingsURL(u string) ListingsOption {
	return func(c *ListingsClient) {
		c.listingsURL = u
	}
}

// WithListingsHTTPClient overrides the default HTTP client.
func WithListingsHTTPClient(hc *http.Client) ListingsOption {
	return func(c *ListingsClient) {
		c.client = hc
	}
}

// WithTokenProvider sets the provider used for Bearer authentication.
// Without one, requests go out unauthenticated; the listings search
// endpoint accepts that for public data.
func WithTokenProvider(tp TokenProvider) ListingsOption {
	return func(c *ListingsClient) {
		c.tokens = tp
	}
}

// WithRateLimiter injects a rate limiter that paces catalog API calls.
// When set, every Search() call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) ListingsOption {
	return func(c *ListingsClient) {
		c.rateLimiter = r
	}
}

// NewListingsClient creates a new BAXUS listings client.
func NewListingsClient(opts ...ListingsOption) *ListingsClient {
	c := &ListingsClient{
		listingsURL: defaultListingsURL,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search implements CatalogClient.Search by fetching one listings page.
func (c *ListingsClient) Search(
	ctx context.Context,
	req SearchRequest,
) (*SearchResponse, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}
	metrics.CatalogAPICallsTotal.Inc()

	u := c.buildSearchURL(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting auth token: %w", err)
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing listings request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"catalog API error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}

	var hits []ListingHit
	if err := json.Unmarshal(body, &hits); err != nil {
		return nil, fmt.Errorf("parsing listings response: %w", err)
	}

	size := req.Size
	if size <= 0 {
		size = defaultPageSize
	}

	return &SearchResponse{
		Hits:    hits,
		From:    req.From,
		Size:    size,
		HasMore: len(hits) == size,
	}, nil
}

func (c *ListingsClient) buildSearchURL(req SearchRequest) string {
	params := url.Values{}

	params.Set("from", strconv.Itoa(req.From))

	size := req.Size
	if size <= 0 {
		size = defaultPageSize
	}
	params.Set("size", strconv.Itoa(size))

	if req.Listed {
		params.Set("listed", "true")
	}

	return c.listingsURL + "?" + params.Encode()
}
