// Package baxus provides a BAXUS listings API client abstracted behind
// interfaces for testability.
package baxus

import (
	"context"
)

// SearchRequest defines the parameters for a catalog listings page.
type SearchRequest struct {
	From   int
	Size   int
	Listed bool
}

// SearchResponse holds one page of catalog listings.
type SearchResponse struct {
	Hits    []ListingHit
	From    int
	Size    int
	HasMore bool
}

// CatalogClient defines the interface for querying the BAXUS catalog.
type CatalogClient interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// TokenProvider defines the interface for obtaining API access tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
