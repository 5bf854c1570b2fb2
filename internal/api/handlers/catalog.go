package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Ebun22/baxus-price-checker/internal/baxus"
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// CatalogHandler proxies catalog reads to the BAXUS listings service.
type CatalogHandler struct {
	client   baxus.CatalogClient
	pageSize int
	maxPages int
}

// NewCatalogHandler creates a new CatalogHandler with default paging bounds.
func NewCatalogHandler(client baxus.CatalogClient, pageSize, maxPages int) *CatalogHandler {
	return &CatalogHandler{client: client, pageSize: pageSize, maxPages: maxPages}
}

// GetCatalogInput is the input for fetching the catalog.
type GetCatalogInput struct {
	MaxPages int `query:"max_pages" doc:"Page cap for the catalog fetch (default from config)" minimum:"1" maximum:"100"`
}

// GetCatalogOutput is the response body for the catalog endpoint.
type GetCatalogOutput struct {
	Body struct {
		Entries []domain.CatalogEntry `json:"entries"`
		Total   int                   `json:"total"`
	}
}

// GetCatalog fetches the current listed catalog from BAXUS.
func (h *CatalogHandler) GetCatalog(
	ctx context.Context,
	input *GetCatalogInput,
) (*GetCatalogOutput, error) {
	maxPages := h.maxPages
	if input.MaxPages > 0 {
		maxPages = input.MaxPages
	}

	entries, err := baxus.FetchCatalog(ctx, h.client,
		baxus.WithPageSize(h.pageSize),
		baxus.WithMaxPages(maxPages),
	)
	if err != nil {
		return nil, huma.Error502BadGateway("BAXUS catalog error: " + err.Error())
	}

	if entries == nil {
		entries = []domain.CatalogEntry{}
	}

	out := &GetCatalogOutput{}
	out.Body.Entries = entries
	out.Body.Total = len(entries)
	return out, nil
}

// RegisterCatalogRoutes registers catalog endpoints with the Huma API.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-catalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog",
		Summary:     "Fetch the BAXUS catalog",
		Description: "Pages through the BAXUS listings service and returns the full listed catalog.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusBadGateway},
	}, h.GetCatalog)
}
