package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Ebun22/baxus-price-checker/internal/baxus"
	"github.com/Ebun22/baxus-price-checker/internal/engine"
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// CompareHandler evaluates candidate listings against the BAXUS catalog
// without persisting anything.
type CompareHandler struct {
	catalog  baxus.CatalogClient
	pageSize int
	maxPages int
}

// NewCompareHandler creates a new CompareHandler. pageSize and maxPages
// bound the live catalog fetch when the request does not inline a catalog.
func NewCompareHandler(c baxus.CatalogClient, pageSize, maxPages int) *CompareHandler {
	return &CompareHandler{catalog: c, pageSize: pageSize, maxPages: maxPages}
}

// CompareInput is the request body for the stateless comparison endpoint.
type CompareInput struct {
	Body struct {
		Candidates []domain.CandidateListing `json:"candidates" minItems:"1" doc:"Scraped listings to match"`
		Catalog    []domain.CatalogEntry     `json:"catalog,omitempty" doc:"Catalog to match against; fetched live from BAXUS when omitted"`
	}
}

// CompareOutput is the response body for the comparison endpoint.
type CompareOutput struct {
	Body struct {
		Results     []domain.StoredMatchResult `json:"results" doc:"Resolved matches with savings"`
		CatalogSize int                        `json:"catalog_size" doc:"Number of catalog entries considered"`
	}
}

// Compare matches the submitted candidates against the catalog and returns
// normalized USD comparisons with savings. Nothing is written to the store.
func (h *CompareHandler) Compare(
	ctx context.Context,
	input *CompareInput,
) (*CompareOutput, error) {
	catalog := input.Body.Catalog
	if len(catalog) == 0 {
		fetched, err := baxus.FetchCatalog(ctx, h.catalog,
			baxus.WithPageSize(h.pageSize),
			baxus.WithMaxPages(h.maxPages),
		)
		if err != nil {
			return nil, huma.Error502BadGateway("BAXUS catalog error: " + err.Error())
		}
		catalog = fetched
	}

	results := engine.Evaluate(input.Body.Candidates, catalog)
	if results == nil {
		results = []domain.StoredMatchResult{}
	}

	out := &CompareOutput{}
	out.Body.Results = results
	out.Body.CatalogSize = len(catalog)
	return out, nil
}

// RegisterCompareRoutes registers the comparison endpoint with the Huma API.
func RegisterCompareRoutes(api huma.API, h *CompareHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "compare-candidates",
		Method:      http.MethodPost,
		Path:        "/api/v1/compare",
		Summary:     "Compare candidate listings against the catalog",
		Description: "Matches submitted candidates against the BAXUS catalog and returns " +
			"normalized USD price comparisons with savings. Stateless: no scan run is recorded.",
		Tags:   []string{"compare"},
		Errors: []int{http.StatusBadGateway},
	}, h.Compare)
}
