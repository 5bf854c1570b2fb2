package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Ebun22/baxus-price-checker/internal/store"
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// ResultsProvider defines the store methods required by the results handler.
type ResultsProvider interface {
	GetMatchResult(ctx context.Context, id string) (*domain.StoredMatchResult, error)
	ListMatchResults(ctx context.Context, opts *store.ResultQuery) ([]domain.StoredMatchResult, int, error)
}

// ResultsHandler handles match result query endpoints.
type ResultsHandler struct {
	store ResultsProvider
}

// NewResultsHandler creates a new ResultsHandler.
func NewResultsHandler(s ResultsProvider) *ResultsHandler {
	return &ResultsHandler{store: s}
}

// ListResultsInput is the input for listing match results with optional filters.
type ListResultsInput struct {
	ScanRunID     string  `query:"scan_run_id"     doc:"Filter by scan run UUID"`
	CheaperOnly   bool    `query:"cheaper_only"    doc:"Only results where the catalog price beats the site price"`
	SoldOut       string  `query:"sold_out"        doc:"Filter by sold-out state"       enum:"true,false,"`
	MinSavingsUSD float64 `query:"min_savings_usd" doc:"Minimum savings in USD"`
	Limit         int     `query:"limit"           doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset        int     `query:"offset"          doc:"Pagination offset"              minimum:"0"`
	OrderBy       string  `query:"order_by"        doc:"Sort field"                     enum:"savings,price,created_at,"`
}

// ListResultsOutput is the response for listing match results.
type ListResultsOutput struct {
	Body struct {
		Results []domain.StoredMatchResult `json:"results"`
		Total   int                        `json:"total"`
		Limit   int                        `json:"limit"`
		Offset  int                        `json:"offset"`
	}
}

// GetResultInput is the input for getting a single match result.
type GetResultInput struct {
	ID string `path:"id" doc:"Match result UUID"`
}

// GetResultOutput is the response for getting a single match result.
type GetResultOutput struct {
	Body domain.StoredMatchResult
}

// ListResults returns match results with optional filters for scan run,
// savings, sold-out state, and pagination.
func (h *ResultsHandler) ListResults(
	ctx context.Context,
	input *ListResultsInput,
) (*ListResultsOutput, error) {
	q := &store.ResultQuery{
		CheaperOnly: input.CheaperOnly,
		Offset:      input.Offset,
		OrderBy:     input.OrderBy,
	}

	if input.ScanRunID != "" {
		q.ScanRunID = &input.ScanRunID
	}

	switch input.SoldOut {
	case "true":
		soldOut := true
		q.SoldOut = &soldOut
	case "false":
		soldOut := false
		q.SoldOut = &soldOut
	}

	if input.MinSavingsUSD != 0 {
		q.MinSavingsUSD = &input.MinSavingsUSD
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	results, total, err := h.store.ListMatchResults(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("result query failed: " + err.Error())
	}

	if results == nil {
		results = []domain.StoredMatchResult{}
	}

	resp := &ListResultsOutput{}
	resp.Body.Results = results
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetResult returns a single match result by ID.
func (h *ResultsHandler) GetResult(
	ctx context.Context,
	input *GetResultInput,
) (*GetResultOutput, error) {
	result, err := h.store.GetMatchResult(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("match result not found")
	}

	return &GetResultOutput{Body: *result}, nil
}

// RegisterResultRoutes registers match result endpoints with the Huma API.
func RegisterResultRoutes(api huma.API, h *ResultsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-results",
		Method:      http.MethodGet,
		Path:        "/api/v1/results",
		Summary:     "List match results",
		Description: "Returns persisted match results with optional filters for scan run, " +
			"savings, sold-out state, and pagination.",
		Tags:   []string{"results"},
		Errors: []int{http.StatusInternalServerError},
	}, h.ListResults)

	huma.Register(api, huma.Operation{
		OperationID: "get-result",
		Method:      http.MethodGet,
		Path:        "/api/v1/results/{id}",
		Summary:     "Get a match result by ID",
		Description: "Returns a single match result by its UUID.",
		Tags:        []string{"results"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetResult)
}
