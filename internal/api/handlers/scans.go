package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

// ScanRunner defines the engine methods required by the scans handler.
type ScanRunner interface {
	RunScan(ctx context.Context, targetURL string) (*domain.ScanRun, []domain.StoredMatchResult, error)
}

// ScanRunProvider defines the store methods required by the scans handler.
type ScanRunProvider interface {
	GetScanRun(ctx context.Context, id string) (*domain.ScanRun, error)
	ListScanRuns(ctx context.Context, limit int) ([]domain.ScanRun, error)
}

// ScansHandler handles scan trigger and scan run history requests.
type ScansHandler struct {
	runner ScanRunner
	store  ScanRunProvider
}

// NewScansHandler creates a new ScansHandler.
func NewScansHandler(runner ScanRunner, s ScanRunProvider) *ScansHandler {
	return &ScansHandler{runner: runner, store: s}
}

// TriggerScanInput is the request body for triggering a scan.
type TriggerScanInput struct {
	Body struct {
		TargetURL string `json:"target_url" format:"uri" minLength:"1" doc:"Retailer page to scan" example:"https://example-wines.com/macallan-18"`
	}
}

// TriggerScanOutput is the response body for a triggered scan.
type TriggerScanOutput struct {
	Body struct {
		Run     domain.ScanRun             `json:"run" doc:"Completed scan run record"`
		Results []domain.StoredMatchResult `json:"results" doc:"Matches found during the scan"`
	}
}

// ListScansInput is the input for listing scan runs.
type ListScansInput struct {
	Limit int `query:"limit" doc:"Number of runs to return (default 20)" minimum:"1" maximum:"200"`
}

// ListScansOutput is the response body for listing scan runs.
type ListScansOutput struct {
	Body struct {
		Runs []domain.ScanRun `json:"runs"`
	}
}

// GetScanInput is the input for fetching a single scan run.
type GetScanInput struct {
	ID string `path:"id" doc:"Scan run UUID"`
}

// GetScanOutput is the response body for a single scan run.
type GetScanOutput struct {
	Body domain.ScanRun
}

const defaultScanListLimit = 20

// TriggerScan runs the full pipeline against the given target URL and
// returns the completed run with its matches. The scan executes
// synchronously; slow retailer pages make for slow responses.
func (h *ScansHandler) TriggerScan(
	ctx context.Context,
	input *TriggerScanInput,
) (*TriggerScanOutput, error) {
	run, results, err := h.runner.RunScan(ctx, input.Body.TargetURL)
	if err != nil {
		return nil, huma.Error502BadGateway("scan failed: " + err.Error())
	}

	if results == nil {
		results = []domain.StoredMatchResult{}
	}

	out := &TriggerScanOutput{}
	out.Body.Run = *run
	out.Body.Results = results
	return out, nil
}

// ListScans returns recent scan runs, newest first.
func (h *ScansHandler) ListScans(
	ctx context.Context,
	input *ListScansInput,
) (*ListScansOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultScanListLimit
	}

	runs, err := h.store.ListScanRuns(ctx, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing scan runs failed: " + err.Error())
	}

	if runs == nil {
		runs = []domain.ScanRun{}
	}

	out := &ListScansOutput{}
	out.Body.Runs = runs
	return out, nil
}

// GetScan returns a single scan run by ID.
func (h *ScansHandler) GetScan(
	ctx context.Context,
	input *GetScanInput,
) (*GetScanOutput, error) {
	run, err := h.store.GetScanRun(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("scan run not found")
	}

	return &GetScanOutput{Body: *run}, nil
}

// RegisterScanRoutes registers scan endpoints with the Huma API.
func RegisterScanRoutes(api huma.API, h *ScansHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-scan",
		Method:      http.MethodPost,
		Path:        "/api/v1/scans",
		Summary:     "Trigger a scan",
		Description: "Scrapes the target page, matches candidates against the BAXUS " +
			"catalog, persists the results, and returns the completed run.",
		Tags:   []string{"scans"},
		Errors: []int{http.StatusBadGateway},
	}, h.TriggerScan)

	huma.Register(api, huma.Operation{
		OperationID: "list-scans",
		Method:      http.MethodGet,
		Path:        "/api/v1/scans",
		Summary:     "List scan runs",
		Description: "Returns recent scan runs, newest first.",
		Tags:        []string{"scans"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListScans)

	huma.Register(api, huma.Operation{
		OperationID: "get-scan",
		Method:      http.MethodGet,
		Path:        "/api/v1/scans/{id}",
		Summary:     "Get a scan run by ID",
		Description: "Returns a single scan run by its UUID.",
		Tags:        []string{"scans"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetScan)
}
