package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ebun22/baxus-price-checker/internal/api/handlers"
	"github.com/Ebun22/baxus-price-checker/internal/store"
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

type fakeResultsStore struct {
	results []domain.StoredMatchResult
	err     error

	gotQuery *store.ResultQuery
}

func (f *fakeResultsStore) GetMatchResult(
	_ context.Context,
	id string,
) (*domain.StoredMatchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.results {
		if f.results[i].ID == id {
			return &f.results[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeResultsStore) ListMatchResults(
	_ context.Context,
	opts *store.ResultQuery,
) ([]domain.StoredMatchResult, int, error) {
	f.gotQuery = opts
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.results, len(f.results), nil
}

func storedResult(id string, savings float64, cheaper, soldOut bool) domain.StoredMatchResult {
	return domain.StoredMatchResult{
		ID:        id,
		ScanRunID: "run-1",
		MatchResult: domain.MatchResult{
			CatalogEntryID:  "b-" + id,
			CatalogName:     "Springbank 10 Year",
			CatalogPriceUSD: 95,
			IsSoldOut:       soldOut,
			Cheaper:         cheaper,
		},
		SavingsUSD: savings,
	}
}

func TestListResults_Defaults(t *testing.T) {
	t.Parallel()

	st := &fakeResultsStore{
		results: []domain.StoredMatchResult{
			storedResult("res-1", 50, true, false),
			storedResult("res-2", 0, false, true),
		},
	}
	h := handlers.NewResultsHandler(st)

	_, api := humatest.New(t)
	handlers.RegisterResultRoutes(api, h)

	resp := api.Get("/api/v1/results")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":2`)

	require.NotNil(t, st.gotQuery)
	assert.Nil(t, st.gotQuery.ScanRunID)
	assert.Nil(t, st.gotQuery.SoldOut)
	assert.Nil(t, st.gotQuery.MinSavingsUSD)
	assert.False(t, st.gotQuery.CheaperOnly)
}

func TestListResults_Filters(t *testing.T) {
	t.Parallel()

	st := &fakeResultsStore{}
	h := handlers.NewResultsHandler(st)

	_, api := humatest.New(t)
	handlers.RegisterResultRoutes(api, h)

	resp := api.Get(
		"/api/v1/results?scan_run_id=run-1&cheaper_only=true&sold_out=false" +
			"&min_savings_usd=25&limit=10&offset=5&order_by=savings",
	)
	require.Equal(t, http.StatusOK, resp.Code)

	q := st.gotQuery
	require.NotNil(t, q)
	require.NotNil(t, q.ScanRunID)
	assert.Equal(t, "run-1", *q.ScanRunID)
	assert.True(t, q.CheaperOnly)
	require.NotNil(t, q.SoldOut)
	assert.False(t, *q.SoldOut)
	require.NotNil(t, q.MinSavingsUSD)
	assert.InDelta(t, 25.0, *q.MinSavingsUSD, 0.001)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 5, q.Offset)
	assert.Equal(t, "savings", q.OrderBy)
}

func TestListResults_EmptyBody(t *testing.T) {
	t.Parallel()

	h := handlers.NewResultsHandler(&fakeResultsStore{})

	_, api := humatest.New(t)
	handlers.RegisterResultRoutes(api, h)

	resp := api.Get("/api/v1/results")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"results":[]`)
}

func TestListResults_StoreError(t *testing.T) {
	t.Parallel()

	h := handlers.NewResultsHandler(&fakeResultsStore{err: errors.New("db down")})

	_, api := humatest.New(t)
	handlers.RegisterResultRoutes(api, h)

	resp := api.Get("/api/v1/results")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "result query failed")
}

func TestGetResult(t *testing.T) {
	t.Parallel()

	st := &fakeResultsStore{
		results: []domain.StoredMatchResult{storedResult("res-1", 50, true, false)},
	}
	h := handlers.NewResultsHandler(st)

	_, api := humatest.New(t)
	handlers.RegisterResultRoutes(api, h)

	resp := api.Get("/api/v1/results/res-1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"catalog_entry_id":"b-res-1"`)

	resp = api.Get("/api/v1/results/res-404")
	require.Equal(t, http.StatusNotFound, resp.Code)
}
