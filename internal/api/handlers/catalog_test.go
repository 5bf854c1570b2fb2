package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ebun22/baxus-price-checker/internal/api/handlers"
	domain "github.com/Ebun22/baxus-price-checker/pkg/types"
)

func TestGetCatalog(t *testing.T) {
	t.Parallel()

	client := &fakeCatalogClient{
		entries: []domain.CatalogEntry{
			{ID: "b1", Name: "Springbank 10 Year", PriceUSD: 95},
			{ID: "b2", Name: "The Macallan 18 Year Old Sherry Oak", PriceUSD: 150},
		},
	}
	h := handlers.NewCatalogHandler(client, 20, 50)

	_, api := humatest.New(t)
	handlers.RegisterCatalogRoutes(api, h)

	resp := api.Get("/api/v1/catalog")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":2`)
	assert.Contains(t, resp.Body.String(), `"id":"b1"`)

	require.NotEmpty(t, client.requests)
	assert.Equal(t, 20, client.requests[0].Size)
	assert.True(t, client.requests[0].Listed)
}

func TestGetCatalog_Empty(t *testing.T) {
	t.Parallel()

	h := handlers.NewCatalogHandler(&fakeCatalogClient{}, 20, 50)

	_, api := humatest.New(t)
	handlers.RegisterCatalogRoutes(api, h)

	resp := api.Get("/api/v1/catalog")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"entries":[]`)
	assert.Contains(t, resp.Body.String(), `"total":0`)
}

func TestGetCatalog_UpstreamError(t *testing.T) {
	t.Parallel()

	h := handlers.NewCatalogHandler(&fakeCatalogClient{err: errors.New("502")}, 20, 50)

	_, api := humatest.New(t)
	handlers.RegisterCatalogRoutes(api, h)

	resp := api.Get("/api/v1/catalog")
	require.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Contains(t, resp.Body.String(), "BAXUS catalog error")
}
