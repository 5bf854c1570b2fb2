package baxus_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ebun22/baxus-price-checker/internal/baxus"
)

const listingsPage = `[
	{"_id": "hit-1", "_source": {"id": "b1", "name": "Macallan 18 Year Old Sherry Oak", "price": 150, "imageUrl": "https://img.example/b1.png", "animationUrl": ""}},
	{"_id": "hit-2", "_source": {"id": "b2", "name": "Springbank 10 Year", "price": 95, "imageUrl": "", "animationUrl": "https://img.example/b2.mp4"}}
]`

func TestListingsClientSearch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("from"))
		assert.Equal(t, "20", r.URL.Query().Get("size"))
		assert.Equal(t, "true", r.URL.Query().Get("listed"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingsPage))
	}))
	defer srv.Close()

	client := baxus.NewListingsClient(
		baxus.WithListingsURL(srv.URL),
		baxus.WithTokenProvider(baxus.StaticTokenProvider("test-token")),
	)

	resp, err := client.Search(context.Background(), baxus.SearchRequest{
		From:   0,
		Size:   20,
		Listed: true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Hits, 2)
	assert.Equal(t, "b1", resp.Hits[0].Source.ID)
	assert.Equal(t, "Macallan 18 Year Old Sherry Oak", resp.Hits[0].Source.Name)
	assert.InDelta(t, 150.0, resp.Hits[0].Source.Price, 0.001)
	assert.False(t, resp.HasMore)
}

func TestListingsClientHasMore(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listingsPage))
	}))
	defer srv.Close()

	client := baxus.NewListingsClient(baxus.WithListingsURL(srv.URL))

	resp, err := client.Search(context.Background(), baxus.SearchRequest{Size: 2, Listed: true})
	require.NoError(t, err)
	assert.True(t, resp.HasMore)
}

func TestListingsClientUnauthenticated(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := baxus.NewListingsClient(baxus.WithListingsURL(srv.URL))

	resp, err := client.Search(context.Background(), baxus.SearchRequest{Size: 20})
	require.NoError(t, err)
	assert.Empty(t, resp.Hits)
	assert.False(t, resp.HasMore)
}

func TestListingsClientAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := baxus.NewListingsClient(baxus.WithListingsURL(srv.URL))

	_, err := client.Search(context.Background(), baxus.SearchRequest{Size: 20})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestListingsClientBadJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	client := baxus.NewListingsClient(baxus.WithListingsURL(srv.URL))

	_, err := client.Search(context.Background(), baxus.SearchRequest{Size: 20})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing listings response")
}
