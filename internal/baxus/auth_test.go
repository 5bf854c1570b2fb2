package baxus_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ebun22/baxus-price-checker/internal/baxus"
)

func TestStaticTokenProvider(t *testing.T) {
	t.Parallel()

	tok, err := baxus.StaticTokenProvider("abc").Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)
}

func TestRefreshTokenProviderCachesToken(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "refresh-abc", req.RefreshToken)

		_, _ = w.Write([]byte(`{"accessToken": "access-1", "expiresIn": 3600}`))
	}))
	defer srv.Close()

	p := baxus.NewRefreshTokenProvider("refresh-abc", baxus.WithAuthURL(srv.URL))

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", tok)

	tok, err = p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", tok)

	assert.Equal(t, int64(1), calls.Load())
}

func TestRefreshTokenProviderRefreshesNearExpiry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		resp := map[string]any{
			"accessToken": "access-" + string(rune('0'+n)),
			"expiresIn":   120,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	p := baxus.NewRefreshTokenProvider(
		"refresh-abc",
		baxus.WithAuthURL(srv.URL),
		baxus.WithNowFunc(func() time.Time { return now }),
	)

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", tok)

	// Inside the expiry window minus the refresh buffer: cached.
	now = now.Add(30 * time.Second)
	tok, err = p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", tok)

	// Within 60 seconds of expiry: refreshed.
	now = now.Add(60 * time.Second)
	tok, err = p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-2", tok)

	assert.Equal(t, int64(2), calls.Load())
}

func TestRefreshTokenProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid_grant", "message": "refresh token revoked"}`))
	}))
	defer srv.Close()

	p := baxus.NewRefreshTokenProvider("revoked", baxus.WithAuthURL(srv.URL))

	_, err := p.Token(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "invalid_grant")
}
