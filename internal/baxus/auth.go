package baxus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const (
	defaultAuthURL  = "https://services.baxus.co/api/auth/refresh"
	defaultTokenTTL = 15 * time.Minute
	refreshBuffer   = 60 * time.Second
)

// StaticTokenProvider returns a fixed token, for configs that carry a
// long-lived API token directly.
type StaticTokenProvider string

// Token implements TokenProvider.
func (s StaticTokenProvider) Token(context.Context) (string, error) {
	return string(s), nil
}

// RefreshTokenProvider implements TokenProvider by exchanging a refresh
// token for short-lived access tokens. It caches the access token and
// refreshes automatically when expired or within 60 seconds of expiry.
// Thread-safe via mutex.
type RefreshTokenProvider struct {
	refreshToken string
	authURL      string
	client       *http.Client

	mu      sync.Mutex
	token   string
	expiry  time.Time
	nowFunc func() time.Time // for testing
}

// AuthOption configures the RefreshTokenProvider.
type AuthOption func(*RefreshTokenProvider)

// WithAuthURL overrides the default token refresh endpoint.
func WithAuthURL(u string) AuthOption {
	return func(p *RefreshTokenProvider) {
		p.authURL = u
	}
}

// WithAuthHTTPClient overrides the default HTTP client.
func WithAuthHTTPClient(c *http.Client) AuthOption {
	return func(p *RefreshTokenProvider) {
		p.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) AuthOption {
	return func(p *RefreshTokenProvider) {
		p.nowFunc = f
	}
}

// NewRefreshTokenProvider creates a token provider backed by the given
// refresh token.
func NewRefreshTokenProvider(
	refreshToken string,
	opts ...AuthOption,
) *RefreshTokenProvider {
	p := &RefreshTokenProvider{
		refreshToken: refreshToken,
		authURL:      defaultAuthURL,
		client:       &http.Client{Timeout: 10 * time.Second},
		nowFunc:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

type refreshErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Token returns a valid access token, refreshing if necessary.
func (p *RefreshTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.nowFunc().Before(p.expiry.Add(-refreshBuffer)) {
		return p.token, nil
	}

	return p.refreshLocked(ctx)
}

func (p *RefreshTokenProvider) refreshLocked(
	ctx context.Context,
) (string, error) {
	payload, err := json.Marshal(refreshRequest{RefreshToken: p.refreshToken})
	if err != nil {
		return "", fmt.Errorf("encoding refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.authURL,
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", fmt.Errorf("creating refresh request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing refresh request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading refresh response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp refreshErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		return "", fmt.Errorf(
			"token refresh failed (status %d): %s - %s",
			resp.StatusCode,
			errResp.Error,
			errResp.Message,
		)
	}

	var tokenResp refreshResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("parsing refresh response: %w", err)
	}

	ttl := defaultTokenTTL
	if tokenResp.ExpiresIn > 0 {
		ttl = time.Duration(tokenResp.ExpiresIn) * time.Second
	}

	p.token = tokenResp.AccessToken
	p.expiry = p.nowFunc().Add(ttl)

	return p.token, nil
}
