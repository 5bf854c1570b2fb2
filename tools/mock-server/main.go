// Package main implements a mock BAXUS server for local development.
// It serves canned listings from a JSON fixture to simulate the BAXUS
// search and auth endpoints, plus a sample retailer page for end-to-end
// scan testing, all without real credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/listings.json", "path to listings fixture")
	pageFile := flag.String("page", "tools/mock-server/testdata/retailer_page.html", "path to retailer page fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	hits, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "hits", len(hits))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", refreshHandler(logger))
	mux.HandleFunc("GET /api/search/listings", listingsHandler(logger, hits))
	mux.HandleFunc("GET /page", pageHandler(logger, *pageFile))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock BAXUS server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var hits []json.RawMessage
	if err := json.Unmarshal(data, &hits); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return hits, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func refreshHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RefreshToken == "" {
			logger.Warn("refresh request missing refreshToken")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"error": "invalid refresh token",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"accessToken": "mock-token-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"expiresIn":   900,
		})
		logger.Info("issued mock token")
	}
}

func listingsHandler(logger *slog.Logger, hits []json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := queryInt(r, "from", 0)
		size := queryInt(r, "size", 20)

		// Page through the fixture the way the real service does: a full
		// page means more may follow, a short page ends the crawl.
		page := []json.RawMessage{}
		if from < len(hits) {
			end := min(from+size, len(hits))
			page = hits[from:end]
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(page)
		logger.Info("listings", "from", from, "size", size, "returned", len(page))
	}
}

func pageHandler(logger *slog.Logger, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
		if err != nil {
			logger.Error("failed to read page fixture", "path", path, "error", err)
			http.Error(w, "page fixture not found", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(data)
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
