// Package middleware provides Echo middleware for baxus-price-checker.
package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// healthProbePaths are logged only on the first success or on any failure.
// Kubelet probes fire every few seconds and would otherwise dominate logs.
var healthProbePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that emits one structured log line per
// request. Inbound X-Request-ID headers are honored; otherwise a fresh UUID
// is assigned and echoed back in the response. Repeated successful health
// probes are suppressed; probe failures always log at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var mu sync.Mutex
	probeLogged := make(map[string]bool)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			start := time.Now()
			err := next(c)
			status := c.Response().Status

			level := slog.LevelInfo
			if _, probe := healthProbePaths[req.URL.Path]; probe {
				ok := status >= 200 && status < 300

				mu.Lock()
				suppress := ok && probeLogged[req.URL.Path]
				probeLogged[req.URL.Path] = ok
				mu.Unlock()

				if suppress {
					return err
				}
				if !ok {
					level = slog.LevelWarn
				}
			}

			log.Log(req.Context(), level, "request",
				"request_id", reqID,
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			return err
		}
	}
}
