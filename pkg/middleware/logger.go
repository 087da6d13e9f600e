// Package middleware holds HTTP middleware for the bridge server.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one structured line per request, including status,
// size and latency. Server errors are logged at error level so they stand
// out in the bridge's output.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				attrs := []any{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.String("latency", time.Since(start).String()),
				}
				if ww.Status() >= 500 {
					logger.Error("request failed", attrs...)
				} else {
					logger.Info("request handled", attrs...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
