package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/shopfront/catalog-service/internal/pkg/clock"
)

// requestLogger logs one structured line per request with its outcome and
// latency. It takes a Clock so tests can observe deterministic durations.
func requestLogger(logger *zap.Logger, clk clock.Clock) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := clk.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", clk.Now().Sub(start)),
				zap.String("remote", r.RemoteAddr),
			)
		})
	}
}
