package httpapi

import (
	"net/http"
	"time"

	"github.com/dharmayuga/dharmayuga/internal/monitoring"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// responseWriter captures the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggerMiddleware(log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()
			w.Header().Set("X-Request-ID", requestID)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			log.Info("Request handled",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration", time.Since(start).String(),
			)
		})
	}
}

// metricsMiddleware labels requests by route template, not raw path.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		monitoring.HttpRequestsTotal.WithLabelValues(route, r.Method).Inc()
		monitoring.ActiveConnections.Inc()
		defer monitoring.ActiveConnections.Dec()

		timer := prometheus.NewTimer(monitoring.HttpRequestDuration.WithLabelValues(route, r.Method))
		next.ServeHTTP(w, r)
		timer.ObserveDuration()
	})
}
