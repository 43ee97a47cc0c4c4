package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/lottery-results-api/pkg/metrics"
)

// Metrics conta requisições por rota. O path é o padrão registrado no router, nunca a URL concreta.
func Metrics(path string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := newStatusRecorder(w)

			next.ServeHTTP(lrw, r)

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(lrw.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}
