package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lottery-results-api/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

// statusRecorder guarda o status escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware registra cada requisição com um id de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, _ := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			logger.WithFields(log.Fields{
				"remote_addr": r.RemoteAddr,
				"query":       r.URL.RawQuery,
				"user_agent":  r.UserAgent(),
			}).Debug("Requisição iniciada")

			rec := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			logger = logger.WithFields(log.Fields{
				"status_code": rec.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})

			message := fmt.Sprintf("Requisição finalizada em %s", formatDuration(elapsed))
			switch {
			case rec.statusCode >= http.StatusInternalServerError:
				logger.Error(message)
			case rec.statusCode >= http.StatusBadRequest:
				logger.Warn(message)
			default:
				logger.Info(message)
			}

			if elapsed > slowRequestThreshold {
				logger.Warn("Requisição lenta")
			}
		})
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// LogPanicMiddleware transforma um pânico no handler em 500 com a pilha no log
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"method":      r.Method,
						"path":        r.URL.Path,
						"panic_error": err,
					})

					logger.Error("Erro não tratado na aplicação")
					if logrus.IsLevelEnabled(logrus.DebugLevel) || !log.IsDevelopment() {
						logger.WithField("stack_trace", string(debug.Stack())).Error("Stack trace do erro")
					}

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
