package handler

import (
	"net/http"
	"time"
)

var startedAt = time.Now()

// HealthcheckHandler responde à sonda de liveness com o tempo de atividade
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":    "ok",
			"time":      time.Now().Format(time.RFC3339),
			"uptime_ms": time.Since(startedAt).Milliseconds(),
		})
	})
}
