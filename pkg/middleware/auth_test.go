package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func TestCronAuth(t *testing.T) {
	validToken, err := IssueCronToken(testSecret, "operador", time.Hour)
	require.NoError(t, err)

	expiredToken, err := IssueCronToken(testSecret, "operador", -time.Minute)
	require.NoError(t, err)

	foreignToken, err := IssueCronToken("outro-segredo", "operador", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
		wantCaller string
	}{
		{name: "Segredo não configurado", secret: "", header: "Bearer " + testSecret, wantStatus: http.StatusServiceUnavailable},
		{name: "Sem cabeçalho", secret: testSecret, header: "", wantStatus: http.StatusUnauthorized},
		{name: "Cabeçalho sem Bearer", secret: testSecret, header: testSecret, wantStatus: http.StatusUnauthorized},
		{name: "Segredo puro", secret: testSecret, header: "Bearer " + testSecret, wantStatus: http.StatusOK, wantCaller: "secret"},
		{name: "JWT válido", secret: testSecret, header: "Bearer " + validToken, wantStatus: http.StatusOK, wantCaller: "operador"},
		{name: "JWT expirado", secret: testSecret, header: "Bearer " + expiredToken, wantStatus: http.StatusUnauthorized},
		{name: "JWT assinado com outro segredo", secret: testSecret, header: "Bearer " + foreignToken, wantStatus: http.StatusUnauthorized},
		{name: "Segredo errado", secret: testSecret, header: "Bearer qualquer-coisa", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var caller string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				caller = CallerFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/cron/results/run", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			CronAuth(tt.secret)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCaller, caller)
		})
	}
}

func TestIssueCronToken_WithoutSecret(t *testing.T) {
	_, err := IssueCronToken("", "operador", time.Hour)
	assert.Error(t, err)
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		origins    []string
		origin     string
		method     string
		wantHeader string
		wantStatus int
	}{
		{name: "Origem permitida", origins: []string{"http://localhost:3000"}, origin: "http://localhost:3000", method: http.MethodGet, wantHeader: "http://localhost:3000", wantStatus: http.StatusTeapot},
		{name: "Origem desconhecida", origins: []string{"http://localhost:3000"}, origin: "https://evil.example", method: http.MethodGet, wantHeader: "", wantStatus: http.StatusTeapot},
		{name: "Curinga libera qualquer origem", origins: []string{"*"}, origin: "https://loterias.example", method: http.MethodGet, wantHeader: "https://loterias.example", wantStatus: http.StatusTeapot},
		{name: "Preflight responde sem chamar o próximo", origins: []string{"http://localhost:3000"}, origin: "http://localhost:3000", method: http.MethodOptions, wantHeader: "http://localhost:3000", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/results", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.origins)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
