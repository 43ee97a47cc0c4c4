package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lottery-results-api/internal/api/handler"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	jackpotsMocks "github.com/vfg2006/lottery-results-api/internal/usecases/jackpots/mocks"
	resultsMocks "github.com/vfg2006/lottery-results-api/internal/usecases/results/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0"},
		Cron:   config.Cron{Secret: "segredo"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func TestServer_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	resultsService := resultsMocks.NewMockService(ctrl)
	jackpotsService := jackpotsMocks.NewMockService(ctrl)

	resultsService.EXPECT().Latest(gomock.Any()).Return(domain.ResultsView{
		Records: []domain.LotteryResult{{Slug: "mega-sena"}},
		Source:  domain.ViewSourceLive,
		Count:   1,
	}, nil)
	resultsService.EXPECT().BySlug(gomock.Any(), "quina").Return(domain.LotteryResult{}, domain.ErrUnknownLottery)
	jackpotsService.EXPECT().Latest(gomock.Any()).Return(domain.JackpotsView{}, domain.ErrNoDataAvailable)

	srv, err := New(testConfig(), resultsService, jackpotsService, handler.CronJobServices{})
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "Healthcheck", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "Resultados", method: http.MethodGet, path: "/v1/results", wantStatus: http.StatusOK},
		{name: "Slug desconhecido", method: http.MethodGet, path: "/v1/results/quina", wantStatus: http.StatusNotFound},
		{name: "Jackpots sem dados", method: http.MethodGet, path: "/v1/jackpots", wantStatus: http.StatusServiceUnavailable},
		{name: "Cron sem token", method: http.MethodGet, path: "/v1/cron/status", wantStatus: http.StatusUnauthorized},
		{name: "Rota inexistente", method: http.MethodGet, path: "/v1/users", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", "http://localhost:3000")
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestServer_ShutdownRunsClosers(t *testing.T) {
	ctrl := gomock.NewController(t)

	closed := 0
	srv, err := New(testConfig(), resultsMocks.NewMockService(ctrl), jackpotsMocks.NewMockService(ctrl), handler.CronJobServices{},
		WithCloser(func() error {
			closed++
			return nil
		}),
		WithCloser(func() error {
			closed++
			return errors.New("já fechado")
		}),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))
	assert.Equal(t, 2, closed)
}
