package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/lottery-results-api/internal/api/handler/router"
	"github.com/vfg2006/lottery-results-api/internal/usecases/jackpots"
	"github.com/vfg2006/lottery-results-api/internal/usecases/results"
	"github.com/vfg2006/lottery-results-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Results(service results.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/results",
			Method:  http.MethodGet,
			Handler: ListResults(service),
		},
		{
			Path:    "/v1/results/:slug",
			Method:  http.MethodGet,
			Handler: GetResultBySlug(service),
		},
	}
}

func Jackpots(service jackpots.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/jackpots",
			Method:  http.MethodGet,
			Handler: ListJackpots(service),
		},
		{
			Path:    "/v1/lotteries",
			Method:  http.MethodGet,
			Handler: ListLotteries(service),
		},
	}
}

func CronJobs(services CronJobServices, secret string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronAuth(secret)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronAuth(secret)},
		},
	}
}
