package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/usecases/results"
	"github.com/vfg2006/lottery-results-api/pkg/apiErrors"
	"github.com/vfg2006/lottery-results-api/pkg/log"
)

// ListResults retorna o último resultado de cada loteria, do cache ou de uma execução ao vivo
func ListResults(service results.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, err := service.Latest(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"source": view.Source,
			"count":  view.Count,
		}).Info("results: resultados servidos")

		writeJSON(w, r, http.StatusOK, view)
	})
}

func GetResultBySlug(service results.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
		if slug == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Slug da loteria não informado", nil)
			return
		}

		result, err := service.BySlug(r.Context(), slug)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

// writeServiceError traduz os erros de domínio para os códigos da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	switch {
	case errors.Is(err, domain.ErrUnknownLottery):
		logger.Warn("Loteria não encontrada no catálogo")
		apiErrors.WriteError(w, apiErrors.ErrLotteryNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrNoDataAvailable):
		logger.Warn("Nenhum dado disponível para a consulta")
		apiErrors.WriteError(w, apiErrors.ErrNoDataAvailable, err.Error(), nil)
	default:
		logger.Error("Erro inesperado ao consultar loterias")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
