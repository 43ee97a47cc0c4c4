package handler

import (
	"net/http"

	"github.com/vfg2006/lottery-results-api/internal/usecases/jackpots"
	"github.com/vfg2006/lottery-results-api/pkg/log"
)

func ListJackpots(service jackpots.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := service.Latest(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"source": view.Source,
			"count":  view.Count,
		}).Info("jackpots: prêmios servidos")

		writeJSON(w, r, http.StatusOK, view)
	})
}

// ListLotteries retorna o catálogo com o prêmio atual e o próximo sorteio de cada loteria
func ListLotteries(service jackpots.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items, err := service.Catalog(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"lotteries": items,
			"count":     len(items),
		})
	})
}
