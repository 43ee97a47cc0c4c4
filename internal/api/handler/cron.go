package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/lottery-results-api/internal/scheduler"
	"github.com/vfg2006/lottery-results-api/pkg/apiErrors"
	"github.com/vfg2006/lottery-results-api/pkg/log"
	"github.com/vfg2006/lottery-results-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeResults  = "results"
	CronJobTypeJackpots = "jackpots"
	CronJobTypeAll      = "all"
)

const (
	cronStarted = "iniciada"
	cronRunning = "já em andamento"
)

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	ResultsSyncService  scheduler.Job
	JackpotsSyncService scheduler.Job
}

func (s CronJobServices) byType() map[string]scheduler.Job {
	jobs := make(map[string]scheduler.Job, 2)
	if s.ResultsSyncService != nil {
		jobs[CronJobTypeResults] = s.ResultsSyncService
	}
	if s.JackpotsSyncService != nil {
		jobs[CronJobTypeJackpots] = s.JackpotsSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.byType()

		var targets []string
		switch cronType {
		case CronJobTypeResults, CronJobTypeJackpots:
			if _, ok := jobs[cronType]; !ok {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Serviço de sincronização não disponível", nil)
				return
			}
			targets = []string{cronType}
		case CronJobTypeAll:
			for _, name := range []string{CronJobTypeResults, CronJobTypeJackpots} {
				if _, ok := jobs[name]; ok {
					targets = append(targets, name)
				}
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: results, jackpots, all", nil)
			return
		}

		logger.WithFields(log.Fields{
			"cron_type":   cronType,
			"cron_caller": middleware.CallerFromContext(r.Context()),
		}).Info("Execução manual solicitada")

		started := make(map[string]string, len(targets))
		for _, name := range targets {
			err := jobs[name].TriggerManualSync()
			switch {
			case err == nil:
				started[name] = cronStarted
			case errors.Is(err, scheduler.ErrSyncRunning):
				started[name] = cronRunning
			default:
				logger.WithError(err).WithField("cron_type", name).Error("Erro ao iniciar execução manual")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
				return
			}
		}

		if cronType != CronJobTypeAll && started[cronType] == cronRunning {
			apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Sincronização já em andamento", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"jobs":    started,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, 2)
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
