package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/usecases/jackpots"
	"github.com/vfg2006/lottery-results-api/internal/usecases/results"
)

//go:generate mockgen -source=sync_service.go -destination=mocks/mock_sync_service.go -package=mocks

var ErrSyncRunning = errors.New("sincronização já em andamento")

// Job é a parte do agendador exposta às rotas de execução manual
type Job interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// SyncConfig representa a configuração de um agendador de atualização
type SyncConfig struct {
	Name         string
	CronSchedule string
	Timezone     string
	SyncEnabled  bool
	RunOnStart   bool
}

// RefreshFunc executa uma atualização completa e devolve o resumo da execução
type RefreshFunc func(ctx context.Context) domain.RunSummary

// SyncService gerencia o agendamento e execução de uma atualização periódica
type SyncService struct {
	scheduler           *gocron.Scheduler
	config              SyncConfig
	refresh             RefreshFunc
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.RunSummary
}

func NewSyncService(syncConfig SyncConfig, refresh RefreshFunc) (*SyncService, error) {
	location := time.Local
	if syncConfig.Timezone != "" {
		loc, err := time.LoadLocation(syncConfig.Timezone)
		if err != nil {
			return nil, fmt.Errorf("fuso horário inválido para %s: %w", syncConfig.Name, err)
		}
		location = loc
	}

	logrus.WithFields(logrus.Fields{
		"sync":          syncConfig.Name,
		"cron_schedule": syncConfig.CronSchedule,
		"timezone":      location.String(),
		"sync_enabled":  syncConfig.SyncEnabled,
		"run_on_start":  syncConfig.RunOnStart,
	}).Info("Configuração do agendador carregada")

	return &SyncService{
		scheduler: gocron.NewScheduler(location),
		config:    syncConfig,
		refresh:   refresh,
		baseCtx:   context.Background(),
	}, nil
}

// NewResultsSyncService agenda a atualização do snapshot de resultados
func NewResultsSyncService(cfg *config.Config, service results.Service) (*SyncService, error) {
	return NewSyncService(SyncConfig{
		Name:         "resultados",
		CronSchedule: cfg.ResultsSync.CronSchedule,
		Timezone:     cfg.ResultsSync.Timezone,
		SyncEnabled:  cfg.ResultsSync.Enabled,
		RunOnStart:   cfg.ResultsSync.RunOnStart,
	}, func(ctx context.Context) domain.RunSummary {
		return service.Refresh(ctx).Summary()
	})
}

// NewJackpotsSyncService agenda a atualização do snapshot de prêmios
func NewJackpotsSyncService(cfg *config.Config, service jackpots.Service) (*SyncService, error) {
	return NewSyncService(SyncConfig{
		Name:         "prêmios",
		CronSchedule: cfg.JackpotsSync.CronSchedule,
		Timezone:     cfg.JackpotsSync.Timezone,
		SyncEnabled:  cfg.JackpotsSync.Enabled,
		RunOnStart:   cfg.JackpotsSync.RunOnStart,
	}, func(ctx context.Context) domain.RunSummary {
		return service.Refresh(ctx).Summary()
	})
}

// Start inicia o agendador
func (s *SyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.WithField("sync", s.config.Name).Info("Sincronização desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"sync": s.config.Name,
		"cron": s.config.CronSchedule,
	}).Info("Iniciando agendador de sincronização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de %s: %w", s.config.Name, err)
	}

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	s.scheduler.StartAsync()

	if s.config.RunOnStart {
		go s.sync(ctx)
	}

	go func() {
		<-ctx.Done()
		logrus.WithField("sync", s.config.Name).Info("Parando agendador de sincronização")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync inicia uma sincronização fora do agendamento
func (s *SyncService) TriggerManualSync() error {
	if !s.begin() {
		logrus.WithField("sync", s.config.Name).Info("Sincronização já em andamento, ignorando solicitação manual")
		return ErrSyncRunning
	}

	s.syncMutex.Lock()
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	logrus.WithField("sync", s.config.Name).Info("Iniciando sincronização manual")
	go s.execute(ctx)

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *SyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_timezone":          s.scheduler.Location().String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run":               nil,
	}
	if s.lastSummary != nil {
		status["last_run"] = *s.lastSummary
	}

	return status
}

func (s *SyncService) sync(ctx context.Context) {
	if !s.begin() {
		logrus.WithField("sync", s.config.Name).Info("Sincronização já em andamento, ignorando")
		return
	}
	s.execute(ctx)
}

func (s *SyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()

	return true
}

func (s *SyncService) execute(ctx context.Context) {
	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"sync":  s.config.Name,
				"panic": r,
			}).Error("Pânico durante a sincronização")
		}

		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.WithField("sync", s.config.Name).Info("Iniciando sincronização")

	summary := s.refresh(ctx)

	s.syncMutex.Lock()
	s.lastSummary = &summary
	s.syncMutex.Unlock()

	fields := logrus.Fields{
		"sync":     s.config.Name,
		"run_id":   summary.RunID,
		"count":    summary.Count,
		"failed":   summary.Failed,
		"duration": time.Since(startTime).String(),
	}
	if summary.Count == 0 && len(summary.Failed) > 0 {
		logrus.WithFields(fields).Warn("Sincronização concluída sem registros, snapshot anterior mantido")
		return
	}

	logrus.WithFields(fields).Info("Sincronização concluída")
}
