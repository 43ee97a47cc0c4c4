package aggregating

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/lottery-results-api/infrastructure/integrator"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/registry"
	"github.com/vfg2006/lottery-results-api/pkg/log"
	"github.com/vfg2006/lottery-results-api/pkg/metrics"
	"github.com/vfg2006/lottery-results-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_aggregating.go -package=mocks

const DefaultCallTimeout = 15 * time.Second

const (
	ReasonNoAdapter = "provedor sem adaptador"
	ReasonNoSource  = "loteria sem fonte para este tipo de consulta"
	ReasonTimeout   = "tempo limite excedido"
)

// Aggregator consulta os provedores de todas as loterias em paralelo
type Aggregator interface {
	RunResults(ctx context.Context, entries []registry.Entry) domain.ResultsReport
	RunJackpots(ctx context.Context, entries []registry.Entry) domain.JackpotsReport
	FetchResult(ctx context.Context, entry registry.Entry) domain.Outcome[domain.LotteryResult]
	FetchJackpot(ctx context.Context, entry registry.Entry) domain.Outcome[domain.JackpotData]
}

type Service struct {
	resultFetchers  map[registry.Provider]integrator.ResultFetcher
	jackpotFetchers map[registry.Provider]integrator.JackpotFetcher
	callTimeout     time.Duration
}

type Option func(*Service)

func WithResultFetcher(provider registry.Provider, fetcher integrator.ResultFetcher) Option {
	return func(s *Service) {
		s.resultFetchers[provider] = fetcher
	}
}

func WithJackpotFetcher(provider registry.Provider, fetcher integrator.JackpotFetcher) Option {
	return func(s *Service) {
		s.jackpotFetchers[provider] = fetcher
	}
}

func NewService(callTimeout time.Duration, opts ...Option) *Service {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}

	s := &Service{
		resultFetchers:  make(map[registry.Provider]integrator.ResultFetcher),
		jackpotFetchers: make(map[registry.Provider]integrator.JackpotFetcher),
		callTimeout:     callTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) RunResults(ctx context.Context, entries []registry.Entry) domain.ResultsReport {
	return run(ctx, metrics.KindResults, s.callTimeout, s.resultTasks(entries))
}

func (s *Service) RunJackpots(ctx context.Context, entries []registry.Entry) domain.JackpotsReport {
	return run(ctx, metrics.KindJackpots, s.callTimeout, s.jackpotTasks(entries))
}

func (s *Service) FetchResult(ctx context.Context, entry registry.Entry) domain.Outcome[domain.LotteryResult] {
	tasks := s.resultTasks([]registry.Entry{entry})
	return call(ctx, metrics.KindResults, s.callTimeout, tasks[0]).outcome
}

func (s *Service) FetchJackpot(ctx context.Context, entry registry.Entry) domain.Outcome[domain.JackpotData] {
	tasks := s.jackpotTasks([]registry.Entry{entry})
	return call(ctx, metrics.KindJackpots, s.callTimeout, tasks[0]).outcome
}

func (s *Service) resultTasks(entries []registry.Entry) []task[domain.LotteryResult] {
	tasks := make([]task[domain.LotteryResult], 0, len(entries))
	for _, entry := range entries {
		t := task[domain.LotteryResult]{entry: entry}
		if entry.Results != nil {
			t.provider = entry.Results.Provider
			if fetcher, ok := s.resultFetchers[t.provider]; ok {
				t.fetch = fetcher.FetchResult
			}
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func (s *Service) jackpotTasks(entries []registry.Entry) []task[domain.JackpotData] {
	tasks := make([]task[domain.JackpotData], 0, len(entries))
	for _, entry := range entries {
		t := task[domain.JackpotData]{entry: entry}
		if entry.Jackpot != nil {
			t.provider = entry.Jackpot.Provider
			if fetcher, ok := s.jackpotFetchers[t.provider]; ok {
				t.fetch = fetcher.FetchJackpot
			}
		}
		tasks = append(tasks, t)
	}
	return tasks
}

type task[T any] struct {
	entry    registry.Entry
	provider registry.Provider
	fetch    func(ctx context.Context, entry registry.Entry) domain.Outcome[T]
}

type settled[T any] struct {
	outcome  domain.Outcome[T]
	elapsed  time.Duration
	panicked bool
}

// run dispara uma chamada por loteria e aguarda todas terminarem.
// Cada goroutine escreve apenas na sua posição; a junção acontece depois do Wait.
func run[T any](ctx context.Context, kind string, timeout time.Duration, tasks []task[T]) domain.Report[T] {
	start := time.Now()
	runID := utils.NewRunID()
	ctx = log.WithRunID(ctx, runID)

	slots := make([]settled[T], len(tasks))

	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t task[T]) {
			defer wg.Done()
			slots[i] = call(ctx, kind, timeout, t)
		}(i, t)
	}
	wg.Wait()

	report := domain.Report[T]{
		RunID:    runID,
		Records:  make([]T, 0, len(tasks)),
		Failed:   make([]string, 0),
		Statuses: make(map[string]domain.SlugStatus, len(tasks)),
	}

	for i, t := range tasks {
		slot := slots[i]
		report.Statuses[t.entry.Slug] = domain.SlugStatus{
			Slug:      t.entry.Slug,
			Ok:        slot.outcome.Ok(),
			Reason:    slot.outcome.Reason,
			ElapsedMs: slot.elapsed.Milliseconds(),
		}

		if slot.outcome.Ok() {
			report.Records = append(report.Records, *slot.outcome.Record)
			continue
		}
		report.Failed = append(report.Failed, t.entry.Slug)
	}

	report.Count = len(report.Records)
	report.Elapsed = time.Since(start)
	report.ElapsedMs = report.Elapsed.Milliseconds()

	metrics.AggregationRunDuration.WithLabelValues(kind).Observe(report.Elapsed.Seconds())
	metrics.AggregationRecords.WithLabelValues(kind).Set(float64(report.Count))
	metrics.AggregationFailures.WithLabelValues(kind).Set(float64(len(report.Failed)))

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"kind":       kind,
		"count":      report.Count,
		"elapsed_ms": report.ElapsedMs,
	})
	if len(report.Failed) > 0 {
		logger.WithField("failed", report.Failed).Warn("Agregação concluída com falhas")
	} else {
		logger.Info("Agregação concluída")
	}

	return report
}

// call executa uma única consulta limitada pelo timeout.
// O prazo vale mesmo que o adaptador ignore o contexto: a resposta atrasada é descartada.
func call[T any](ctx context.Context, kind string, timeout time.Duration, t task[T]) settled[T] {
	start := time.Now()

	if t.provider == "" {
		return settled[T]{outcome: domain.Absent[T](ReasonNoSource)}
	}
	if t.fetch == nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"slug":     t.entry.Slug,
			"provider": t.provider,
		}).Warn("Nenhum adaptador registrado para o provedor")
		return settled[T]{outcome: domain.Absent[T](ReasonNoAdapter)}
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan settled[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- settled[T]{
					outcome:  domain.Absent[T](fmt.Sprintf("falha inesperada no adaptador: %v", r)),
					panicked: true,
				}
			}
		}()
		done <- settled[T]{outcome: t.fetch(callCtx, t.entry)}
	}()

	var result settled[T]
	label := metrics.OutcomeOk

	select {
	case result = <-done:
		switch {
		case result.panicked:
			label = metrics.OutcomePanic
			log.ForContext(ctx).WithFields(log.Fields{
				"slug":     t.entry.Slug,
				"provider": t.provider,
				"reason":   result.outcome.Reason,
			}).Error("Adaptador interrompido por panic")
		case !result.outcome.Ok():
			label = metrics.OutcomeAbsent
		}
	case <-callCtx.Done():
		result = settled[T]{outcome: domain.Absent[T](ReasonTimeout)}
		label = metrics.OutcomeTimeout
		log.ForContext(ctx).WithFields(log.Fields{
			"slug":     t.entry.Slug,
			"provider": t.provider,
			"timeout":  timeout.String(),
		}).Warn("Consulta ao provedor excedeu o tempo limite")
	}

	result.elapsed = time.Since(start)

	metrics.ProviderCallsTotal.WithLabelValues(string(t.provider), kind, label).Inc()
	metrics.ProviderCallDuration.WithLabelValues(string(t.provider), kind).Observe(result.elapsed.Seconds())

	return result
}
