package snapshotting

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/lottery-results-api/internal/cache"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/pkg/log"
)

// Runner executa uma agregação completa
type Runner[T any] func(ctx context.Context) domain.Report[T]

// Persister grava os registros de uma execução bem-sucedida
type Persister[T any] func(ctx context.Context, records []T) error

// Policy decide de onde vem a resposta: cache fresco, execução ao vivo ou cache vencido.
// Execuções ao vivo simultâneas são serializadas; quem espera reaproveita o cache recém gravado.
type Policy[T any] struct {
	kind    string
	cache   *cache.Cache[T]
	maxAge  time.Duration
	run     Runner[T]
	persist Persister[T]

	mu      sync.Mutex
	summary *domain.RunSummary
}

type Option[T any] func(*Policy[T])

func WithPersister[T any](persist Persister[T]) Option[T] {
	return func(p *Policy[T]) {
		p.persist = persist
	}
}

func NewPolicy[T any](kind string, c *cache.Cache[T], maxAge time.Duration, run Runner[T], opts ...Option[T]) *Policy[T] {
	p := &Policy[T]{
		kind:   kind,
		cache:  c,
		maxAge: maxAge,
		run:    run,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Latest serve o cache enquanto fresco; depois disso tenta uma execução ao vivo.
// Sem registros ao vivo, recorre ao snapshot vencido; sem snapshot, retorna domain.ErrNoDataAvailable.
func (p *Policy[T]) Latest(ctx context.Context) (domain.View[T], error) {
	if view, ok := p.Fresh(); ok {
		return view, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if view, ok := p.Fresh(); ok {
		return view, nil
	}

	report := p.refreshLocked(ctx)

	if report.Count > 0 {
		snapshot, _, _ := p.cache.Fetch()
		return domain.View[T]{
			Records:   snapshot.Records,
			Source:    domain.ViewSourceLive,
			Count:     report.Count,
			ElapsedMs: report.ElapsedMs,
			Failed:    report.Failed,
			UpdatedAt: snapshot.UpdatedAt,
		}, nil
	}

	if snapshot, age, ok := p.cache.Fetch(); ok {
		log.ForContext(ctx).WithFields(log.Fields{
			"kind":        p.kind,
			"age_minutes": cache.AgeMinutes(age),
		}).Warn("Execução ao vivo sem registros, servindo cache vencido")

		return domain.View[T]{
			Records:    snapshot.Records,
			Source:     domain.ViewSourceStaleCache,
			AgeMinutes: cache.AgeMinutes(age),
			Count:      len(snapshot.Records),
			ElapsedMs:  report.ElapsedMs,
			Failed:     report.Failed,
			UpdatedAt:  snapshot.UpdatedAt,
		}, nil
	}

	if report.Empty() {
		return domain.View[T]{}, domain.ErrNoDataAvailable
	}

	// nenhuma loteria consultada: lista vazia, não ausência de dados
	return domain.View[T]{
		Records:   []T{},
		Source:    domain.ViewSourceLive,
		ElapsedMs: report.ElapsedMs,
		Failed:    report.Failed,
	}, nil
}

// Refresh força uma execução ao vivo, usada pelo agendador e pelo disparo manual
func (p *Policy[T]) Refresh(ctx context.Context) domain.Report[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.refreshLocked(ctx)
}

// LastRun retorna o resumo da última execução, se houver
func (p *Policy[T]) LastRun() (domain.RunSummary, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.summary == nil {
		return domain.RunSummary{}, false
	}
	return *p.summary, true
}

func (p *Policy[T]) Cache() *cache.Cache[T] {
	return p.cache
}

func (p *Policy[T]) refreshLocked(ctx context.Context) domain.Report[T] {
	report := p.run(ctx)

	summary := report.Summary()
	p.summary = &summary

	if report.Count == 0 {
		return report
	}

	p.cache.Store(report.Records)

	if p.persist != nil {
		if err := p.persist(ctx, report.Records); err != nil {
			log.ForContext(ctx).WithError(err).WithFields(log.Fields{
				"kind":   p.kind,
				"run_id": report.RunID,
			}).Error("Erro ao persistir execução")
		}
	}

	return report
}

// Fresh retorna o snapshot somente se ainda estiver dentro da validade
func (p *Policy[T]) Fresh() (domain.View[T], bool) {
	snapshot, age, ok := p.cache.Fetch()
	if !ok || age > p.maxAge {
		return domain.View[T]{}, false
	}

	return domain.View[T]{
		Records:    snapshot.Records,
		Source:     domain.ViewSourceCache,
		AgeMinutes: cache.AgeMinutes(age),
		Count:      len(snapshot.Records),
		UpdatedAt:  snapshot.UpdatedAt,
	}, true
}
