package results

import (
	"context"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/vfg2006/lottery-results-api/infrastructure/repository"
	"github.com/vfg2006/lottery-results-api/internal/cache"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/registry"
	"github.com/vfg2006/lottery-results-api/internal/usecases/aggregating"
	"github.com/vfg2006/lottery-results-api/internal/usecases/snapshotting"
	"github.com/vfg2006/lottery-results-api/pkg/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_results.go -package=mocks

type Service interface {
	Latest(ctx context.Context) (domain.ResultsView, error)
	Refresh(ctx context.Context) domain.ResultsReport
	BySlug(ctx context.Context, slug string) (domain.LotteryResult, error)
	LastRun() (domain.RunSummary, bool)
}

type ResultsService struct {
	registry   *registry.Registry
	aggregator aggregating.Aggregator
	policy     *snapshotting.Policy[domain.LotteryResult]
	bySlug     *expirable.LRU[string, domain.LotteryResult]
	repository repository.LotteryResultRepository
}

type Option func(*ResultsService)

// WithRepository grava cada execução bem-sucedida no banco
func WithRepository(repo repository.LotteryResultRepository) Option {
	return func(s *ResultsService) {
		s.repository = repo
	}
}

func NewService(
	cfg *config.Config,
	reg *registry.Registry,
	aggregator aggregating.Aggregator,
	c *cache.Cache[domain.LotteryResult],
	opts ...Option,
) *ResultsService {
	s := &ResultsService{
		registry:   reg,
		aggregator: aggregator,
		bySlug:     expirable.NewLRU[string, domain.LotteryResult](cfg.SlugCache.Size, nil, cfg.SlugCache.TTL),
	}

	for _, opt := range opts {
		opt(s)
	}

	var policyOpts []snapshotting.Option[domain.LotteryResult]
	if s.repository != nil {
		policyOpts = append(policyOpts, snapshotting.WithPersister(s.repository.SaveResults))
	}

	s.policy = snapshotting.NewPolicy(metrics.KindResults, c, cfg.ResultsCache.MaxAge(), s.run, policyOpts...)

	return s
}

func (s *ResultsService) Latest(ctx context.Context) (domain.ResultsView, error) {
	return s.policy.Latest(ctx)
}

func (s *ResultsService) Refresh(ctx context.Context) domain.ResultsReport {
	return s.policy.Refresh(ctx)
}

func (s *ResultsService) LastRun() (domain.RunSummary, bool) {
	return s.policy.LastRun()
}

// BySlug busca uma única loteria: primeiro no snapshot fresco, depois na memória por slug e por fim no provedor
func (s *ResultsService) BySlug(ctx context.Context, slug string) (domain.LotteryResult, error) {
	entry, ok := s.registry.Lookup(slug)
	if !ok || entry.Results == nil {
		return domain.LotteryResult{}, domain.ErrUnknownLottery
	}

	if view, ok := s.policy.Fresh(); ok {
		for _, result := range view.Records {
			if result.Slug == slug {
				return result, nil
			}
		}
	}

	if result, ok := s.bySlug.Get(slug); ok {
		return result, nil
	}

	outcome := s.aggregator.FetchResult(ctx, entry)
	if !outcome.Ok() {
		return domain.LotteryResult{}, fmt.Errorf("%w: %s", domain.ErrNoDataAvailable, outcome.Reason)
	}

	s.bySlug.Add(slug, *outcome.Record)

	return *outcome.Record, nil
}

func (s *ResultsService) run(ctx context.Context) domain.ResultsReport {
	report := s.aggregator.RunResults(ctx, s.registry.ResultEntries())

	// uma execução completa invalida as consultas avulsas
	if report.Count > 0 {
		s.bySlug.Purge()
	}

	return report
}
