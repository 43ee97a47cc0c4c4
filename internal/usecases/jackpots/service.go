package jackpots

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lottery-results-api/infrastructure/repository"
	"github.com/vfg2006/lottery-results-api/internal/cache"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/registry"
	"github.com/vfg2006/lottery-results-api/internal/usecases/aggregating"
	"github.com/vfg2006/lottery-results-api/internal/usecases/snapshotting"
	"github.com/vfg2006/lottery-results-api/pkg/metrics"
	"github.com/vfg2006/lottery-results-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_jackpots.go -package=mocks

type Service interface {
	Latest(ctx context.Context) (domain.JackpotsView, error)
	Refresh(ctx context.Context) domain.JackpotsReport
	Catalog(ctx context.Context) ([]domain.CatalogItem, error)
	LastRun() (domain.RunSummary, bool)
}

type JackpotsService struct {
	registry   *registry.Registry
	aggregator aggregating.Aggregator
	policy     *snapshotting.Policy[domain.JackpotData]
	repository repository.JackpotRepository
	now        func() time.Time
}

type Option func(*JackpotsService)

func WithRepository(repo repository.JackpotRepository) Option {
	return func(s *JackpotsService) {
		s.repository = repo
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *JackpotsService) {
		s.now = now
	}
}

func NewService(
	cfg *config.Config,
	reg *registry.Registry,
	aggregator aggregating.Aggregator,
	c *cache.Cache[domain.JackpotData],
	opts ...Option,
) *JackpotsService {
	s := &JackpotsService{
		registry:   reg,
		aggregator: aggregator,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	var policyOpts []snapshotting.Option[domain.JackpotData]
	if s.repository != nil {
		policyOpts = append(policyOpts, snapshotting.WithPersister(s.repository.SaveJackpots))
	}

	s.policy = snapshotting.NewPolicy(metrics.KindJackpots, c, cfg.JackpotsCache.MaxAge(), s.run, policyOpts...)

	return s
}

func (s *JackpotsService) Latest(ctx context.Context) (domain.JackpotsView, error) {
	return s.policy.Latest(ctx)
}

func (s *JackpotsService) Refresh(ctx context.Context) domain.JackpotsReport {
	return s.policy.Refresh(ctx)
}

func (s *JackpotsService) LastRun() (domain.RunSummary, bool) {
	return s.policy.LastRun()
}

// Catalog lista todas as loterias com o jackpot atual.
// Loterias sem valor ao vivo recebem o valor de referência do catálogo, marcado como fallback.
func (s *JackpotsService) Catalog(ctx context.Context) ([]domain.CatalogItem, error) {
	live := make(map[string]domain.JackpotData)

	view, err := s.policy.Latest(ctx)
	switch {
	case err == nil:
		for _, jackpot := range view.Records {
			live[jackpot.Slug] = jackpot
		}
	case errors.Is(err, domain.ErrNoDataAvailable):
		logrus.Warn("Sem jackpots ao vivo, catálogo servido apenas com valores de referência")
	default:
		return nil, err
	}

	now := s.now()
	entries := s.registry.All()
	items := make([]domain.CatalogItem, 0, len(entries))

	for _, entry := range entries {
		jackpot, ok := live[entry.Slug]
		if !ok {
			jackpot = fallbackJackpot(entry)
		}

		item := domain.CatalogItem{
			Slug:     entry.Slug,
			Name:     entry.Name,
			Country:  entry.Country,
			Currency: entry.Currency,
			DrawDays: entry.DrawDays,
			DrawTime: entry.DrawTime,
			Timezone: entry.Timezone,
			Jackpot:  jackpot,
		}

		next, err := entry.NextDraw(now)
		if err != nil {
			logrus.WithError(err).WithField("slug", entry.Slug).Warn("Não foi possível calcular o próximo sorteio")
		} else {
			item.NextDraw = next.Format(time.RFC3339)
		}

		items = append(items, item)
	}

	return items, nil
}

func fallbackJackpot(entry registry.Entry) domain.JackpotData {
	if entry.FallbackJackpot == "" {
		return domain.JackpotData{
			Slug:    entry.Slug,
			Jackpot: entry.Symbol + " " + domain.MissingValue,
			Source:  domain.SourceFallback,
		}
	}

	return domain.JackpotData{
		Slug:       entry.Slug,
		Jackpot:    entry.FallbackJackpot,
		JackpotRaw: utils.ParseFormattedAmount(entry.FallbackJackpot),
		Source:     domain.SourceFallback,
	}
}

func (s *JackpotsService) run(ctx context.Context) domain.JackpotsReport {
	return s.aggregator.RunJackpots(ctx, s.registry.JackpotEntries())
}
