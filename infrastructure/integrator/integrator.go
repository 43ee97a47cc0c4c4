package integrator

import (
	"context"

	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/registry"
	"github.com/vfg2006/lottery-results-api/pkg/log"
)

//go:generate mockgen -source=integrator.go -destination=mocks/mock_integrator.go -package=mocks

// ResultFetcher busca o último sorteio de uma loteria em um provedor.
// Nunca retorna erro: falhas viram uma ausência com motivo.
type ResultFetcher interface {
	FetchResult(ctx context.Context, entry registry.Entry) domain.Outcome[domain.LotteryResult]
}

// JackpotFetcher busca o prêmio estimado do próximo sorteio
type JackpotFetcher interface {
	FetchJackpot(ctx context.Context, entry registry.Entry) domain.Outcome[domain.JackpotData]
}

// Absent registra a falha e devolve a ausência correspondente
func Absent[T any](ctx context.Context, provider registry.Provider, entry registry.Entry, err error) domain.Outcome[T] {
	log.ForContext(ctx).WithFields(log.Fields{
		"slug":     entry.Slug,
		"provider": provider,
		"reason":   err.Error(),
	}).Warn("Loteria sem dados neste ciclo")

	return domain.Absent[T](err.Error())
}
