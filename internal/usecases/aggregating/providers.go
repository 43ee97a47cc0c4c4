package aggregating

import (
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/guidi"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/guidi/guidiclient"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/lottoland"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/lottoland/lottolandclient"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/nyopendata"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/nyopendata/nyclient"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/internal/registry"
)

// WithDefaultProviders registra os adaptadores dos três provedores a partir da configuração.
// O portal de NY publica apenas resultados; os jackpots americanos vêm da Lottoland.
func WithDefaultProviders(cfg *config.Config) Option {
	return func(s *Service) {
		guidiService := guidi.NewService(guidiclient.NewClient(cfg))
		nyService := nyopendata.NewService(nyclient.NewClient(cfg))
		lottolandService := lottoland.NewService(
			lottolandclient.NewResultsClient(cfg),
			lottolandclient.NewJackpotsClient(cfg),
		)

		s.resultFetchers[registry.ProviderGuidi] = guidiService
		s.resultFetchers[registry.ProviderNYOpenData] = nyService
		s.resultFetchers[registry.ProviderLottoland] = lottolandService

		s.jackpotFetchers[registry.ProviderGuidi] = guidiService
		s.jackpotFetchers[registry.ProviderLottoland] = lottolandService
	}
}

// NewDefaultService monta o agregador com os provedores reais
func NewDefaultService(cfg *config.Config) *Service {
	return NewService(cfg.Aggregation.CallTimeout, WithDefaultProviders(cfg))
}
