package lottolandclient

import (
	"context"

	"github.com/go-resty/resty/v2"
	lottolanddomain "github.com/vfg2006/lottery-results-api/infrastructure/integrator/lottoland/domain"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/pkg/utils"
)

type Client interface {
	Drawing(ctx context.Context, lotteryID string) (*lottolanddomain.Drawing, error)
}

type LottolandClient struct {
	httpClient *resty.Client
}

// NewResultsClient aponta para o site principal, que publica o último sorteio
func NewResultsClient(cfg *config.Config) Client {
	return &LottolandClient{
		httpClient: utils.NewHTTPClient(cfg.Providers.LottolandResultsURL, cfg.Providers.UserAgent),
	}
}

// NewJackpotsClient aponta para o host de mídia, que publica o próximo sorteio
func NewJackpotsClient(cfg *config.Config) Client {
	return &LottolandClient{
		httpClient: utils.NewHTTPClient(cfg.Providers.LottolandJackpotsURL, cfg.Providers.UserAgent),
	}
}
