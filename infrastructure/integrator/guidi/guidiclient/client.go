package guidiclient

import (
	"context"

	"github.com/go-resty/resty/v2"
	guididomain "github.com/vfg2006/lottery-results-api/infrastructure/integrator/guidi/domain"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/pkg/utils"
)

type Client interface {
	LatestDraw(ctx context.Context, lotteryID string) (*guididomain.Draw, error)
}

type GuidiClient struct {
	httpClient *resty.Client
}

func NewClient(cfg *config.Config) Client {
	return &GuidiClient{
		httpClient: utils.NewHTTPClient(cfg.Providers.GuidiURL, ""),
	}
}
