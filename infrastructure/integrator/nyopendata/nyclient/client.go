package nyclient

import (
	"context"

	"github.com/go-resty/resty/v2"
	nydomain "github.com/vfg2006/lottery-results-api/infrastructure/integrator/nyopendata/domain"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/pkg/utils"
)

type Client interface {
	LatestDraw(ctx context.Context, dataset string) (*nydomain.Draw, error)
}

type NYClient struct {
	httpClient *resty.Client
}

func NewClient(cfg *config.Config) Client {
	return &NYClient{
		httpClient: utils.NewHTTPClient(cfg.Providers.NYOpenDataURL, ""),
	}
}
