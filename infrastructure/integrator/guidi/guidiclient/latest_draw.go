package guidiclient

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	guididomain "github.com/vfg2006/lottery-results-api/infrastructure/integrator/guidi/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (c *GuidiClient) LatestDraw(ctx context.Context, lotteryID string) (*guididomain.Draw, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("lottery", lotteryID).
		Get("/loteria/{lottery}/ultimo")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}

	if !res.IsSuccess() {
		return nil, errors.Errorf("requisição falhou com status: %s", res.Status())
	}

	var draw guididomain.Draw
	if err := json.Unmarshal(res.Body(), &draw); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return &draw, nil
}
