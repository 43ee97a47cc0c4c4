package lottolandclient

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	lottolanddomain "github.com/vfg2006/lottery-results-api/infrastructure/integrator/lottoland/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (c *LottolandClient) Drawing(ctx context.Context, lotteryID string) (*lottolanddomain.Drawing, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("lottery", lotteryID).
		Get("/api/drawings/{lottery}")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}

	if !res.IsSuccess() {
		return nil, errors.Errorf("requisição falhou com status: %s", res.Status())
	}

	var drawing lottolanddomain.Drawing
	if err := json.Unmarshal(res.Body(), &drawing); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return &drawing, nil
}
