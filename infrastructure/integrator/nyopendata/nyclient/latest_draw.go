package nyclient

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	nydomain "github.com/vfg2006/lottery-results-api/infrastructure/integrator/nyopendata/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrEmptyDataset = errors.New("dataset sem sorteios")

// LatestDraw consulta a API SODA ordenando pela data do sorteio
func (c *NYClient) LatestDraw(ctx context.Context, dataset string) (*nydomain.Draw, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("dataset", dataset).
		SetQueryParams(map[string]string{
			"$order": "draw_date DESC",
			"$limit": "1",
		}).
		Get("/resource/{dataset}.json")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}

	if !res.IsSuccess() {
		return nil, errors.Errorf("requisição falhou com status: %s", res.Status())
	}

	var draws []nydomain.Draw
	if err := json.Unmarshal(res.Body(), &draws); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	if len(draws) == 0 {
		return nil, ErrEmptyDataset
	}

	return &draws[0], nil
}
