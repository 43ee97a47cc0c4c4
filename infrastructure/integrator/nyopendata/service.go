package nyopendata

import (
	"context"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator"
	nydomain "github.com/vfg2006/lottery-results-api/infrastructure/integrator/nyopendata/domain"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/nyopendata/nyclient"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/registry"
	"github.com/vfg2006/lottery-results-api/pkg/utils"
)

// mainNumbersCount é a quantidade de números principais em Powerball e Mega Millions
const mainNumbersCount = 5

var (
	errNoResultsSource = errors.New("loteria sem fonte de resultados")
	errInvalidNumbers  = errors.New("números sorteados inválidos")
	errShortDraw       = errors.New("sorteio com menos números que o esperado")
)

type NYOpenDataService struct {
	client nyclient.Client
}

func NewService(client nyclient.Client) *NYOpenDataService {
	return &NYOpenDataService{client: client}
}

func (s *NYOpenDataService) FetchResult(ctx context.Context, entry registry.Entry) domain.Outcome[domain.LotteryResult] {
	if entry.Results == nil {
		return integrator.Absent[domain.LotteryResult](ctx, registry.ProviderNYOpenData, entry, errNoResultsSource)
	}

	draw, err := s.client.LatestDraw(ctx, entry.Results.UpstreamID)
	if err != nil {
		return integrator.Absent[domain.LotteryResult](ctx, registry.ProviderNYOpenData, entry, err)
	}

	result, err := toLotteryResult(entry, draw)
	if err != nil {
		return integrator.Absent[domain.LotteryResult](ctx, registry.ProviderNYOpenData, entry, err)
	}

	return domain.Found(result)
}

// toLotteryResult separa "01 02 03 04 05 06" em cinco números principais e a bola extra.
// Quando o dataset publica a bola extra em coluna própria, ela vem dos campos do catálogo.
func toLotteryResult(entry registry.Entry, draw *nydomain.Draw) (domain.LotteryResult, error) {
	tokens := strings.Fields(draw.WinningNumbers)

	all := integrator.CoerceNumbers(tokens)
	if all == nil {
		return domain.LotteryResult{}, errInvalidNumbers
	}
	if len(all) < mainNumbersCount {
		return domain.LotteryResult{}, errShortDraw
	}

	numbers := slices.Clone(all[:mainNumbersCount])
	slices.Sort(numbers)

	extras := integrator.ProbeNumbers(draw.Fields, entry.ExtrasFields)
	if len(all) > mainNumbersCount {
		extras = []int{all[mainNumbersCount]}
	}

	return domain.LotteryResult{
		Slug:    entry.Slug,
		Name:    entry.Name,
		Country: entry.Country,
		Numbers: numbers,
		Extras:  extras,
		Date:    utils.DatePart(draw.DrawDate),
		Prize:   multiplierPrize(entry.Symbol, draw.Multiplier),
	}, nil
}

func multiplierPrize(symbol, multiplier string) string {
	multiplier = strings.TrimSpace(multiplier)
	if multiplier == "" {
		return symbol + " " + domain.MissingValue
	}
	return symbol + " " + multiplier + "x"
}
