package guidi

import (
	"context"
	"slices"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator"
	guididomain "github.com/vfg2006/lottery-results-api/infrastructure/integrator/guidi/domain"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/guidi/guidiclient"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/registry"
	"github.com/vfg2006/lottery-results-api/pkg/utils"
)

const defaultDrawTime = "20:00"

var (
	errNoResultsSource = errors.New("loteria sem fonte de resultados")
	errNoJackpotSource = errors.New("loteria sem fonte de jackpot")
	errNoNumbers       = errors.New("sorteio sem dezenas")
	errInvalidNumbers  = errors.New("dezenas inválidas")
	errNoJackpot       = errors.New("sem estimativa para o próximo concurso")
)

type GuidiService struct {
	client guidiclient.Client
}

func NewService(client guidiclient.Client) *GuidiService {
	return &GuidiService{client: client}
}

func (s *GuidiService) FetchResult(ctx context.Context, entry registry.Entry) domain.Outcome[domain.LotteryResult] {
	if entry.Results == nil {
		return integrator.Absent[domain.LotteryResult](ctx, registry.ProviderGuidi, entry, errNoResultsSource)
	}

	draw, err := s.client.LatestDraw(ctx, entry.Results.UpstreamID)
	if err != nil {
		return integrator.Absent[domain.LotteryResult](ctx, registry.ProviderGuidi, entry, err)
	}

	result, err := toLotteryResult(entry, draw)
	if err != nil {
		return integrator.Absent[domain.LotteryResult](ctx, registry.ProviderGuidi, entry, err)
	}

	return domain.Found(result)
}

func (s *GuidiService) FetchJackpot(ctx context.Context, entry registry.Entry) domain.Outcome[domain.JackpotData] {
	if entry.Jackpot == nil {
		return integrator.Absent[domain.JackpotData](ctx, registry.ProviderGuidi, entry, errNoJackpotSource)
	}

	draw, err := s.client.LatestDraw(ctx, entry.Jackpot.UpstreamID)
	if err != nil {
		return integrator.Absent[domain.JackpotData](ctx, registry.ProviderGuidi, entry, err)
	}

	value := draw.NextJackpot()
	if value <= 0 {
		return integrator.Absent[domain.JackpotData](ctx, registry.ProviderGuidi, entry, errNoJackpot)
	}

	return domain.Found(domain.JackpotData{
		Slug:       entry.Slug,
		Jackpot:    utils.FormatCurrency(entry.Symbol, value),
		JackpotRaw: value,
		NextDraw:   nextDrawAt(entry, draw.DataProximoConcurso),
		Source:     domain.SourceAPI,
	})
}

func toLotteryResult(entry registry.Entry, draw *guididomain.Draw) (domain.LotteryResult, error) {
	dezenas := draw.Dezenas()
	if len(dezenas) == 0 {
		return domain.LotteryResult{}, errNoNumbers
	}

	numbers := integrator.CoerceNumbers(dezenas)
	if numbers == nil {
		return domain.LotteryResult{}, errInvalidNumbers
	}
	slices.Sort(numbers)

	result := domain.LotteryResult{
		Slug:     entry.Slug,
		Name:     entry.Name,
		Country:  entry.Country,
		Numbers:  numbers,
		Extras:   integrator.ProbeNumbers(draw.Fields, entry.ExtrasFields),
		Date:     utils.ISODateFromBR(draw.DataApuracao),
		Prize:    prize(entry, draw),
		NextDate: utils.ISODateFromBR(draw.DataProximoConcurso),
	}

	if concurso := draw.Concurso(); concurso > 0 {
		result.Concurso = strconv.Itoa(concurso)
	}

	if draw.ValorEstimadoProximoConcurso > 0 {
		result.NextPrize = utils.FormatCurrency(entry.Symbol, draw.ValorEstimadoProximoConcurso)
	}

	return result, nil
}

// prize usa a primeira faixa do rateio; sem ganhador, o concurso acumulou
func prize(entry registry.Entry, draw *guididomain.Draw) string {
	if len(draw.ListaRateioPremio) == 0 {
		return domain.RolloverPrize
	}

	main := draw.ListaRateioPremio[0]
	if main.NumeroDeGanhadores <= 0 {
		return domain.RolloverPrize
	}

	return utils.FormatCurrency(entry.Symbol, main.ValorPremio)
}

func nextDrawAt(entry registry.Entry, dataProximoConcurso string) string {
	date := utils.ISODateFromBR(dataProximoConcurso)
	if date == "" {
		return ""
	}

	drawTime := entry.DrawTime
	if drawTime == "" {
		drawTime = defaultDrawTime
	}
	return date + "T" + drawTime + ":00"
}
