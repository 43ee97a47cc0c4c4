package lottoland

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator"
	lottolanddomain "github.com/vfg2006/lottery-results-api/infrastructure/integrator/lottoland/domain"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/lottoland/lottolandclient"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/registry"
	"github.com/vfg2006/lottery-results-api/pkg/utils"
)

var (
	errNoResultsSource = errors.New("loteria sem fonte de resultados")
	errNoJackpotSource = errors.New("loteria sem fonte de jackpot")
	errNoLastDraw      = errors.New("resposta sem o último sorteio")
	errNoNextDraw      = errors.New("resposta sem o próximo sorteio")
	errNoNumbers       = errors.New("sorteio sem números")
	errInvalidNumbers  = errors.New("números sorteados inválidos")
	errNoJackpot       = errors.New("próximo sorteio sem jackpot")
)

type LottolandService struct {
	results  lottolandclient.Client
	jackpots lottolandclient.Client
}

func NewService(results, jackpots lottolandclient.Client) *LottolandService {
	return &LottolandService{
		results:  results,
		jackpots: jackpots,
	}
}

func (s *LottolandService) FetchResult(ctx context.Context, entry registry.Entry) domain.Outcome[domain.LotteryResult] {
	if entry.Results == nil {
		return integrator.Absent[domain.LotteryResult](ctx, registry.ProviderLottoland, entry, errNoResultsSource)
	}

	drawing, err := s.results.Drawing(ctx, entry.Results.UpstreamID)
	if err != nil {
		return integrator.Absent[domain.LotteryResult](ctx, registry.ProviderLottoland, entry, err)
	}

	result, err := toLotteryResult(entry, drawing.Last)
	if err != nil {
		return integrator.Absent[domain.LotteryResult](ctx, registry.ProviderLottoland, entry, err)
	}

	return domain.Found(result)
}

func (s *LottolandService) FetchJackpot(ctx context.Context, entry registry.Entry) domain.Outcome[domain.JackpotData] {
	if entry.Jackpot == nil {
		return integrator.Absent[domain.JackpotData](ctx, registry.ProviderLottoland, entry, errNoJackpotSource)
	}

	drawing, err := s.jackpots.Drawing(ctx, entry.Jackpot.UpstreamID)
	if err != nil {
		return integrator.Absent[domain.JackpotData](ctx, registry.ProviderLottoland, entry, err)
	}

	jackpot, err := toJackpotData(entry, drawing.Next)
	if err != nil {
		return integrator.Absent[domain.JackpotData](ctx, registry.ProviderLottoland, entry, err)
	}

	return domain.Found(jackpot)
}

func toLotteryResult(entry registry.Entry, last *lottolanddomain.Draw) (domain.LotteryResult, error) {
	if last == nil {
		return domain.LotteryResult{}, errNoLastDraw
	}
	if len(last.Numbers) == 0 {
		return domain.LotteryResult{}, errNoNumbers
	}

	numbers := integrator.CoerceNumbers(last.Numbers)
	if numbers == nil {
		return domain.LotteryResult{}, errInvalidNumbers
	}
	slices.Sort(numbers)

	prize := entry.Symbol + " " + domain.MissingValue
	if amount, ok := utils.ParseAmount(last.Jackpot); ok && amount > 0 {
		prize = utils.FormatCurrency(entry.Symbol, utils.NormalizeMillions(amount))
	}

	return domain.LotteryResult{
		Slug:    entry.Slug,
		Name:    entry.Name,
		Country: entry.Country,
		Numbers: numbers,
		Extras:  integrator.ProbeNumbers(last.Fields, entry.ExtrasFields),
		Date:    isoDate(last.Date),
		Prize:   prize,
	}, nil
}

// toJackpotData prefere o jackpot do próximo sorteio e recorre ao valor de marketing
func toJackpotData(entry registry.Entry, next *lottolanddomain.Draw) (domain.JackpotData, error) {
	if next == nil {
		return domain.JackpotData{}, errNoNextDraw
	}

	amount, ok := utils.ParseAmount(next.Jackpot)
	if !ok || amount <= 0 {
		amount, ok = utils.ParseAmount(next.MarketingJackpot)
	}
	if !ok || amount <= 0 {
		return domain.JackpotData{}, errNoJackpot
	}

	value := utils.NormalizeMillions(amount)

	return domain.JackpotData{
		Slug:       entry.Slug,
		Jackpot:    utils.FormatRoundedMillions(entry.Symbol, value),
		JackpotRaw: value,
		NextDraw:   isoDateTime(next.Date),
		Source:     domain.SourceAPI,
	}, nil
}

func isoDate(date *lottolanddomain.DrawDate) string {
	if date == nil {
		return ""
	}
	return utils.ISODateFromParts(date.Year, date.Month, date.Day)
}

func isoDateTime(date *lottolanddomain.DrawDate) string {
	if date == nil {
		return ""
	}
	return utils.ISODateTimeFromParts(date.Year, date.Month, date.Day, date.Hour, date.Minute)
}
