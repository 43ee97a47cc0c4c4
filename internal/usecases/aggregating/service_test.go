package aggregating

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/guidi"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/guidi/guidiclient"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/mocks"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/registry"
	"go.uber.org/mock/gomock"
)

func guidiEntry(slug, upstreamID string) registry.Entry {
	source := &registry.UpstreamSource{Provider: registry.ProviderGuidi, UpstreamID: upstreamID}
	return registry.Entry{
		Slug:     slug,
		Name:     slug,
		Country:  "Brasil",
		Currency: "BRL",
		Symbol:   "R$",
		Results:  source,
		Jackpot:  source,
	}
}

func lottolandEntry(slug string) registry.Entry {
	source := &registry.UpstreamSource{Provider: registry.ProviderLottoland, UpstreamID: slug}
	return registry.Entry{Slug: slug, Name: slug, Currency: "EUR", Symbol: "€", Results: source, Jackpot: source}
}

func TestService_RunResults_PartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/loteria/a/ultimo", "/loteria/c/ultimo":
			_, _ = w.Write([]byte(`{"numero": 10, "dataApuracao": "03/06/2025", "listaDezenas": ["01", "02", "03"],
				"listaRateioPremio": [{"numeroDeGanhadores": 0}]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	cfg := &config.Config{Providers: config.Providers{GuidiURL: server.URL}}
	service := NewService(time.Second, WithResultFetcher(registry.ProviderGuidi, guidi.NewService(guidiclient.NewClient(cfg))))

	reg, err := registry.New([]registry.Entry{
		guidiEntry("loteria-a", "a"),
		guidiEntry("loteria-b", "b"),
		guidiEntry("loteria-c", "c"),
	})
	require.NoError(t, err)

	report := service.RunResults(context.Background(), reg.ResultEntries())

	assert.Equal(t, 2, report.Count)
	require.Len(t, report.Records, 2)
	assert.ElementsMatch(t, []string{"loteria-a", "loteria-c"}, []string{report.Records[0].Slug, report.Records[1].Slug})
	assert.Equal(t, []string{"loteria-b"}, report.Failed)
	assert.NotEmpty(t, report.RunID)

	require.Len(t, report.Statuses, 3)
	assert.True(t, report.Statuses["loteria-a"].Ok)
	assert.False(t, report.Statuses["loteria-b"].Ok)
	assert.NotEmpty(t, report.Statuses["loteria-b"].Reason)
}

func TestService_RunResults_TimeoutDoesNotBlockSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	slow := mocks.NewMockResultFetcher(ctrl)
	fast := mocks.NewMockResultFetcher(ctrl)

	slowEntry := guidiEntry("lenta", "lenta")
	fastEntry := lottolandEntry("rapida")

	// o adaptador lento ignora o contexto de propósito
	slow.EXPECT().FetchResult(gomock.Any(), slowEntry).DoAndReturn(
		func(ctx context.Context, entry registry.Entry) domain.Outcome[domain.LotteryResult] {
			time.Sleep(2 * time.Second)
			return domain.Found(domain.LotteryResult{Slug: entry.Slug})
		},
	)
	fast.EXPECT().FetchResult(gomock.Any(), fastEntry).Return(domain.Found(domain.LotteryResult{Slug: "rapida"}))

	service := NewService(50*time.Millisecond,
		WithResultFetcher(registry.ProviderGuidi, slow),
		WithResultFetcher(registry.ProviderLottoland, fast),
	)

	start := time.Now()
	report := service.RunResults(context.Background(), []registry.Entry{slowEntry, fastEntry})
	elapsed := time.Since(start)

	assert.Less(t, elapsed, time.Second)
	assert.Equal(t, 1, report.Count)
	assert.Equal(t, "rapida", report.Records[0].Slug)
	assert.Equal(t, []string{"lenta"}, report.Failed)
	assert.Equal(t, ReasonTimeout, report.Statuses["lenta"].Reason)
}

func TestService_RunResults_RunsConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockResultFetcher(ctrl)

	entries := make([]registry.Entry, 0, 5)
	for _, slug := range []string{"a", "b", "c", "d", "e"} {
		entries = append(entries, guidiEntry(slug, slug))
	}

	fetcher.EXPECT().FetchResult(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry registry.Entry) domain.Outcome[domain.LotteryResult] {
			time.Sleep(200 * time.Millisecond)
			return domain.Found(domain.LotteryResult{Slug: entry.Slug})
		},
	).Times(len(entries))

	service := NewService(time.Second, WithResultFetcher(registry.ProviderGuidi, fetcher))

	start := time.Now()
	report := service.RunResults(context.Background(), entries)

	assert.Less(t, time.Since(start), 800*time.Millisecond)
	assert.Equal(t, 5, report.Count)
	assert.Empty(t, report.Failed)
}

func TestService_RunResults_Absences(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(ctrl *gomock.Controller) []Option
		entry      registry.Entry
		wantReason string
	}{
		{
			name: "Provedor sem adaptador registrado",
			setup: func(ctrl *gomock.Controller) []Option {
				return nil
			},
			entry:      guidiEntry("sem-adaptador", "x"),
			wantReason: ReasonNoAdapter,
		},
		{
			name: "Panic no adaptador vira ausência",
			setup: func(ctrl *gomock.Controller) []Option {
				fetcher := mocks.NewMockResultFetcher(ctrl)
				fetcher.EXPECT().FetchResult(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, entry registry.Entry) domain.Outcome[domain.LotteryResult] {
						panic("resposta inesperada")
					},
				)
				return []Option{WithResultFetcher(registry.ProviderGuidi, fetcher)}
			},
			entry:      guidiEntry("com-panic", "x"),
			wantReason: "falha inesperada no adaptador: resposta inesperada",
		},
		{
			name: "Motivo do adaptador é preservado",
			setup: func(ctrl *gomock.Controller) []Option {
				fetcher := mocks.NewMockResultFetcher(ctrl)
				fetcher.EXPECT().FetchResult(gomock.Any(), gomock.Any()).
					Return(domain.Absent[domain.LotteryResult]("sorteio sem dezenas"))
				return []Option{WithResultFetcher(registry.ProviderGuidi, fetcher)}
			},
			entry:      guidiEntry("sem-dezenas", "x"),
			wantReason: "sorteio sem dezenas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewService(time.Second, tt.setup(ctrl)...)

			report := service.RunResults(context.Background(), []registry.Entry{tt.entry})

			assert.Equal(t, 0, report.Count)
			assert.Empty(t, report.Records)
			assert.Equal(t, []string{tt.entry.Slug}, report.Failed)
			assert.Equal(t, tt.wantReason, report.Statuses[tt.entry.Slug].Reason)
			assert.True(t, report.Empty())
		})
	}
}

func TestService_RunJackpots(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockJackpotFetcher(ctrl)

	withJackpot := lottolandEntry("eurojackpot")
	withoutJackpot := lottolandEntry("eurodreams")
	withoutJackpot.Jackpot = nil

	fetcher.EXPECT().FetchJackpot(gomock.Any(), withJackpot).Return(domain.Found(domain.JackpotData{
		Slug:       "eurojackpot",
		Jackpot:    "€ 22.000.000",
		JackpotRaw: 22_000_000,
		Source:     domain.SourceAPI,
	}))

	service := NewService(time.Second, WithJackpotFetcher(registry.ProviderLottoland, fetcher))

	report := service.RunJackpots(context.Background(), []registry.Entry{withJackpot, withoutJackpot})

	assert.Equal(t, 1, report.Count)
	assert.Equal(t, "€ 22.000.000", report.Records[0].Jackpot)
	assert.Equal(t, []string{"eurodreams"}, report.Failed)
	assert.Equal(t, ReasonNoSource, report.Statuses["eurodreams"].Reason)
}

func TestService_RunResults_EmptyRegistry(t *testing.T) {
	service := NewService(time.Second)

	report := service.RunResults(context.Background(), nil)

	assert.Equal(t, 0, report.Count)
	assert.NotNil(t, report.Records)
	assert.NotNil(t, report.Failed)
	assert.False(t, report.Empty())
}

func TestService_FetchResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockResultFetcher(ctrl)
	entry := guidiEntry("mega-sena", "megasena")

	fetcher.EXPECT().FetchResult(gomock.Any(), entry).DoAndReturn(
		func(ctx context.Context, entry registry.Entry) domain.Outcome[domain.LotteryResult] {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return domain.Found(domain.LotteryResult{Slug: entry.Slug, Concurso: "2850"})
		},
	)

	service := NewService(time.Second, WithResultFetcher(registry.ProviderGuidi, fetcher))

	outcome := service.FetchResult(context.Background(), entry)

	require.True(t, outcome.Ok())
	assert.Equal(t, "2850", outcome.Record.Concurso)
}

func TestNewDefaultService(t *testing.T) {
	cfg := &config.Config{
		Providers: config.Providers{
			GuidiURL:             "http://guidi.local",
			NYOpenDataURL:        "http://ny.local",
			LottolandResultsURL:  "http://lottoland.local",
			LottolandJackpotsURL: "http://media.lottoland.local",
		},
		Aggregation: config.Aggregation{CallTimeout: 3 * time.Second},
	}

	service := NewDefaultService(cfg)

	assert.Equal(t, 3*time.Second, service.callTimeout)
	assert.Len(t, service.resultFetchers, 3)
	assert.Len(t, service.jackpotFetchers, 2)
	assert.NotContains(t, service.jackpotFetchers, registry.ProviderNYOpenData)
}
