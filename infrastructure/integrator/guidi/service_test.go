package guidi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lottery-results-api/infrastructure/integrator/guidi/guidiclient"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/registry"
)

const megaSenaWithWinner = `{
	"numero": 2850,
	"dataApuracao": "03/06/2025",
	"dataProximoConcurso": "05/06/2025",
	"acumulado": false,
	"listaDezenas": ["42", "07", "13", "58", "21", "33"],
	"listaRateioPremio": [
		{"descricaoFaixa": "6 acertos", "faixa": 1, "numeroDeGanhadores": 1, "valorPremio": 47000000.35},
		{"descricaoFaixa": "5 acertos", "faixa": 2, "numeroDeGanhadores": 80, "valorPremio": 52000.12}
	],
	"valorEstimadoProximoConcurso": 3000000
}`

const megaSenaRollover = `{
	"numero": 2851,
	"dataApuracao": "05/06/2025",
	"dataProximoConcurso": "07/06/2025",
	"acumulado": true,
	"listaDezenas": ["01", "02", "03", "04", "05", "06"],
	"listaRateioPremio": [
		{"faixa": 1, "numeroDeGanhadores": 0, "valorPremio": 0}
	],
	"valorEstimadoProximoConcurso": 0,
	"valorAcumuladoProximoConcurso": 45000000
}`

const duplaSena = `{
	"numeroConcurso": 2700,
	"dataApuracao": "04/06/2025",
	"dezenasSorteadasOrdemSorteio": ["30", "10", "20", "40", "50", "05"],
	"listaDezenasSegundoSorteio": ["08", "02", "45", "11", "19", "33"],
	"listaRateioPremio": []
}`

func megaSenaEntry() registry.Entry {
	return registry.Entry{
		Slug:     "mega-sena",
		Name:     "Mega-Sena",
		Country:  "Brasil",
		Currency: "BRL",
		Symbol:   "R$",
		Results:  &registry.UpstreamSource{Provider: registry.ProviderGuidi, UpstreamID: "megasena"},
		Jackpot:  &registry.UpstreamSource{Provider: registry.ProviderGuidi, UpstreamID: "megasena"},
		DrawTime: "20:00",
	}
}

func newStubService(t *testing.T, status int, body string) *GuidiService {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{Providers: config.Providers{GuidiURL: server.URL}}
	return NewService(guidiclient.NewClient(cfg))
}

func TestGuidiService_FetchResult(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		entry    func() registry.Entry
		ok       bool
		validate func(t *testing.T, result domain.LotteryResult)
	}{
		{
			name:   "Concurso com ganhador formata o prêmio principal",
			status: http.StatusOK,
			body:   megaSenaWithWinner,
			entry:  megaSenaEntry,
			ok:     true,
			validate: func(t *testing.T, result domain.LotteryResult) {
				assert.Equal(t, "mega-sena", result.Slug)
				assert.Equal(t, []int{7, 13, 21, 33, 42, 58}, result.Numbers)
				assert.Equal(t, []int{}, result.Extras)
				assert.Equal(t, "2025-06-03", result.Date)
				assert.Equal(t, "R$ 47.000.000", result.Prize)
				assert.Equal(t, "2850", result.Concurso)
				assert.Equal(t, "R$ 3.000.000", result.NextPrize)
				assert.Equal(t, "2025-06-05", result.NextDate)
			},
		},
		{
			name:   "Concurso sem ganhador acumula",
			status: http.StatusOK,
			body:   megaSenaRollover,
			entry:  megaSenaEntry,
			ok:     true,
			validate: func(t *testing.T, result domain.LotteryResult) {
				assert.Equal(t, domain.RolloverPrize, result.Prize)
				assert.NotEqual(t, "R$ 0", result.Prize)
				assert.Empty(t, result.NextPrize)
			},
		},
		{
			name:   "Dupla Sena usa a ordem do sorteio e o segundo sorteio como extras",
			status: http.StatusOK,
			body:   duplaSena,
			entry: func() registry.Entry {
				e := megaSenaEntry()
				e.Slug = "dupla-sena"
				e.ExtrasFields = []string{"listaDezenasSegundoSorteio"}
				return e
			},
			ok: true,
			validate: func(t *testing.T, result domain.LotteryResult) {
				assert.Equal(t, []int{5, 10, 20, 30, 40, 50}, result.Numbers)
				assert.Equal(t, []int{2, 8, 11, 19, 33, 45}, result.Extras)
				assert.Equal(t, "2700", result.Concurso)
				assert.Equal(t, domain.RolloverPrize, result.Prize)
			},
		},
		{
			name:   "Status 500 vira ausência",
			status: http.StatusInternalServerError,
			body:   `{"error": "boom"}`,
			entry:  megaSenaEntry,
		},
		{
			name:   "JSON inválido vira ausência",
			status: http.StatusOK,
			body:   `<html>manutenção</html>`,
			entry:  megaSenaEntry,
		},
		{
			name:   "Sorteio sem dezenas vira ausência",
			status: http.StatusOK,
			body:   `{"numero": 1, "listaDezenas": []}`,
			entry:  megaSenaEntry,
		},
		{
			name:   "Loteria sem fonte de resultados",
			status: http.StatusOK,
			body:   megaSenaWithWinner,
			entry: func() registry.Entry {
				e := megaSenaEntry()
				e.Results = nil
				return e
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newStubService(t, tt.status, tt.body)

			outcome := service.FetchResult(context.Background(), tt.entry())

			if !tt.ok {
				assert.False(t, outcome.Ok())
				assert.NotEmpty(t, outcome.Reason)
				return
			}

			require.True(t, outcome.Ok(), outcome.Reason)
			tt.validate(t, *outcome.Record)
		})
	}
}

func TestGuidiService_FetchJackpot(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		ok           bool
		wantJackpot  string
		wantRaw      float64
		wantNextDraw string
	}{
		{
			name:         "Usa a estimativa do próximo concurso",
			body:         megaSenaWithWinner,
			ok:           true,
			wantJackpot:  "R$ 3.000.000",
			wantRaw:      3000000,
			wantNextDraw: "2025-06-05T20:00:00",
		},
		{
			name:         "Recorre ao valor acumulado para o próximo concurso",
			body:         megaSenaRollover,
			ok:           true,
			wantJackpot:  "R$ 45.000.000",
			wantRaw:      45000000,
			wantNextDraw: "2025-06-07T20:00:00",
		},
		{
			name:        "Acumulado sem estimativa usa o valor acumulado",
			body:        `{"acumulado": true, "valorAcumulado": 1200000}`,
			ok:          true,
			wantJackpot: "R$ 1.200.000",
			wantRaw:     1200000,
		},
		{
			name: "Sem nenhum valor positivo vira ausência",
			body: `{"acumulado": false, "valorAcumulado": 1200000}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newStubService(t, http.StatusOK, tt.body)

			outcome := service.FetchJackpot(context.Background(), megaSenaEntry())

			if !tt.ok {
				assert.False(t, outcome.Ok())
				return
			}

			require.True(t, outcome.Ok(), outcome.Reason)
			assert.Equal(t, tt.wantJackpot, outcome.Record.Jackpot)
			assert.Equal(t, tt.wantRaw, outcome.Record.JackpotRaw)
			assert.Equal(t, tt.wantNextDraw, outcome.Record.NextDraw)
			assert.Equal(t, domain.SourceAPI, outcome.Record.Source)
		})
	}
}

func TestGuidiClient_RequestPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(megaSenaWithWinner))
	}))
	defer server.Close()

	client := guidiclient.NewClient(&config.Config{Providers: config.Providers{GuidiURL: server.URL}})

	draw, err := client.LatestDraw(context.Background(), "diadesorte")
	require.NoError(t, err)
	assert.Equal(t, "/loteria/diadesorte/ultimo", gotPath)
	assert.Equal(t, 2850, draw.Concurso())
	assert.Contains(t, draw.Fields, "listaRateioPremio")
}
