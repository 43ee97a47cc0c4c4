package guididomain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Draw é a resposta de /loteria/{loteria}/ultimo, espelho da API da Caixa
type Draw struct {
	Numero                         int         `json:"numero"`
	NumeroConcurso                 int         `json:"numeroConcurso"`
	Acumulado                      bool        `json:"acumulado"`
	DataApuracao                   string      `json:"dataApuracao"`
	DataProximoConcurso            string      `json:"dataProximoConcurso"`
	ListaDezenas                   []string    `json:"listaDezenas"`
	DezenasSorteadasOrdemSorteio   []string    `json:"dezenasSorteadasOrdemSorteio"`
	ListaDezenasSegundoSorteio     []string    `json:"listaDezenasSegundoSorteio"`
	ListaRateioPremio              []PrizeTier `json:"listaRateioPremio"`
	ValorEstimadoProximoConcurso   float64     `json:"valorEstimadoProximoConcurso"`
	ValorAcumuladoProximoConcurso  float64     `json:"valorAcumuladoProximoConcurso"`
	ValorAcumuladoConcursoEspecial float64     `json:"valorAcumuladoConcursoEspecial"`
	ValorAcumuladoConcurso05       float64     `json:"valorAcumuladoConcurso_0_5"`
	ValorAcumulado                 float64     `json:"valorAcumulado"`

	// Fields guarda o payload bruto para a busca de campos configurada no catálogo
	Fields map[string]any `json:"-"`
}

type PrizeTier struct {
	DescricaoFaixa     string  `json:"descricaoFaixa"`
	Faixa              int     `json:"faixa"`
	NumeroDeGanhadores int     `json:"numeroDeGanhadores"`
	ValorPremio        float64 `json:"valorPremio"`
}

func (d *Draw) UnmarshalJSON(data []byte) error {
	type plain Draw
	if err := json.Unmarshal(data, (*plain)(d)); err != nil {
		return err
	}
	return json.Unmarshal(data, &d.Fields)
}

// Concurso retorna o número do concurso, ou vazio quando o espelho não informa
func (d *Draw) Concurso() int {
	if d.Numero != 0 {
		return d.Numero
	}
	return d.NumeroConcurso
}

// Dezenas prefere a lista ordenada e recorre à ordem do sorteio
func (d *Draw) Dezenas() []string {
	if len(d.ListaDezenas) > 0 {
		return d.ListaDezenas
	}
	return d.DezenasSorteadasOrdemSorteio
}

// NextJackpot segue a cadeia de campos que o espelho usa para a estimativa do próximo concurso
func (d *Draw) NextJackpot() float64 {
	for _, v := range []float64{
		d.ValorEstimadoProximoConcurso,
		d.ValorAcumuladoProximoConcurso,
		d.ValorAcumuladoConcursoEspecial,
	} {
		if v > 0 {
			return v
		}
	}

	if d.ValorAcumuladoConcurso05 > 0 {
		return d.ValorAcumuladoConcurso05
	}
	if d.Acumulado && d.ValorAcumulado > 0 {
		return d.ValorAcumulado
	}
	return 0
}
