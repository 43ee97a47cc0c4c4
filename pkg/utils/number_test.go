package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		value  float64
		want   string
	}{
		{name: "Milhões em reais", symbol: "R$", value: 47_000_000, want: "R$ 47.000.000"},
		{name: "Arredonda centavos", symbol: "R$", value: 1_234.56, want: "R$ 1.235"},
		{name: "Valor pequeno sem agrupamento", symbol: "€", value: 950, want: "€ 950"},
		{name: "Zero vira placeholder", symbol: "€", value: 0, want: "€ —"},
		{name: "Negativo vira placeholder", symbol: "£", value: -10, want: "£ —"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.symbol, tt.value))
		})
	}
}

func TestFormatRoundedMillions(t *testing.T) {
	assert.Equal(t, "US$ 137.000.000", FormatRoundedMillions("US$", 136_600_000))
	assert.Equal(t, "€ 950.000", FormatRoundedMillions("€", 950_000))
}

func TestNormalizeMillions(t *testing.T) {
	short, ok := ParseAmount("22")
	assert.True(t, ok)
	full, ok := ParseAmount("22000000")
	assert.True(t, ok)

	assert.Equal(t, NormalizeMillions(short), NormalizeMillions(full))
	assert.Equal(t, 22_000_000.0, NormalizeMillions(short))
	assert.Equal(t,
		FormatCurrency("€", NormalizeMillions(short)),
		FormatCurrency("€", NormalizeMillions(full)),
	)
	assert.Equal(t, 0.0, NormalizeMillions(0))
	assert.Equal(t, 10_000.0, NormalizeMillions(10_000))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		want   float64
		wantOk bool
	}{
		{name: "Número JSON", raw: 22.5, want: 22.5, wantOk: true},
		{name: "Texto com vírgulas", raw: "1,200,000", want: 1_200_000, wantOk: true},
		{name: "Texto vazio", raw: " ", wantOk: false},
		{name: "Texto inválido", raw: "abc", wantOk: false},
		{name: "Nulo", raw: nil, wantOk: false},
		{name: "Booleano", raw: true, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseFormattedAmount(t *testing.T) {
	assert.Equal(t, 3_000_000.0, ParseFormattedAmount("R$ 3.000.000"))
	assert.Equal(t, 20_000.0, ParseFormattedAmount("€ 20.000/mês"))
	assert.Equal(t, 0.0, ParseFormattedAmount("US$ —"))
}
