package utils

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MillionsThreshold separa valores informados em milhões ("22") de valores em unidades ("22000000")
const MillionsThreshold = 10_000

const missingValue = "—"

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatThousands arredonda e agrupa os milhares com ponto: 47000000 -> "47.000.000"
func FormatThousands(value float64) string {
	return ptBR.Sprintf("%d", int64(math.Round(value)))
}

// FormatCurrency formata "<símbolo> <valor>", ou "<símbolo> —" quando não há valor
func FormatCurrency(symbol string, value float64) string {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return symbol + " " + missingValue
	}
	return symbol + " " + FormatThousands(value)
}

// FormatRoundedMillions formata o valor arredondado para milhões quando passa de um milhão
func FormatRoundedMillions(symbol string, value float64) string {
	if value >= 1_000_000 {
		value = math.Round(value/1_000_000) * 1_000_000
	}
	return FormatCurrency(symbol, value)
}

// NormalizeMillions converte para unidades valores informados em milhões
func NormalizeMillions(value float64) float64 {
	if value > 0 && value < MillionsThreshold {
		return value * 1_000_000
	}
	return value
}

// ParseAmount interpreta um valor numérico vindo de JSON (número ou texto com vírgulas)
func ParseAmount(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, !math.IsNaN(v)
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		cleaned := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
		if cleaned == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || math.IsNaN(parsed) {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

// ParseFormattedAmount extrai os dígitos de um valor já formatado: "R$ 3.000.000" -> 3000000
func ParseFormattedAmount(formatted string) float64 {
	var b strings.Builder
	for _, r := range formatted {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}
