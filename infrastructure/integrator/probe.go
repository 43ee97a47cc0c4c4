package integrator

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// ProbeNumbers procura os números secundários nos campos candidatos, na ordem informada.
// O primeiro campo presente e não vazio vence; um escalar vira um conjunto de um elemento.
func ProbeNumbers(fields map[string]any, candidates []string) []int {
	for _, name := range candidates {
		raw, ok := fields[name]
		if !ok || raw == nil {
			continue
		}

		numbers := CoerceNumbers(raw)
		if len(numbers) > 0 {
			slices.Sort(numbers)
			return numbers
		}
	}
	return []int{}
}

// CoerceNumbers converte arrays, números e textos numéricos em inteiros.
// Qualquer elemento não numérico invalida o valor inteiro.
func CoerceNumbers(raw any) []int {
	switch v := raw.(type) {
	case []any:
		out := make([]int, 0, len(v))
		for _, item := range v {
			n, ok := coerceScalar(item)
			if !ok {
				return nil
			}
			out = append(out, n)
		}
		return out
	case []string:
		out := make([]int, 0, len(v))
		for _, item := range v {
			n, ok := coerceScalar(item)
			if !ok {
				return nil
			}
			out = append(out, n)
		}
		return out
	default:
		if n, ok := coerceScalar(v); ok {
			return []int{n}
		}
	}
	return nil
}

func coerceScalar(raw any) (int, bool) {
	switch v := raw.(type) {
	case float64:
		return fromFloat(v)
	case int:
		return v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return fromFloat(f)
	}
	return 0, false
}

// fromFloat aceita apenas inteiros dentro do intervalo de int32
func fromFloat(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}
