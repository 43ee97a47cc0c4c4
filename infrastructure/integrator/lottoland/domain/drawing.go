package lottolanddomain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Drawing é a resposta de /api/drawings/{loteria}
type Drawing struct {
	Last *Draw `json:"last"`
	Next *Draw `json:"next"`
}

type Draw struct {
	Numbers []any     `json:"numbers"`
	Date    *DrawDate `json:"date"`
	// Jackpot chega ora como número, ora como texto, em milhões ou em unidades
	Jackpot          any    `json:"jackpot"`
	MarketingJackpot any    `json:"marketingJackpot"`
	Currency         string `json:"currency"`

	Fields map[string]any `json:"-"`
}

type DrawDate struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Hour      *int   `json:"hour"`
	Minute    *int   `json:"minute"`
	DayOfWeek string `json:"dayOfWeek"`
}

func (d *Draw) UnmarshalJSON(data []byte) error {
	type plain Draw
	if err := json.Unmarshal(data, (*plain)(d)); err != nil {
		return err
	}
	return json.Unmarshal(data, &d.Fields)
}
