package nydomain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Draw é uma linha dos datasets de sorteios do portal data.ny.gov
type Draw struct {
	DrawDate       string `json:"draw_date"`
	WinningNumbers string `json:"winning_numbers"`
	Multiplier     string `json:"multiplier"`

	Fields map[string]any `json:"-"`
}

func (d *Draw) UnmarshalJSON(data []byte) error {
	type plain Draw
	if err := json.Unmarshal(data, (*plain)(d)); err != nil {
		return err
	}
	return json.Unmarshal(data, &d.Fields)
}
