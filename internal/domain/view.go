package domain

import (
	"errors"
	"time"
)

var (
	ErrNoDataAvailable = errors.New("nenhum dado disponível")
	ErrUnknownLottery  = errors.New("loteria não encontrada")
)

type ViewSource string

const (
	ViewSourceCache      ViewSource = "cache"
	ViewSourceLive       ViewSource = "live"
	ViewSourceStaleCache ViewSource = "stale-cache"
)

// View é a resposta servida aos clientes a partir do cache ou de uma execução ao vivo
type View[T any] struct {
	Records    []T        `json:"records"`
	Source     ViewSource `json:"source"`
	AgeMinutes int        `json:"ageMinutes"`
	Count      int        `json:"count"`
	ElapsedMs  int64      `json:"elapsedMs,omitempty"`
	Failed     []string   `json:"failed,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type (
	ResultsView  = View[LotteryResult]
	JackpotsView = View[JackpotData]
)
