package domain

import "time"

// Outcome é o retorno de uma consulta a um provedor: o registro ou o motivo da ausência
type Outcome[T any] struct {
	Record *T
	Reason string
}

func Found[T any](record T) Outcome[T] {
	return Outcome[T]{Record: &record}
}

func Absent[T any](reason string) Outcome[T] {
	return Outcome[T]{Reason: reason}
}

func (o Outcome[T]) Ok() bool {
	return o.Record != nil
}

// SlugStatus descreve o resultado de uma chamada individual dentro de uma execução
type SlugStatus struct {
	Slug      string `json:"slug"`
	Ok        bool   `json:"ok"`
	Reason    string `json:"reason,omitempty"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Report agrega os registros de uma execução completa do agregador
type Report[T any] struct {
	RunID     string                `json:"runId"`
	Records   []T                   `json:"records"`
	Failed    []string              `json:"failed"`
	Statuses  map[string]SlugStatus `json:"statuses"`
	Count     int                   `json:"count"`
	Elapsed   time.Duration         `json:"-"`
	ElapsedMs int64                 `json:"elapsedMs"`
}

type (
	ResultsReport  = Report[LotteryResult]
	JackpotsReport = Report[JackpotData]
)

// RunSummary resume uma execução sem os registros
type RunSummary struct {
	RunID      string        `json:"runId"`
	Count      int           `json:"count"`
	Failed     []string      `json:"failed"`
	Elapsed    time.Duration `json:"-"`
	ElapsedMs  int64         `json:"elapsedMs"`
	FinishedAt time.Time     `json:"finishedAt"`
}

func (r Report[T]) Summary() RunSummary {
	return RunSummary{
		RunID:      r.RunID,
		Count:      r.Count,
		Failed:     r.Failed,
		Elapsed:    r.Elapsed,
		ElapsedMs:  r.ElapsedMs,
		FinishedAt: time.Now(),
	}
}

// Empty indica que nenhum registro foi produzido mesmo havendo loterias consultadas
func (r Report[T]) Empty() bool {
	return r.Count == 0 && len(r.Failed) > 0
}
