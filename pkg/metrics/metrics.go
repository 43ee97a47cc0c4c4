package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lottery"

const (
	LabelProvider = "provider"
	LabelKind     = "kind"
	LabelOutcome  = "outcome"
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
)

const (
	KindResults  = "results"
	KindJackpots = "jackpots"

	OutcomeOk      = "ok"
	OutcomeAbsent  = "absent"
	OutcomeTimeout = "timeout"
	OutcomePanic   = "panic"
)

var (
	providerLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30}
	httpLatencyBuckets     = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
)

// Provedores
var (
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "Total de chamadas aos provedores por resultado",
		},
		[]string{LabelProvider, LabelKind, LabelOutcome},
	)

	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_call_duration_seconds",
			Help:      "Duração das chamadas aos provedores",
			Buckets:   providerLatencyBuckets,
		},
		[]string{LabelProvider, LabelKind},
	)
)

// Agregação
var (
	AggregationRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_run_duration_seconds",
			Help:      "Duração de uma execução completa do agregador",
			Buckets:   providerLatencyBuckets,
		},
		[]string{LabelKind},
	)

	AggregationRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "aggregation_records",
			Help:      "Registros obtidos na última execução do agregador",
		},
		[]string{LabelKind},
	)

	AggregationFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "aggregation_failures",
			Help:      "Loterias sem dados na última execução do agregador",
		},
		[]string{LabelKind},
	)
)

// HTTP
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP",
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP",
			Buckets:   httpLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)
)
