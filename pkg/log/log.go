package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields = logrus.Fields

type contextKey string

const (
	correlationIDKey contextKey = "correlation_id"
	runIDKey         contextKey = "run_id"

	CorrelationIDField = "correlation_id"
	RunIDField         = "run_id"
)

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// WithCorrelationID gera um id de correlação e o guarda no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.NewString()
	return context.WithValue(ctx, correlationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// WithRunID associa uma execução do agregador ao contexto
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(runIDKey).(string); ok {
		return runID
	}
	return ""
}

// ForContext devolve uma entrada do logrus já com os ids presentes no contexto
func ForContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if ctx == nil {
		return entry
	}

	fields := Fields{}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		fields[CorrelationIDField] = correlationID
	}
	if runID := GetRunID(ctx); runID != "" {
		fields[RunIDField] = runID
	}
	if len(fields) == 0 {
		return entry
	}

	return entry.WithFields(fields)
}

// campos mantidos em desenvolvimento
var developmentFields = map[string]struct{}{
	CorrelationIDField: {},
	RunIDField:         {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	logrus.ErrorKey:    {},
	"slug":             {},
	"provider":         {},
	"reason":           {},
	"sync":             {},
	"count":            {},
	"kind":             {},
	"elapsed_ms":       {},
	"failed":           {},
}

// DevelopmentFormatter descarta campos de rastreabilidade para deixar o console legível
type DevelopmentFormatter struct {
	logrus.Formatter
}

func (f DevelopmentFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	filtered := make(logrus.Fields, len(entry.Data))
	for k, v := range entry.Data {
		if isRelevantField(k) {
			filtered[k] = v
		}
	}

	clone := *entry
	clone.Data = filtered
	return f.Formatter.Format(&clone)
}

func isRelevantField(key string) bool {
	if _, ok := developmentFields[key]; ok {
		return true
	}
	return strings.HasPrefix(key, "cron_")
}

// Setup configura o logger global conforme o ambiente
func Setup(level logrus.Level) {
	var formatter logrus.Formatter = &logrus.JSONFormatter{}
	if IsDevelopment() {
		formatter = DevelopmentFormatter{Formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
			PadLevelText:    true,
		}}
	}

	logrus.SetFormatter(formatter)
	logrus.SetLevel(level)
}
