package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForContext(t *testing.T) {
	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithRunID(ctx, "run-1")

	entry := ForContext(ctx)

	assert.Equal(t, correlationID, entry.Data[CorrelationIDField])
	assert.Equal(t, "run-1", entry.Data[RunIDField])
	assert.Empty(t, ForContext(context.Background()).Data)
}

func TestDevelopmentFormatter(t *testing.T) {
	logger := logrus.New()
	var out bytes.Buffer
	logger.SetOutput(&out)
	logger.SetFormatter(DevelopmentFormatter{Formatter: &logrus.TextFormatter{DisableColors: true, DisableTimestamp: true}})

	logger.WithFields(logrus.Fields{
		"slug":       "mega-sena",
		"user_agent": "curl/8.0",
		"cron_type":  "results",
	}).Info("teste")

	line := out.String()
	require.NotEmpty(t, line)
	assert.Contains(t, line, "slug=mega-sena")
	assert.Contains(t, line, "cron_type=results")
	assert.NotContains(t, line, "user_agent")
}
