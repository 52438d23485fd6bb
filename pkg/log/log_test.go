package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetupTestLogger()
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	return &buf
}

func TestWithFields_DevelopmentFiltersIrrelevantFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"content_type": "施工事例",
		"remote_addr":  "127.0.0.1",
		"operator":     "operator@exterior-example.com",
	}).Info("gerado")

	out := buf.String()
	assert.Contains(t, out, "content_type")
	assert.Contains(t, out, "operator")
	assert.NotContains(t, out, "remote_addr")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithField("remote_addr", "127.0.0.1").Info("requisição")

	assert.Contains(t, buf.String(), "remote_addr=127.0.0.1")
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestEnsureCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	same, sameID := EnsureCorrelationID(ctx)
	assert.Equal(t, id, sameID)
	assert.Equal(t, ctx, same)

	_, newID := EnsureCorrelationID(context.Background())
	assert.NotEmpty(t, newID)
	assert.NotEqual(t, id, newID)
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	Setup("barulhento")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
