package log

import (
	"io"
	"os"
	"testing"

	"github.com/christophe-duc/lazysdes/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, debug bool) *config.AppConfig {
	return &config.AppConfig{
		Name:      "lazysdes",
		Version:   "test",
		Debug:     debug,
		ConfigDir: t.TempDir(),
	}
}

func TestProductionLoggerDiscards(t *testing.T) {
	t.Setenv("DEBUG", "")
	entry := NewLogger(newTestConfig(t, false))

	assert.Equal(t, io.Discard, entry.Logger.Out)
	assert.Equal(t, logrus.ErrorLevel, entry.Logger.GetLevel())
	assert.Equal(t, "lazysdes", entry.Data["name"])
}

func TestDevelopmentLoggerWritesToConfigDir(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	appConfig := newTestConfig(t, true)
	entry := NewLogger(appConfig)
	assert.Equal(t, logrus.InfoLevel, entry.Logger.GetLevel())

	entry.Info("search started")

	content, err := os.ReadFile(logFilename(appConfig))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"search started"`)
	assert.Contains(t, string(content), `"version":"test"`)
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, logrus.WarnLevel, getLogLevel())

	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, logrus.DebugLevel, getLogLevel())
}
