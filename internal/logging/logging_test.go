package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-engine/internal/config"
)

func TestSetupLevels(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	require.NoError(t, Setup(log, &config.Config{Development: true}))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	require.NoError(t, Setup(log, &config.Config{}))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	assert.Error(t, Setup(log, &config.Config{Log: config.Log{Level: "loud"}}))
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.log")
	log := logrus.New()
	log.SetOutput(io.Discard)

	require.NoError(t, Setup(log, &config.Config{Log: config.Log{File: path}}))
	log.WithField("game", "test").Info("mines placed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"mines placed"`)
	assert.Contains(t, string(data), `"game":"test"`)
}
