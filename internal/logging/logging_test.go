package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/fxarb/internal/logging"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := logging.NewConfig(false)
	assert.Equal(t, zapcore.InfoLevel, cfg.Level.Level())
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
	assert.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
	assert.Equal(t, "json", cfg.Encoding)

	assert.Equal(t, zapcore.DebugLevel, logging.NewConfig(true).Level.Level())
}

func TestNew(t *testing.T) {
	t.Parallel()

	logger, err := logging.New(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	logging.Sync(logger)
	logging.Sync(nil)
}
