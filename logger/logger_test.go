package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	l, err := Init("debug", "json")
	require.NoError(t, err)
	assert.Same(t, l, L())
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = Init("WARN", "console")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	Sync()
}

func TestInitRejectsBadInput(t *testing.T) {
	_, err := Init("loud", "json")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = Init("info", "xml")
	assert.ErrorContains(t, err, "invalid log format")
}
