package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/boundedq/pkg/settings"
)

func TestNew_Defaults(t *testing.T) {
	l, err := New(settings.Logger{})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_Level(t *testing.T) {
	l, err := New(settings.Logger{LogLevel: "debug"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(settings.Logger{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.log")
	l, err := New(settings.Logger{FileLogName: path})
	require.NoError(t, err)

	l.Info("hello")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestSetDefaultConfig_KeepsExplicitValues(t *testing.T) {
	cfg := settings.Logger{LogLevel: "warn", MaxSize: 1, MaxBackups: 2, MaxAge: 3}
	setDefaultConfig(&cfg)
	assert.Equal(t, settings.Logger{LogLevel: "warn", MaxSize: 1, MaxBackups: 2, MaxAge: 3}, cfg)
}
