package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew_Defaults(t *testing.T) {
	c := New(nil)
	assert.Equal(t, "warn", c.GetLevel())
	assert.Equal(t, zapcore.WarnLevel, c.GetZapLevel())
	assert.True(t, c.IsConsoleEnabled())
	assert.Empty(t, c.GetFilePath())
	assert.Equal(t, 10, c.GetMaxSize())
	assert.True(t, c.IsCompressionEnabled())
}

func TestNew_Overrides(t *testing.T) {
	off := false
	c := New(&LogOptions{
		Level:      "DEBUG",
		ToConsole:  &off,
		FilePath:   "/tmp/burnwallet.log",
		MaxBackups: 7,
		Compress:   &off,
	})
	assert.Equal(t, zapcore.DebugLevel, c.GetZapLevel())
	assert.False(t, c.IsConsoleEnabled())
	assert.Equal(t, "/tmp/burnwallet.log", c.GetFilePath())
	assert.Equal(t, 7, c.GetMaxBackups())
	assert.Equal(t, 28, c.GetMaxAge())
	assert.False(t, c.IsCompressionEnabled())
}

func TestConfig_WithLevel(t *testing.T) {
	base := New(nil)
	debug := base.WithLevel("debug")
	assert.Equal(t, zapcore.DebugLevel, debug.GetZapLevel())
	assert.Equal(t, "warn", base.GetLevel())
}

func TestGetZapLevel_Unknown(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, New(&LogOptions{Level: "verbose"}).GetZapLevel())
}
