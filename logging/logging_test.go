package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestSetLevel(t *testing.T) {
	SetLevel("error")
	assert.Equal(t, slog.LevelError, level.Level())
	SetLevel("info")
	assert.Equal(t, slog.LevelInfo, level.Level())
}
