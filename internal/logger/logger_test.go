package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Debug().Str("key", "value").Msg("debug message")
	assert.Contains(t, buf.String(), "debug message")
	assert.Contains(t, buf.String(), "value")
}

func TestNew_InvalidLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New("nonsense", &buf)

	log.Info().Msg("should be filtered")
	assert.Empty(t, buf.String())

	log.Warn().Msg("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestEntry_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Info().
		Str("str", "s").
		Int("int", 42).
		Bool("bool", true).
		Dur("dur", 1500*time.Microsecond).
		Err(errors.New("boom")).
		Msg("fields")

	out := buf.String()
	assert.Contains(t, out, "fields")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "boom")
}

func TestEntry_ErrNil(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Error().Err(nil).Msg("no error attached")
	assert.Contains(t, buf.String(), "no error attached")
	assert.NotContains(t, buf.String(), "error=")
}
