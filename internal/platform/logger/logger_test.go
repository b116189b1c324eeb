package logger

import (
	"bytes"
	"errors"
	"testing"

	alog "github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, alog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, alog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, alog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, alog.InfoLevel, ParseLevel(""))
	assert.Equal(t, alog.InfoLevel, ParseLevel("verbose"))
}

func TestWith_MergesFieldsAndFiltersLevel(t *testing.T) {
	h := memory.New()
	l := NewWithHandler(h, alog.InfoLevel).With(map[string]any{"component": "alerts"})

	l.Debug("oculto", nil)
	l.Warn("sink failed", map[string]any{"sink": "nats", "err": errors.New("timeout"), "": "x"})

	require.Len(t, h.Entries, 1)
	e := h.Entries[0]
	assert.Equal(t, "sink failed", e.Message)
	assert.Equal(t, alog.WarnLevel, e.Level)
	assert.Equal(t, "alerts", e.Fields["component"])
	assert.Equal(t, "nats", e.Fields["sink"])
	assert.Equal(t, "timeout", e.Fields["err"])
	_, blank := e.Fields[""]
	assert.False(t, blank)
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: alog.InfoLevel, Format: FormatJSON, App: "pet-finder", Output: &buf})

	l.Info("listening", map[string]any{"port": "8080"})
	assert.Contains(t, buf.String(), `"app":"pet-finder"`)
	assert.Contains(t, buf.String(), `"port":"8080"`)
	assert.Contains(t, buf.String(), `"message":"listening"`)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().With(map[string]any{"a": 1}).Error("nada", nil)
	})
}
