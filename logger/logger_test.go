package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"", InfoLevel, false},
		{" warning ", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"fatal", FatalLevel, false},
		{"verbose", InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "debug", DebugLevel.String())
	assert.Equal(t, "warn", WarnLevel.String())
	assert.Equal(t, "level(9)", Level(9).String())
}

func TestSlogLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogWithWriter(&buf, InfoLevel, false, false)

	l.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug must be filtered at info level")

	l.Info("frame decoded", "msg_id", 0x0200, "len", 42)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "frame decoded", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.Contains(t, rec, "ts")
	assert.NotContains(t, rec, "time")
	assert.InDelta(t, 42, rec["len"], 0)
}

func TestSlogLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogWithWriter(&buf, ErrorLevel, false, false)
	assert.Equal(t, ErrorLevel, l.Level())

	l.Warn("dropped")
	assert.Zero(t, buf.Len())

	l.SetLevel(DebugLevel)
	assert.Equal(t, DebugLevel, l.Level())

	l.Debug("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	parent := NewSlogWithWriter(&buf, InfoLevel, false, false)
	child := parent.With("component", "codec")

	child.Info("child")
	assert.Contains(t, buf.String(), `"component":"codec"`)

	buf.Reset()
	parent.Info("parent")
	assert.NotContains(t, buf.String(), "component")

	// child shares the parent's level
	parent.SetLevel(ErrorLevel)
	buf.Reset()
	child.Info("filtered")
	assert.Zero(t, buf.Len())
}

func TestSlogLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogWithWriter(&buf, InfoLevel, false, true)

	l.Warn("escape pair not recognized", "pos", 7)
	assert.Contains(t, buf.String(), "escape pair not recognized")
	assert.Contains(t, buf.String(), "pos")
}

func TestMockLogger(t *testing.T) {
	m := NewMockLogger()
	m.On("Warn", "lenient", []any{"count", 1}).Return()

	var l Logger = m
	l.Warn("lenient", "count", 1)

	m.AssertExpectations(t)
}
