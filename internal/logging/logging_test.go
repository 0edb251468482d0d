package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lotto-precourse/reward-calculator/internal/calculation"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ calculation.Logger = (*Adapter)(nil)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"info":    zerolog.InfoLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestAdapterWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Out: &buf})
	require.NoError(t, err)

	a := NewAdapter(l)
	a.Debugf("rate %s", "6250.0")
	a.Infof("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "rate 6250.0", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn", Out: &buf})
	require.NoError(t, err)

	a := NewAdapter(l)
	a.Debugf("hidden")
	a.Infof("hidden")
	a.Warnf("shown")
	a.Errorf("shown too")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, 2, strings.Count(out, "shown"))
}

func TestPrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Pretty: true, Out: &buf})
	require.NoError(t, err)

	NewAdapter(l).Infof("sample run complete")
	assert.Contains(t, buf.String(), "sample run complete")
	assert.False(t, strings.HasPrefix(buf.String(), "{"), "pretty output is not JSON")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty"})
	assert.Error(t, err)
}
