// SPDX-License-Identifier: MIT
package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	t.Run("Should convert all log levels to charm log levels correctly", func(t *testing.T) {
		testCases := []struct {
			level    LogLevel
			expected int
		}{
			{DebugLevel, -4},
			{InfoLevel, 0},
			{WarnLevel, 4},
			{ErrorLevel, 8},
			{DisabledLevel, 1000},
			{LogLevel("unknown"), 0},
		}
		for _, tc := range testCases {
			assert.Equal(t, tc.expected, int(tc.level.ToCharmlogLevel()), "level %s", tc.level)
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should write text output to the configured sink", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: InfoLevel, Output: &buf, TimeFormat: "15:04:05"})
		l.Info("joined clusters", "left", "A", "right", "B")

		out := buf.String()
		assert.Contains(t, out, "joined clusters")
		assert.Contains(t, out, "left=A")
	})

	t.Run("Should emit JSON when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true})
		l.With("algorithm", "NJ").Info("start")

		line := strings.TrimSpace(buf.String())
		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &payload))
		assert.Equal(t, "start", payload["msg"])
		assert.Equal(t, "NJ", payload["algorithm"])
	})

	t.Run("Should filter messages below the level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: WarnLevel, Output: &buf})
		l.Info("hidden")
		l.Debug("hidden")
		assert.Empty(t, buf.String())
	})
}

func TestInitAndParseLevel(t *testing.T) {
	prev := GetDefault()
	t.Cleanup(func() {
		defaultMu.Lock()
		defaultLogger = prev
		defaultMu.Unlock()
	})

	var buf bytes.Buffer
	Init(&Config{Level: DebugLevel, Output: &buf})
	GetDefault().Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	assert.Equal(t, WarnLevel, ParseLevel("warn"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}
