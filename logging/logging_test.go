package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/0xalexb/kfrag/logging"

	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var entry map[string]any

		require.NoError(t, json.Unmarshal([]byte(line), &entry), "every line should be JSON")

		entries = append(entries, entry)
	}

	return entries
}

func TestNewLogger_EmitterMessagesAsJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "debug"}, &buf)

	logger.Debug("config written", slog.String("key", "CONFIG_HZ"), slog.String("value", "1000"))
	logger.Info("fragment written", slog.String("frag", "frags/x86.config"), slog.Int("entries", 1))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	require.Equal(t, "DEBUG", entries[0]["level"])
	require.Equal(t, "CONFIG_HZ", entries[0]["key"])

	require.Equal(t, "INFO", entries[1]["level"])
	require.Equal(t, "frags/x86.config", entries[1]["frag"])
	require.InDelta(t, 1, entries[1]["entries"], 0)
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	// Each job run logs one message per level; the table lists which survive.
	testCases := []struct {
		configLevel string
		wantLevels  []string
	}{
		{configLevel: "debug", wantLevels: []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{configLevel: "", wantLevels: []string{"INFO", "WARN", "ERROR"}},
		{configLevel: "warning", wantLevels: []string{"WARN", "ERROR"}},
		{configLevel: " Warn ", wantLevels: []string{"WARN", "ERROR"}},
		{configLevel: "ERROR", wantLevels: []string{"ERROR"}},
		{configLevel: "verbose", wantLevels: []string{"INFO", "WARN", "ERROR"}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run("level "+testCase.configLevel, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := logging.NewLogger(logging.LoggerConfig{Level: testCase.configLevel}, &buf)
			ctx := context.Background()

			logger.Log(ctx, slog.LevelDebug, "config written")
			logger.Log(ctx, slog.LevelInfo, "fragment written")
			logger.Log(ctx, slog.LevelWarn, "configs is empty")
			logger.Log(ctx, slog.LevelError, "kfrag failed")

			var gotLevels []string
			for _, entry := range decodeLines(t, &buf) {
				gotLevels = append(gotLevels, entry["level"].(string))
			}

			require.Equal(t, testCase.wantLevels, gotLevels)
		})
	}
}

func TestNewLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "info", Format: "TEXT"}, &buf)

	logger.Info("fragment written", slog.String("frag", "frags/x86.config"))

	require.Contains(t, buf.String(), "level=INFO")
	require.Contains(t, buf.String(), "frag=frags/x86.config")
	require.Error(t, json.Unmarshal(buf.Bytes(), &map[string]any{}), "text output should not be JSON")
}

func TestNewLogger_UnknownFormatIsJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Format: "xml"}, &buf)

	logger.Error("kfrag failed", slog.String("kind", "missing-key"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "missing-key", entries[0]["kind"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, logging.ParseLevel("WARNING"))
	require.Equal(t, slog.LevelError, logging.ParseLevel("Error"))
	require.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
}
