package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrettyHandlerWritesAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, "pretty", slog.LevelInfo)

	log.With("component", "auth").WithGroup("req").Info("login", "user", "ana", slog.Group("db", "rows", 1))

	out := buf.String()
	require.Contains(t, out, "login")
	require.Contains(t, out, "component"+reset+"=auth")
	require.Contains(t, out, "req.user"+reset+"=ana")
	require.Contains(t, out, "req.db.rows"+reset+"=1")
	require.Contains(t, out, green+"INFO")
}

func TestPrettyHandlerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, "pretty", slog.LevelWarn)

	log.Info("hidden")
	require.Empty(t, buf.String())

	log.Error("shown")
	require.Contains(t, buf.String(), red+"ERROR")
}

func TestNewJSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, "JSON", slog.LevelInfo)
	log.Info("started", "port", "8000")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "started", record["msg"])
	require.Equal(t, "8000", record["port"])
}
