package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Debug("debug", nil)
	log.Info("info", nil)
	log.Warn("warn", map[string]interface{}{"id": 1})

	entries := lines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, map[string]interface{}{"id": float64(1)}, entries[0]["fields"])
}

func TestLogger_ErrorCarriesCause(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Error("falhou", errors.New("db down"))

	entries := lines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Equal(t, "db down", entries[0]["error"])
}

func TestLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf).(*SlogLogger)
	code := 0
	log.exit = func(c int) { code = c }

	log.Fatal("encerrando", errors.New("boom"))

	assert.Equal(t, 1, code)
	entries := lines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "FATAL", entries[0]["level"])
}

func TestParseLevel_UnknownIsInfo(t *testing.T) {
	assert.Equal(t, parseLevel("info"), parseLevel("verbose"))
}
