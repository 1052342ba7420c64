package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
}

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Service: "bodegas-api", Output: &buf})

	l.Debug().Msg("no se escribe")
	comp := l.Component("traslados")
	comp.Info().Int64("cantidad", 3).Msg("ok")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "bodegas-api", line["service"])
	assert.Equal(t, "traslados", line["component"])
	assert.Equal(t, "ok", line["message"])
	assert.EqualValues(t, 3, line["cantidad"])
}
