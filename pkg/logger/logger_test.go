package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mebel-store/pkg/logger"
)

func TestNewWithWriter_RespetaNivelYComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "warn").Named("mirror")

	log.Info().Msg("descartado")
	log.Warn().Str("key", "products").Msg("cuota excedida")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "info no debe escribirse con nivel warn")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "mirror", entry["component"])
	assert.Equal(t, "products", entry["key"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNop_NoPanics(t *testing.T) {
	log := logger.Nop()
	log.Error().Msg("nada")
	log.Named("x").Info().Msg("nada")
}
