package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.Debug().Int("entries", 3).Msg("parsed")
	assert.Contains(t, buf.String(), "parsed")
	assert.Contains(t, buf.String(), "entries=3")
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)
	log.Info().Str("file", "txnlog.dat").Msg("reading")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "reading", line["message"])
	assert.Equal(t, "txnlog.dat", line["file"])
	assert.Contains(t, line, "time")
}
