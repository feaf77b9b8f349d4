package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", &buf)

	log.WithField("period", "10min").Info("Fetching hotspot feed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Fetching hotspot feed", entry["message"])
	assert.Equal(t, "10min", entry["period"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNewWithOutput_InvalidLevel(t *testing.T) {
	log := NewWithOutput("verbose", &bytes.Buffer{})

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
