package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/bondval/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)
	require.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("points", 3).Debug("priced curve")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "priced curve", entry["msg"])
	require.Equal(t, float64(3), entry["points"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LoggingConfig{Level: "chatty", Format: "text"}, &buf)
	require.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	require.Empty(t, buf.String())
	log.Info("shown")
	require.Contains(t, buf.String(), "shown")
}
