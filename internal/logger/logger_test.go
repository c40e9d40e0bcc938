package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := newWithWriter(&bytes.Buffer{}, false, tt.level)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, false, "info")

	l.Debug().Msg("hidden")
	l.Info().Str("market_id", "m-1").Msg("market created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "market created", line["message"])
	assert.Equal(t, "m-1", line["market_id"])
	assert.Equal(t, "parimutuel-engine", line["app"])
}
