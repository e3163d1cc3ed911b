package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    slog.Level
		wantErr bool
	}{
		{raw: "", want: slog.LevelInfo},
		{raw: "debug", want: slog.LevelDebug},
		{raw: "WARN", want: slog.LevelWarn},
		{raw: " error ", want: slog.LevelError},
		{raw: "info+2", want: slog.LevelInfo + 2},
		{raw: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseLevel(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_TagsRecords(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "staging"
	cfg.Env.ServiceName = "marketplace-api"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := New(Params{Config: cfg, Output: &buf})
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("Order placed", slog.String("orderNumber", "ORD-20250314-0007"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Order placed", record["msg"])
	assert.Equal(t, "marketplace-api", record["service"])
	assert.Equal(t, "staging", record["env"])
	assert.Equal(t, "ORD-20250314-0007", record["orderNumber"])
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})
	assert.ErrorContains(t, err, "env.log.level")
}
