package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gtkbridge/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"trace", zerolog.TraceLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"", zerolog.InfoLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(logging.EnvLevel, "debug")
	t.Setenv(logging.EnvFormat, "json")

	cfg := logging.ConfigFromEnv(logging.DefaultConfig())

	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestConfigFromEnv_IgnoresInvalid(t *testing.T) {
	t.Setenv(logging.EnvLevel, "nope")
	t.Setenv(logging.EnvFormat, "xml")

	cfg := logging.ConfigFromEnv(logging.DefaultConfig())

	assert.Equal(t, logging.DefaultConfig().Level, cfg.Level)
	assert.Equal(t, "console", cfg.Format)
}

func TestNew_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf
	cfg.Level = zerolog.WarnLevel

	logger := logging.New(cfg)
	logger.Info().Msg("dropped")
	logger.Warn().Str("k", "v").Msg("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"k":"v"`)
	assert.Contains(t, buf.String(), `"message":"kept"`)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))

	ctx = logging.WithComponent(ctx, "demo")
	ctx = logging.WithScenario(ctx, "checkbox")
	logging.FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"demo"`)
	assert.Contains(t, buf.String(), `"scenario":"checkbox"`)
}

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	l := logging.FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
