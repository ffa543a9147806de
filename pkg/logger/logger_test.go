package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_JSONWithService(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Service: "catgraph", Output: &buf})
	log.Debug().Str("cat_id", "c1").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catgraph", entry["service"])
	assert.Equal(t, "c1", entry["cat_id"])
	assert.Equal(t, "debug", entry["level"])
}

func TestInit_OnlyFirstCallCounts(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	Init(Options{Output: &second})
	l := Get()
	l.Info().Msg("x")

	assert.NotEmpty(t, first.String())
	assert.Empty(t, second.String())
}

func TestFromContext(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())

	var buf bytes.Buffer
	reqLog := zerolog.New(&buf).With().Str("request_id", "r1").Logger()
	ctx := WithContext(context.Background(), reqLog)
	FromContext(ctx).Info().Msg("scoped")

	assert.Contains(t, buf.String(), `"request_id":"r1"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" WARNING "))
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}
