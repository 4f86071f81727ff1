package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/johnkeller101/intervals-icu-mcp/internal/intervals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, raw string) map[string]json.RawMessage {
	t.Helper()
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))
	return envelope
}

func TestBuild_RoundTrip(t *testing.T) {
	raw, err := Build(map[string]any{"x": 1}, Options{})
	require.NoError(t, err)

	envelope := decodeEnvelope(t, raw)
	// keys are exactly {data, analysis, metadata}
	require.Len(t, envelope, 3)
	require.Contains(t, envelope, "data")
	require.Contains(t, envelope, "analysis")
	require.Contains(t, envelope, "metadata")

	var data map[string]any
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.EqualValues(t, 1, data["x"])

	assert.Equal(t, "null", string(envelope["analysis"]))

	var meta map[string]any
	require.NoError(t, json.Unmarshal(envelope["metadata"], &meta))
	assert.NotEmpty(t, meta["fetched_at"])
}

func TestBuild_QueryTypeAndMetadata(t *testing.T) {
	raw, err := Build(
		map[string]any{"count": 3},
		Options{
			Analysis:  map[string]any{"trend": "improving"},
			Metadata:  Meta{"source": "activities"},
			QueryType: "get_activities",
		},
	)
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))

	meta, ok := envelope.Metadata.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "get_activities", meta["query_type"])
	assert.Equal(t, "activities", meta["source"])

	analysis, ok := envelope.Analysis.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "improving", analysis["trend"])
}

func TestBuild_ConvertsDatetimes(t *testing.T) {
	when := time.Date(2026, 8, 30, 7, 15, 0, 0, time.UTC)
	raw, err := Build(map[string]any{
		"start":  when,
		"nested": map[string]any{"updated": "2026-08-30 07:15:00"},
		"list":   []any{when},
	}, Options{})
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))
	data := envelope.Data.(map[string]any)

	assert.Equal(t, "2026-08-30T07:15:00Z", data["start"])
	assert.Equal(t, "2026-08-30T07:15:00", data["nested"].(map[string]any)["updated"])
	assert.Equal(t, "2026-08-30T07:15:00Z", data["list"].([]any)[0])
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	when := time.Date(2026, 8, 30, 7, 15, 0, 0, time.UTC)
	input := map[string]any{"start": when, "nested": map[string]any{"t": when}}

	_, err := Build(input, Options{})
	require.NoError(t, err)

	// caller-owned maps still hold the original time.Time values
	assert.Equal(t, when, input["start"])
	assert.Equal(t, when, input["nested"].(map[string]any)["t"])
}

func TestError(t *testing.T) {
	raw := Error("boom", ErrTypeAPI, "check the activity id")

	var envelope Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))
	assert.Nil(t, envelope.Data)
	assert.Nil(t, envelope.Analysis)

	meta := envelope.Metadata.(map[string]any)
	desc := meta["error"].(map[string]any)
	assert.Equal(t, "boom", desc["message"])
	assert.Equal(t, ErrTypeAPI, desc["type"])
	assert.NotEmpty(t, desc["timestamp"])
	assert.Equal(t, []any{"check the activity id"}, desc["suggestions"])
}

func TestFromError(t *testing.T) {
	errType := func(raw string) string {
		var envelope Envelope
		require.NoError(t, json.Unmarshal([]byte(raw), &envelope))
		meta := envelope.Metadata.(map[string]any)
		return meta["error"].(map[string]any)["type"].(string)
	}

	t.Run("api error", func(t *testing.T) {
		apiErr := &intervals.APIError{StatusCode: 404, Message: "Activity not found"}
		raw := FromError(apiErr)
		assert.Equal(t, ErrTypeAPI, errType(raw))
		assert.Contains(t, raw, "Activity not found")
	})

	t.Run("wrapped api error", func(t *testing.T) {
		err := fmt.Errorf("get activity: %w", &intervals.APIError{StatusCode: 429, Message: "too many requests"})
		assert.Equal(t, ErrTypeAPI, errType(FromError(err)))
	})

	t.Run("network error", func(t *testing.T) {
		err := fmt.Errorf("%w: connection refused", intervals.ErrRequestFailed)
		assert.Equal(t, ErrTypeNetwork, errType(FromError(err)))
	})

	t.Run("validation error", func(t *testing.T) {
		assert.Equal(t, ErrTypeValidation, errType(FromError(Validationf("bad date %q", "x"))))
	})

	t.Run("missing credentials", func(t *testing.T) {
		assert.Equal(t, ErrTypeConfiguration, errType(FromError(ErrMissingCredentials)))
	})

	t.Run("anything else is internal", func(t *testing.T) {
		assert.Equal(t, ErrTypeInternal, errType(FromError(errors.New("kaboom"))))
	})
}

func TestMissingCredentials_Suggestions(t *testing.T) {
	raw := MissingCredentials(nil)
	assert.Contains(t, raw, "INTERVALS_ICU_API_KEY")
	assert.Contains(t, raw, "INTERVALS_ICU_ATHLETE_ID")

	var envelope Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))
	meta := envelope.Metadata.(map[string]any)
	assert.Equal(t, ErrTypeConfiguration, meta["error"].(map[string]any)["type"])
}
