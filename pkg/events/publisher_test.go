package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(RequestStatusPayload{
			Type:      EventTypeRequestStatus,
			RequestID: "abc-123",
			Status:    "generation",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeRequestStatus)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(RequestErrorPayload{
			Type:         EventTypeRequestError,
			RequestID:    "abc-123",
			Status:       "failed",
			ErrorCode:    "internal",
			ErrorMessage: strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(RequestErrorPayload{
			Type:         EventTypeRequestError,
			RequestID:    "req-789",
			Status:       "failed",
			ErrorCode:    "internal",
			ErrorMessage: strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeRequestError)
		assert.Contains(t, result, "req-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Measure the fixed-field overhead first; the 20-byte margin keeps
		// the test stable if new non-zero defaults are added to the struct.
		base, _ := json.Marshal(RequestErrorPayload{Type: "t"})
		padding := 7900 - len(base) - 20
		payload, _ := json.Marshal(RequestErrorPayload{
			Type:         "t",
			ErrorMessage: strings.Repeat("b", padding),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(RequestStatusPayload{
			Type:      EventTypeRequestStatus,
			RequestID: "req-1",
			Status:    "validation",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "req-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(RequestErrorPayload{
			Type:         EventTypeRequestError,
			RequestID:    "req-789",
			Status:       "failed",
			ErrorCode:    "internal",
			ErrorMessage: strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "req-789")
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestStageStatusPayload_JSON(t *testing.T) {
	payload := StageStatusPayload{
		Type:       EventTypeStageStatus,
		RequestID:  "req-123",
		Stage:      "generation",
		StageIndex: 2,
		Status:     StageStatusStarted,
		Attempt:    1,
		Timestamp:  "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded StageStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeStageStatus, decoded.Type)
	assert.Equal(t, "req-123", decoded.RequestID)
	assert.Equal(t, "generation", decoded.Stage)
	assert.Equal(t, 2, decoded.StageIndex)
	assert.Equal(t, StageStatusStarted, decoded.Status)
	assert.Equal(t, 1, decoded.Attempt)
	assert.Equal(t, "2026-02-10T12:00:00Z", decoded.Timestamp)
}

func TestStageStatusPayload_OmitsEmptyErrorCode(t *testing.T) {
	payload := StageStatusPayload{
		Type:      EventTypeStageStatus,
		RequestID: "req-123",
		Stage:     "reconnaissance",
		Status:    StageStatusCompleted,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "error_code")
}

func TestGenerationProgressPayload_JSON(t *testing.T) {
	payload := GenerationProgressPayload{
		Type:           EventTypeGenerationProgress,
		RequestID:      "req-100",
		Stage:          "validation",
		TestsGenerated: 12,
		TestsValidated: 7,
		Message:        "validating 7/12",
		Timestamp:      "2026-02-13T10:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded GenerationProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeGenerationProgress, decoded.Type)
	assert.Equal(t, "req-100", decoded.RequestID)
	assert.Equal(t, 12, decoded.TestsGenerated)
	assert.Equal(t, 7, decoded.TestsValidated)
	assert.Equal(t, "validating 7/12", decoded.Message)
}

func TestRequestChannel(t *testing.T) {
	assert.Equal(t, "request:abc-123", RequestChannel("abc-123"))
	assert.Equal(t, "requests", GlobalRequestsChannel)
}
