package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/recon"
)

func TestCheckpointStateStages(t *testing.T) {
	state := &checkpointState{}

	assert.False(t, state.done(models.StageReconnaissance))

	state.markDone(models.StageReconnaissance)
	assert.True(t, state.done(models.StageReconnaissance))
	assert.False(t, state.done(models.StageGeneration))

	// Marking twice must not duplicate the entry
	state.markDone(models.StageReconnaissance)
	assert.Len(t, state.Completed, 1)
}

func TestCheckpointRoundTrip(t *testing.T) {
	state := &checkpointState{
		Page: &recon.PageStructure{
			URL:   "https://shop.example.com/login",
			Title: "Login",
		},
		Tests: []generatedTest{
			{Name: "test_login_valid", Code: "def test_login_valid(): ...", Type: "positive"},
			{Name: "test_login_invalid", Code: "def test_login_invalid(): ...", Type: "negative"},
		},
		Model: "gpt-4o",
		Validation: []validationOutcome{
			{Score: 100, Valid: true},
			{Score: 70, Valid: true},
		},
	}
	state.markDone(models.StageReconnaissance)
	state.markDone(models.StageGeneration)
	state.markDone(models.StageValidation)

	payload, err := encodeCheckpoint(state)
	require.NoError(t, err)

	decoded, err := decodeCheckpoint(checkpointVersion, payload)
	require.NoError(t, err)

	assert.Equal(t, state.Completed, decoded.Completed)
	require.NotNil(t, decoded.Page)
	assert.Equal(t, "https://shop.example.com/login", decoded.Page.URL)
	require.Len(t, decoded.Tests, 2)
	assert.Equal(t, "test_login_valid", decoded.Tests[0].Name)
	assert.Equal(t, "gpt-4o", decoded.Model)
	require.Len(t, decoded.Validation, 2)
	assert.True(t, decoded.Validation[0].Valid)
	assert.Equal(t, 70, decoded.Validation[1].Score)
}

func TestDecodeCheckpointVersionMismatch(t *testing.T) {
	payload, err := encodeCheckpoint(&checkpointState{})
	require.NoError(t, err)

	_, err = decodeCheckpoint(checkpointVersion+1, payload)
	require.Error(t, err)
	assert.Equal(t, models.CodeCheckpointCorrupt, models.ErrorCode(err))
	assert.False(t, models.IsTransient(err))
}

func TestDecodeCheckpointInconsistent(t *testing.T) {
	t.Run("generation without tests", func(t *testing.T) {
		state := &checkpointState{}
		state.markDone(models.StageReconnaissance)
		state.markDone(models.StageGeneration)

		payload, err := encodeCheckpoint(state)
		require.NoError(t, err)

		_, err = decodeCheckpoint(checkpointVersion, payload)
		require.Error(t, err)
		assert.Equal(t, models.CodeCheckpointCorrupt, models.ErrorCode(err))
	})

	t.Run("validation length mismatch", func(t *testing.T) {
		state := &checkpointState{
			Tests: []generatedTest{
				{Name: "test_a", Code: "def test_a(): ..."},
				{Name: "test_b", Code: "def test_b(): ..."},
			},
			Validation: []validationOutcome{{Score: 100, Valid: true}},
		}
		state.markDone(models.StageReconnaissance)
		state.markDone(models.StageGeneration)
		state.markDone(models.StageValidation)

		payload, err := encodeCheckpoint(state)
		require.NoError(t, err)

		_, err = decodeCheckpoint(checkpointVersion, payload)
		require.Error(t, err)
		assert.Equal(t, models.CodeCheckpointCorrupt, models.ErrorCode(err))
	})

	t.Run("optimization without summary", func(t *testing.T) {
		state := &checkpointState{
			Tests:      []generatedTest{{Name: "test_a", Code: "def test_a(): ..."}},
			Validation: []validationOutcome{{Score: 100, Valid: true}},
		}
		for _, stage := range models.Stages {
			state.markDone(stage)
		}

		payload, err := encodeCheckpoint(state)
		require.NoError(t, err)

		_, err = decodeCheckpoint(checkpointVersion, payload)
		require.Error(t, err)
		assert.Equal(t, models.CodeCheckpointCorrupt, models.ErrorCode(err))
	})
}

func TestDecodeCheckpointUnknownFieldsTolerated(t *testing.T) {
	// Older payloads within the same version may carry fields this
	// binary does not know about; they must not break decoding.
	payload := map[string]interface{}{
		"completed_stages": []interface{}{"reconnaissance"},
		"future_field":     "ignored",
	}

	state, err := decodeCheckpoint(checkpointVersion, payload)
	require.NoError(t, err)
	assert.True(t, state.done(models.StageReconnaissance))
}
