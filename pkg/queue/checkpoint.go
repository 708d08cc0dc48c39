package queue

import (
	"encoding/json"
	"fmt"

	"github.com/qaforge/qaforge/pkg/models"
	"github.com/qaforge/qaforge/pkg/recon"
)

// checkpointVersion is bumped whenever the checkpoint payload shape
// changes incompatibly. A request checkpointed by an older binary fails
// with checkpoint_corrupt instead of resuming into garbage.
const checkpointVersion = 1

// checkpointState is the durable pipeline state written after every
// completed stage. It carries exactly what the remaining stages need.
type checkpointState struct {
	Completed []string `json:"completed_stages"`

	// Reconnaissance output (UI requests only)
	Page *recon.PageStructure `json:"page,omitempty"`

	// Generation output
	Tests []generatedTest `json:"tests,omitempty"`
	Model string          `json:"model,omitempty"`

	// Validation output, index-aligned with Tests
	Validation []validationOutcome `json:"validation,omitempty"`

	// Optimization output. Set once optimization completes so a request
	// that orphans between optimization and the terminal write still
	// reports its summary on resume.
	Summary *models.ResultSummary `json:"summary,omitempty"`
}

// generatedTest is one generated test as stored in the checkpoint.
type generatedTest struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Type string `json:"type,omitempty"`
}

// validationOutcome is the per-test validation verdict stored in the
// checkpoint.
type validationOutcome struct {
	Score   int  `json:"score"`
	Valid   bool `json:"valid"`
	Blocked bool `json:"blocked"`
}

// done reports whether a stage is recorded as completed.
func (s *checkpointState) done(stage models.Stage) bool {
	for _, name := range s.Completed {
		if name == string(stage) {
			return true
		}
	}
	return false
}

// markDone records a stage as completed (idempotent).
func (s *checkpointState) markDone(stage models.Stage) {
	if !s.done(stage) {
		s.Completed = append(s.Completed, string(stage))
	}
}

// encodeCheckpoint converts the state into the JSON payload persisted
// alongside the checkpoint version.
func encodeCheckpoint(state *checkpointState) (map[string]interface{}, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	return payload, nil
}

// decodeCheckpoint parses a stored payload back into state. Any shape
// or version mismatch is reported as checkpoint corruption.
func decodeCheckpoint(version int, payload map[string]interface{}) (*checkpointState, error) {
	if version != checkpointVersion {
		return nil, models.NewPermanent(models.CodeCheckpointCorrupt,
			fmt.Errorf("checkpoint version %d, want %d", version, checkpointVersion))
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, models.NewPermanent(models.CodeCheckpointCorrupt, err)
	}
	var state checkpointState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, models.NewPermanent(models.CodeCheckpointCorrupt, err)
	}

	// A checkpoint that claims completed stages but lacks their outputs
	// cannot be resumed.
	if state.done(models.StageGeneration) && len(state.Tests) == 0 {
		return nil, models.NewPermanent(models.CodeCheckpointCorrupt,
			fmt.Errorf("generation checkpointed without tests"))
	}
	if state.done(models.StageOptimization) && state.Summary == nil {
		return nil, models.NewPermanent(models.CodeCheckpointCorrupt,
			fmt.Errorf("optimization checkpointed without a summary"))
	}
	if state.done(models.StageValidation) && len(state.Validation) != len(state.Tests) {
		return nil, models.NewPermanent(models.CodeCheckpointCorrupt,
			fmt.Errorf("validation checkpointed for %d of %d tests",
				len(state.Validation), len(state.Tests)))
	}

	return &state, nil
}

// ValidateCheckpoint reports whether a stored checkpoint can be decoded and
// resumed from. The API uses it to reject resume attempts up front instead
// of re-queueing a request that would immediately fail.
func ValidateCheckpoint(version int, payload map[string]interface{}) error {
	_, err := decodeCheckpoint(version, payload)
	return err
}
