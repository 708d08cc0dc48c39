package models

import (
	"errors"
	"fmt"
)

// Pipeline error classes. Transient errors are retried within a stage's
// retry budget; permanent errors fail the request immediately.
var (
	ErrTransient         = errors.New("transient failure")
	ErrPermanent         = errors.New("permanent failure")
	ErrSafetyBlocked     = errors.New("blocked by safety guard")
	ErrCancelled         = errors.New("request cancelled")
	ErrCheckpointCorrupt = errors.New("checkpoint corrupt")
)

// Stable error codes persisted on failed requests and surfaced in the API.
const (
	CodeReconTimeout      = "recon_timeout"
	CodeLLMUnavailable    = "llm_unavailable"
	CodeEmptyOutput       = "empty_output"
	CodeNoTests           = "no_tests"
	CodeSafetyBlocked     = "safety_blocked"
	CodeCancelled         = "cancelled"
	CodeInternal          = "internal"
	CodeCheckpointCorrupt = "checkpoint_corrupt"
)

// PipelineError carries a stable code alongside the error class.
type PipelineError struct {
	Code  string
	Class error // one of the sentinels above
	Cause error
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Cause)
	}
	return e.Code
}

func (e *PipelineError) Unwrap() error { return e.Class }

// NewTransient wraps err as a retryable pipeline error.
func NewTransient(code string, err error) error {
	return &PipelineError{Code: code, Class: ErrTransient, Cause: err}
}

// NewPermanent wraps err as a non-retryable pipeline error.
func NewPermanent(code string, err error) error {
	return &PipelineError{Code: code, Class: ErrPermanent, Cause: err}
}

// ErrorCode extracts the stable code from err, defaulting to internal.
func ErrorCode(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code
	}
	switch {
	case errors.Is(err, ErrSafetyBlocked):
		return CodeSafetyBlocked
	case errors.Is(err, ErrCancelled):
		return CodeCancelled
	case errors.Is(err, ErrCheckpointCorrupt):
		return CodeCheckpointCorrupt
	}
	return CodeInternal
}

// IsTransient reports whether err should be retried.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
