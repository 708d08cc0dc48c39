package models

// Stage identifies a pipeline stage.
type Stage string

const (
	StageReconnaissance Stage = "reconnaissance"
	StageGeneration     Stage = "generation"
	StageValidation     Stage = "validation"
	StageOptimization   Stage = "optimization"
)

// Stages lists pipeline stages in execution order.
var Stages = []Stage{
	StageReconnaissance,
	StageGeneration,
	StageValidation,
	StageOptimization,
}

// Index returns the position of the stage in the pipeline, or -1.
func (s Stage) Index() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the stage after s, or "" when s is the last stage.
func (s Stage) Next() Stage {
	i := s.Index()
	if i < 0 || i+1 >= len(Stages) {
		return ""
	}
	return Stages[i+1]
}

// Request status values. Active statuses mirror the stage names so the
// status column doubles as "which stage is running".
const (
	StatusPending        = "pending"
	StatusReconnaissance = string(StageReconnaissance)
	StatusGeneration     = string(StageGeneration)
	StatusValidation     = string(StageValidation)
	StatusOptimization   = string(StageOptimization)
	StatusCompleted      = "completed"
	StatusFailed         = "failed"
	StatusCancelled      = "cancelled"
)

// IsTerminalStatus reports whether a request status is absorbing.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// ActiveStatuses lists statuses of requests currently held by a worker.
var ActiveStatuses = []string{
	StatusReconnaissance,
	StatusGeneration,
	StatusValidation,
	StatusOptimization,
}
