// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// CoverageAnalysis is the predicate function for coverageanalysis builders.
type CoverageAnalysis func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// GenerationMetric is the predicate function for generationmetric builders.
type GenerationMetric func(*sql.Selector)

// Request is the predicate function for request builders.
type Request func(*sql.Selector)

// SecurityAuditLog is the predicate function for securityauditlog builders.
type SecurityAuditLog func(*sql.Selector)

// TestCase is the predicate function for testcase builders.
type TestCase func(*sql.Selector)
