// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/qaforge/qaforge/ent/checkpoint"
	"github.com/qaforge/qaforge/ent/coverageanalysis"
	"github.com/qaforge/qaforge/ent/event"
	"github.com/qaforge/qaforge/ent/generationmetric"
	"github.com/qaforge/qaforge/ent/predicate"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/ent/securityauditlog"
	"github.com/qaforge/qaforge/ent/testcase"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCheckpoint       = "Checkpoint"
	TypeCoverageAnalysis = "CoverageAnalysis"
	TypeEvent            = "Event"
	TypeGenerationMetric = "GenerationMetric"
	TypeRequest          = "Request"
	TypeSecurityAuditLog = "SecurityAuditLog"
	TypeTestCase         = "TestCase"
)

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op             Op
	typ            string
	id             *string
	version        *int
	addversion     *int
	payload        *map[string]interface{}
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	request        *string
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*Checkpoint, error)
	predicates     []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *CheckpointMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *CheckpointMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *CheckpointMutation) ResetRequestID() {
	m.request = nil
}

// SetVersion sets the "version" field.
func (m *CheckpointMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CheckpointMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CheckpointMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CheckpointMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CheckpointMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetPayload sets the "payload" field.
func (m *CheckpointMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *CheckpointMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *CheckpointMutation) ResetPayload() {
	m.payload = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CheckpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CheckpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CheckpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *CheckpointMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[checkpoint.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *CheckpointMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *CheckpointMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.request != nil {
		fields = append(fields, checkpoint.FieldRequestID)
	}
	if m.version != nil {
		fields = append(fields, checkpoint.FieldVersion)
	}
	if m.payload != nil {
		fields = append(fields, checkpoint.FieldPayload)
	}
	if m.updated_at != nil {
		fields = append(fields, checkpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldRequestID:
		return m.RequestID()
	case checkpoint.FieldVersion:
		return m.Version()
	case checkpoint.FieldPayload:
		return m.Payload()
	case checkpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldRequestID:
		return m.OldRequestID(ctx)
	case checkpoint.FieldVersion:
		return m.OldVersion(ctx)
	case checkpoint.FieldPayload:
		return m.OldPayload(ctx)
	case checkpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case checkpoint.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case checkpoint.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case checkpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, checkpoint.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldRequestID:
		m.ResetRequestID()
		return nil
	case checkpoint.FieldVersion:
		m.ResetVersion()
		return nil
	case checkpoint.FieldPayload:
		m.ResetPayload()
		return nil
	case checkpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, checkpoint.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, checkpoint.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// CoverageAnalysisMutation represents an operation that mutates the CoverageAnalysis nodes in the graph.
type CoverageAnalysisMutation struct {
	config
	op               Op
	typ              string
	id               *string
	requirement      *string
	covered          *bool
	covered_by       *[]string
	appendcovered_by []string
	quality          *coverageanalysis.Quality
	created_at       *time.Time
	clearedFields    map[string]struct{}
	request          *string
	clearedrequest   bool
	done             bool
	oldValue         func(context.Context) (*CoverageAnalysis, error)
	predicates       []predicate.CoverageAnalysis
}

var _ ent.Mutation = (*CoverageAnalysisMutation)(nil)

// coverageanalysisOption allows management of the mutation configuration using functional options.
type coverageanalysisOption func(*CoverageAnalysisMutation)

// newCoverageAnalysisMutation creates new mutation for the CoverageAnalysis entity.
func newCoverageAnalysisMutation(c config, op Op, opts ...coverageanalysisOption) *CoverageAnalysisMutation {
	m := &CoverageAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeCoverageAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCoverageAnalysisID sets the ID field of the mutation.
func withCoverageAnalysisID(id string) coverageanalysisOption {
	return func(m *CoverageAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *CoverageAnalysis
		)
		m.oldValue = func(ctx context.Context) (*CoverageAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CoverageAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCoverageAnalysis sets the old CoverageAnalysis of the mutation.
func withCoverageAnalysis(node *CoverageAnalysis) coverageanalysisOption {
	return func(m *CoverageAnalysisMutation) {
		m.oldValue = func(context.Context) (*CoverageAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CoverageAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CoverageAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CoverageAnalysis entities.
func (m *CoverageAnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CoverageAnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CoverageAnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CoverageAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *CoverageAnalysisMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *CoverageAnalysisMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *CoverageAnalysisMutation) ResetRequestID() {
	m.request = nil
}

// SetRequirement sets the "requirement" field.
func (m *CoverageAnalysisMutation) SetRequirement(s string) {
	m.requirement = &s
}

// Requirement returns the value of the "requirement" field in the mutation.
func (m *CoverageAnalysisMutation) Requirement() (r string, exists bool) {
	v := m.requirement
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirement returns the old "requirement" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldRequirement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirement: %w", err)
	}
	return oldValue.Requirement, nil
}

// ResetRequirement resets all changes to the "requirement" field.
func (m *CoverageAnalysisMutation) ResetRequirement() {
	m.requirement = nil
}

// SetCovered sets the "covered" field.
func (m *CoverageAnalysisMutation) SetCovered(b bool) {
	m.covered = &b
}

// Covered returns the value of the "covered" field in the mutation.
func (m *CoverageAnalysisMutation) Covered() (r bool, exists bool) {
	v := m.covered
	if v == nil {
		return
	}
	return *v, true
}

// OldCovered returns the old "covered" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldCovered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCovered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCovered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCovered: %w", err)
	}
	return oldValue.Covered, nil
}

// ResetCovered resets all changes to the "covered" field.
func (m *CoverageAnalysisMutation) ResetCovered() {
	m.covered = nil
}

// SetCoveredBy sets the "covered_by" field.
func (m *CoverageAnalysisMutation) SetCoveredBy(s []string) {
	m.covered_by = &s
	m.appendcovered_by = nil
}

// CoveredBy returns the value of the "covered_by" field in the mutation.
func (m *CoverageAnalysisMutation) CoveredBy() (r []string, exists bool) {
	v := m.covered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCoveredBy returns the old "covered_by" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldCoveredBy(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoveredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoveredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoveredBy: %w", err)
	}
	return oldValue.CoveredBy, nil
}

// AppendCoveredBy adds s to the "covered_by" field.
func (m *CoverageAnalysisMutation) AppendCoveredBy(s []string) {
	m.appendcovered_by = append(m.appendcovered_by, s...)
}

// AppendedCoveredBy returns the list of values that were appended to the "covered_by" field in this mutation.
func (m *CoverageAnalysisMutation) AppendedCoveredBy() ([]string, bool) {
	if len(m.appendcovered_by) == 0 {
		return nil, false
	}
	return m.appendcovered_by, true
}

// ClearCoveredBy clears the value of the "covered_by" field.
func (m *CoverageAnalysisMutation) ClearCoveredBy() {
	m.covered_by = nil
	m.appendcovered_by = nil
	m.clearedFields[coverageanalysis.FieldCoveredBy] = struct{}{}
}

// CoveredByCleared returns if the "covered_by" field was cleared in this mutation.
func (m *CoverageAnalysisMutation) CoveredByCleared() bool {
	_, ok := m.clearedFields[coverageanalysis.FieldCoveredBy]
	return ok
}

// ResetCoveredBy resets all changes to the "covered_by" field.
func (m *CoverageAnalysisMutation) ResetCoveredBy() {
	m.covered_by = nil
	m.appendcovered_by = nil
	delete(m.clearedFields, coverageanalysis.FieldCoveredBy)
}

// SetQuality sets the "quality" field.
func (m *CoverageAnalysisMutation) SetQuality(c coverageanalysis.Quality) {
	m.quality = &c
}

// Quality returns the value of the "quality" field in the mutation.
func (m *CoverageAnalysisMutation) Quality() (r coverageanalysis.Quality, exists bool) {
	v := m.quality
	if v == nil {
		return
	}
	return *v, true
}

// OldQuality returns the old "quality" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldQuality(ctx context.Context) (v coverageanalysis.Quality, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuality: %w", err)
	}
	return oldValue.Quality, nil
}

// ResetQuality resets all changes to the "quality" field.
func (m *CoverageAnalysisMutation) ResetQuality() {
	m.quality = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CoverageAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CoverageAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CoverageAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *CoverageAnalysisMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[coverageanalysis.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *CoverageAnalysisMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *CoverageAnalysisMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *CoverageAnalysisMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the CoverageAnalysisMutation builder.
func (m *CoverageAnalysisMutation) Where(ps ...predicate.CoverageAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CoverageAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CoverageAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CoverageAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CoverageAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CoverageAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CoverageAnalysis).
func (m *CoverageAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CoverageAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.request != nil {
		fields = append(fields, coverageanalysis.FieldRequestID)
	}
	if m.requirement != nil {
		fields = append(fields, coverageanalysis.FieldRequirement)
	}
	if m.covered != nil {
		fields = append(fields, coverageanalysis.FieldCovered)
	}
	if m.covered_by != nil {
		fields = append(fields, coverageanalysis.FieldCoveredBy)
	}
	if m.quality != nil {
		fields = append(fields, coverageanalysis.FieldQuality)
	}
	if m.created_at != nil {
		fields = append(fields, coverageanalysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CoverageAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case coverageanalysis.FieldRequestID:
		return m.RequestID()
	case coverageanalysis.FieldRequirement:
		return m.Requirement()
	case coverageanalysis.FieldCovered:
		return m.Covered()
	case coverageanalysis.FieldCoveredBy:
		return m.CoveredBy()
	case coverageanalysis.FieldQuality:
		return m.Quality()
	case coverageanalysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CoverageAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case coverageanalysis.FieldRequestID:
		return m.OldRequestID(ctx)
	case coverageanalysis.FieldRequirement:
		return m.OldRequirement(ctx)
	case coverageanalysis.FieldCovered:
		return m.OldCovered(ctx)
	case coverageanalysis.FieldCoveredBy:
		return m.OldCoveredBy(ctx)
	case coverageanalysis.FieldQuality:
		return m.OldQuality(ctx)
	case coverageanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CoverageAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoverageAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case coverageanalysis.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case coverageanalysis.FieldRequirement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirement(v)
		return nil
	case coverageanalysis.FieldCovered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCovered(v)
		return nil
	case coverageanalysis.FieldCoveredBy:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoveredBy(v)
		return nil
	case coverageanalysis.FieldQuality:
		v, ok := value.(coverageanalysis.Quality)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuality(v)
		return nil
	case coverageanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CoverageAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CoverageAnalysisMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CoverageAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoverageAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CoverageAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CoverageAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(coverageanalysis.FieldCoveredBy) {
		fields = append(fields, coverageanalysis.FieldCoveredBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CoverageAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CoverageAnalysisMutation) ClearField(name string) error {
	switch name {
	case coverageanalysis.FieldCoveredBy:
		m.ClearCoveredBy()
		return nil
	}
	return fmt.Errorf("unknown CoverageAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CoverageAnalysisMutation) ResetField(name string) error {
	switch name {
	case coverageanalysis.FieldRequestID:
		m.ResetRequestID()
		return nil
	case coverageanalysis.FieldRequirement:
		m.ResetRequirement()
		return nil
	case coverageanalysis.FieldCovered:
		m.ResetCovered()
		return nil
	case coverageanalysis.FieldCoveredBy:
		m.ResetCoveredBy()
		return nil
	case coverageanalysis.FieldQuality:
		m.ResetQuality()
		return nil
	case coverageanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CoverageAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CoverageAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, coverageanalysis.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CoverageAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case coverageanalysis.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CoverageAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CoverageAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CoverageAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, coverageanalysis.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CoverageAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case coverageanalysis.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CoverageAnalysisMutation) ClearEdge(name string) error {
	switch name {
	case coverageanalysis.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown CoverageAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CoverageAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case coverageanalysis.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown CoverageAnalysis edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int64
	channel        *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *string
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *EventMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *EventMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRequestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *EventMutation) ClearRequestID() {
	m.request = nil
	m.clearedFields[event.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *EventMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[event.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *EventMutation) ResetRequestID() {
	m.request = nil
	delete(m.clearedFields, event.FieldRequestID)
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *EventMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[event.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *EventMutation) RequestCleared() bool {
	return m.RequestIDCleared() || m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *EventMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *EventMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.request != nil {
		fields = append(fields, event.FieldRequestID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldRequestID:
		return m.RequestID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldRequestID:
		return m.OldRequestID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldRequestID) {
		fields = append(fields, event.FieldRequestID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldRequestID:
		m.ClearRequestID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldRequestID:
		m.ResetRequestID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, event.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, event.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// GenerationMetricMutation represents an operation that mutates the GenerationMetric nodes in the graph.
type GenerationMetricMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	stage                *generationmetric.Stage
	attempt              *int
	addattempt           *int
	status               *generationmetric.Status
	duration_ms          *int
	addduration_ms       *int
	tokens_prompt        *int
	addtokens_prompt     *int
	tokens_completion    *int
	addtokens_completion *int
	tokens_total         *int
	addtokens_total      *int
	model                *string
	error_code           *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	request              *string
	clearedrequest       bool
	done                 bool
	oldValue             func(context.Context) (*GenerationMetric, error)
	predicates           []predicate.GenerationMetric
}

var _ ent.Mutation = (*GenerationMetricMutation)(nil)

// generationmetricOption allows management of the mutation configuration using functional options.
type generationmetricOption func(*GenerationMetricMutation)

// newGenerationMetricMutation creates new mutation for the GenerationMetric entity.
func newGenerationMetricMutation(c config, op Op, opts ...generationmetricOption) *GenerationMetricMutation {
	m := &GenerationMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationMetricID sets the ID field of the mutation.
func withGenerationMetricID(id string) generationmetricOption {
	return func(m *GenerationMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationMetric
		)
		m.oldValue = func(ctx context.Context) (*GenerationMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationMetric sets the old GenerationMetric of the mutation.
func withGenerationMetric(node *GenerationMetric) generationmetricOption {
	return func(m *GenerationMetricMutation) {
		m.oldValue = func(context.Context) (*GenerationMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GenerationMetric entities.
func (m *GenerationMetricMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationMetricMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationMetricMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *GenerationMetricMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *GenerationMetricMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the GenerationMetric entity.
// If the GenerationMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetricMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *GenerationMetricMutation) ResetRequestID() {
	m.request = nil
}

// SetStage sets the "stage" field.
func (m *GenerationMetricMutation) SetStage(ge generationmetric.Stage) {
	m.stage = &ge
}

// Stage returns the value of the "stage" field in the mutation.
func (m *GenerationMetricMutation) Stage() (r generationmetric.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the GenerationMetric entity.
// If the GenerationMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetricMutation) OldStage(ctx context.Context) (v generationmetric.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *GenerationMetricMutation) ResetStage() {
	m.stage = nil
}

// SetAttempt sets the "attempt" field.
func (m *GenerationMetricMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *GenerationMetricMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the GenerationMetric entity.
// If the GenerationMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetricMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *GenerationMetricMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *GenerationMetricMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *GenerationMetricMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetStatus sets the "status" field.
func (m *GenerationMetricMutation) SetStatus(ge generationmetric.Status) {
	m.status = &ge
}

// Status returns the value of the "status" field in the mutation.
func (m *GenerationMetricMutation) Status() (r generationmetric.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GenerationMetric entity.
// If the GenerationMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetricMutation) OldStatus(ctx context.Context) (v generationmetric.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GenerationMetricMutation) ResetStatus() {
	m.status = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *GenerationMetricMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *GenerationMetricMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the GenerationMetric entity.
// If the GenerationMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetricMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *GenerationMetricMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *GenerationMetricMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *GenerationMetricMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetTokensPrompt sets the "tokens_prompt" field.
func (m *GenerationMetricMutation) SetTokensPrompt(i int) {
	m.tokens_prompt = &i
	m.addtokens_prompt = nil
}

// TokensPrompt returns the value of the "tokens_prompt" field in the mutation.
func (m *GenerationMetricMutation) TokensPrompt() (r int, exists bool) {
	v := m.tokens_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensPrompt returns the old "tokens_prompt" field's value of the GenerationMetric entity.
// If the GenerationMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetricMutation) OldTokensPrompt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensPrompt: %w", err)
	}
	return oldValue.TokensPrompt, nil
}

// AddTokensPrompt adds i to the "tokens_prompt" field.
func (m *GenerationMetricMutation) AddTokensPrompt(i int) {
	if m.addtokens_prompt != nil {
		*m.addtokens_prompt += i
	} else {
		m.addtokens_prompt = &i
	}
}

// AddedTokensPrompt returns the value that was added to the "tokens_prompt" field in this mutation.
func (m *GenerationMetricMutation) AddedTokensPrompt() (r int, exists bool) {
	v := m.addtokens_prompt
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensPrompt resets all changes to the "tokens_prompt" field.
func (m *GenerationMetricMutation) ResetTokensPrompt() {
	m.tokens_prompt = nil
	m.addtokens_prompt = nil
}

// SetTokensCompletion sets the "tokens_completion" field.
func (m *GenerationMetricMutation) SetTokensCompletion(i int) {
	m.tokens_completion = &i
	m.addtokens_completion = nil
}

// TokensCompletion returns the value of the "tokens_completion" field in the mutation.
func (m *GenerationMetricMutation) TokensCompletion() (r int, exists bool) {
	v := m.tokens_completion
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensCompletion returns the old "tokens_completion" field's value of the GenerationMetric entity.
// If the GenerationMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetricMutation) OldTokensCompletion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensCompletion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensCompletion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensCompletion: %w", err)
	}
	return oldValue.TokensCompletion, nil
}

// AddTokensCompletion adds i to the "tokens_completion" field.
func (m *GenerationMetricMutation) AddTokensCompletion(i int) {
	if m.addtokens_completion != nil {
		*m.addtokens_completion += i
	} else {
		m.addtokens_completion = &i
	}
}

// AddedTokensCompletion returns the value that was added to the "tokens_completion" field in this mutation.
func (m *GenerationMetricMutation) AddedTokensCompletion() (r int, exists bool) {
	v := m.addtokens_completion
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensCompletion resets all changes to the "tokens_completion" field.
func (m *GenerationMetricMutation) ResetTokensCompletion() {
	m.tokens_completion = nil
	m.addtokens_completion = nil
}

// SetTokensTotal sets the "tokens_total" field.
func (m *GenerationMetricMutation) SetTokensTotal(i int) {
	m.tokens_total = &i
	m.addtokens_total = nil
}

// TokensTotal returns the value of the "tokens_total" field in the mutation.
func (m *GenerationMetricMutation) TokensTotal() (r int, exists bool) {
	v := m.tokens_total
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensTotal returns the old "tokens_total" field's value of the GenerationMetric entity.
// If the GenerationMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetricMutation) OldTokensTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensTotal: %w", err)
	}
	return oldValue.TokensTotal, nil
}

// AddTokensTotal adds i to the "tokens_total" field.
func (m *GenerationMetricMutation) AddTokensTotal(i int) {
	if m.addtokens_total != nil {
		*m.addtokens_total += i
	} else {
		m.addtokens_total = &i
	}
}

// AddedTokensTotal returns the value that was added to the "tokens_total" field in this mutation.
func (m *GenerationMetricMutation) AddedTokensTotal() (r int, exists bool) {
	v := m.addtokens_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensTotal resets all changes to the "tokens_total" field.
func (m *GenerationMetricMutation) ResetTokensTotal() {
	m.tokens_total = nil
	m.addtokens_total = nil
}

// SetModel sets the "model" field.
func (m *GenerationMetricMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *GenerationMetricMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the GenerationMetric entity.
// If the GenerationMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetricMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *GenerationMetricMutation) ClearModel() {
	m.model = nil
	m.clearedFields[generationmetric.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *GenerationMetricMutation) ModelCleared() bool {
	_, ok := m.clearedFields[generationmetric.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *GenerationMetricMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, generationmetric.FieldModel)
}

// SetErrorCode sets the "error_code" field.
func (m *GenerationMetricMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *GenerationMetricMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the GenerationMetric entity.
// If the GenerationMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetricMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *GenerationMetricMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[generationmetric.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *GenerationMetricMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[generationmetric.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *GenerationMetricMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, generationmetric.FieldErrorCode)
}

// SetCreatedAt sets the "created_at" field.
func (m *GenerationMetricMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GenerationMetricMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GenerationMetric entity.
// If the GenerationMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationMetricMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GenerationMetricMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *GenerationMetricMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[generationmetric.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *GenerationMetricMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *GenerationMetricMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *GenerationMetricMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the GenerationMetricMutation builder.
func (m *GenerationMetricMutation) Where(ps ...predicate.GenerationMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationMetric).
func (m *GenerationMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationMetricMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.request != nil {
		fields = append(fields, generationmetric.FieldRequestID)
	}
	if m.stage != nil {
		fields = append(fields, generationmetric.FieldStage)
	}
	if m.attempt != nil {
		fields = append(fields, generationmetric.FieldAttempt)
	}
	if m.status != nil {
		fields = append(fields, generationmetric.FieldStatus)
	}
	if m.duration_ms != nil {
		fields = append(fields, generationmetric.FieldDurationMs)
	}
	if m.tokens_prompt != nil {
		fields = append(fields, generationmetric.FieldTokensPrompt)
	}
	if m.tokens_completion != nil {
		fields = append(fields, generationmetric.FieldTokensCompletion)
	}
	if m.tokens_total != nil {
		fields = append(fields, generationmetric.FieldTokensTotal)
	}
	if m.model != nil {
		fields = append(fields, generationmetric.FieldModel)
	}
	if m.error_code != nil {
		fields = append(fields, generationmetric.FieldErrorCode)
	}
	if m.created_at != nil {
		fields = append(fields, generationmetric.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationmetric.FieldRequestID:
		return m.RequestID()
	case generationmetric.FieldStage:
		return m.Stage()
	case generationmetric.FieldAttempt:
		return m.Attempt()
	case generationmetric.FieldStatus:
		return m.Status()
	case generationmetric.FieldDurationMs:
		return m.DurationMs()
	case generationmetric.FieldTokensPrompt:
		return m.TokensPrompt()
	case generationmetric.FieldTokensCompletion:
		return m.TokensCompletion()
	case generationmetric.FieldTokensTotal:
		return m.TokensTotal()
	case generationmetric.FieldModel:
		return m.Model()
	case generationmetric.FieldErrorCode:
		return m.ErrorCode()
	case generationmetric.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationmetric.FieldRequestID:
		return m.OldRequestID(ctx)
	case generationmetric.FieldStage:
		return m.OldStage(ctx)
	case generationmetric.FieldAttempt:
		return m.OldAttempt(ctx)
	case generationmetric.FieldStatus:
		return m.OldStatus(ctx)
	case generationmetric.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case generationmetric.FieldTokensPrompt:
		return m.OldTokensPrompt(ctx)
	case generationmetric.FieldTokensCompletion:
		return m.OldTokensCompletion(ctx)
	case generationmetric.FieldTokensTotal:
		return m.OldTokensTotal(ctx)
	case generationmetric.FieldModel:
		return m.OldModel(ctx)
	case generationmetric.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case generationmetric.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationmetric.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case generationmetric.FieldStage:
		v, ok := value.(generationmetric.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case generationmetric.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case generationmetric.FieldStatus:
		v, ok := value.(generationmetric.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case generationmetric.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case generationmetric.FieldTokensPrompt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensPrompt(v)
		return nil
	case generationmetric.FieldTokensCompletion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensCompletion(v)
		return nil
	case generationmetric.FieldTokensTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensTotal(v)
		return nil
	case generationmetric.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case generationmetric.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case generationmetric.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationMetricMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, generationmetric.FieldAttempt)
	}
	if m.addduration_ms != nil {
		fields = append(fields, generationmetric.FieldDurationMs)
	}
	if m.addtokens_prompt != nil {
		fields = append(fields, generationmetric.FieldTokensPrompt)
	}
	if m.addtokens_completion != nil {
		fields = append(fields, generationmetric.FieldTokensCompletion)
	}
	if m.addtokens_total != nil {
		fields = append(fields, generationmetric.FieldTokensTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationmetric.FieldAttempt:
		return m.AddedAttempt()
	case generationmetric.FieldDurationMs:
		return m.AddedDurationMs()
	case generationmetric.FieldTokensPrompt:
		return m.AddedTokensPrompt()
	case generationmetric.FieldTokensCompletion:
		return m.AddedTokensCompletion()
	case generationmetric.FieldTokensTotal:
		return m.AddedTokensTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationmetric.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case generationmetric.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case generationmetric.FieldTokensPrompt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensPrompt(v)
		return nil
	case generationmetric.FieldTokensCompletion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensCompletion(v)
		return nil
	case generationmetric.FieldTokensTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensTotal(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationMetricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generationmetric.FieldModel) {
		fields = append(fields, generationmetric.FieldModel)
	}
	if m.FieldCleared(generationmetric.FieldErrorCode) {
		fields = append(fields, generationmetric.FieldErrorCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationMetricMutation) ClearField(name string) error {
	switch name {
	case generationmetric.FieldModel:
		m.ClearModel()
		return nil
	case generationmetric.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	}
	return fmt.Errorf("unknown GenerationMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationMetricMutation) ResetField(name string) error {
	switch name {
	case generationmetric.FieldRequestID:
		m.ResetRequestID()
		return nil
	case generationmetric.FieldStage:
		m.ResetStage()
		return nil
	case generationmetric.FieldAttempt:
		m.ResetAttempt()
		return nil
	case generationmetric.FieldStatus:
		m.ResetStatus()
		return nil
	case generationmetric.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case generationmetric.FieldTokensPrompt:
		m.ResetTokensPrompt()
		return nil
	case generationmetric.FieldTokensCompletion:
		m.ResetTokensCompletion()
		return nil
	case generationmetric.FieldTokensTotal:
		m.ResetTokensTotal()
		return nil
	case generationmetric.FieldModel:
		m.ResetModel()
		return nil
	case generationmetric.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case generationmetric.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GenerationMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, generationmetric.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationMetricMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case generationmetric.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, generationmetric.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationMetricMutation) EdgeCleared(name string) bool {
	switch name {
	case generationmetric.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationMetricMutation) ClearEdge(name string) error {
	switch name {
	case generationmetric.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown GenerationMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationMetricMutation) ResetEdge(name string) error {
	switch name {
	case generationmetric.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown GenerationMetric edge %s", name)
}

// RequestMutation represents an operation that mutates the Request nodes in the graph.
type RequestMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	request_type       *request.RequestType
	url                *string
	requirements       *[]string
	appendrequirements []string
	test_types         *[]string
	appendtest_types   []string
	openapi_url        *string
	openapi_content    *string
	options            *map[string]interface{}
	status             *request.Status
	error_code         *string
	error_message      *string
	result_summary     *map[string]interface{}
	pod_id             *string
	last_heartbeat_at  *time.Time
	requeue_count      *int
	addrequeue_count   *int
	created_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	test_cases         map[string]struct{}
	removedtest_cases  map[string]struct{}
	clearedtest_cases  bool
	metrics            map[string]struct{}
	removedmetrics     map[string]struct{}
	clearedmetrics     bool
	coverage           map[string]struct{}
	removedcoverage    map[string]struct{}
	clearedcoverage    bool
	audit_logs         map[string]struct{}
	removedaudit_logs  map[string]struct{}
	clearedaudit_logs  bool
	checkpoint         *string
	clearedcheckpoint  bool
	events             map[int64]struct{}
	removedevents      map[int64]struct{}
	clearedevents      bool
	done               bool
	oldValue           func(context.Context) (*Request, error)
	predicates         []predicate.Request
}

var _ ent.Mutation = (*RequestMutation)(nil)

// requestOption allows management of the mutation configuration using functional options.
type requestOption func(*RequestMutation)

// newRequestMutation creates new mutation for the Request entity.
func newRequestMutation(c config, op Op, opts ...requestOption) *RequestMutation {
	m := &RequestMutation{
		config:        c,
		op:            op,
		typ:           TypeRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestID sets the ID field of the mutation.
func withRequestID(id string) requestOption {
	return func(m *RequestMutation) {
		var (
			err   error
			once  sync.Once
			value *Request
		)
		m.oldValue = func(ctx context.Context) (*Request, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Request.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequest sets the old Request of the mutation.
func withRequest(node *Request) requestOption {
	return func(m *RequestMutation) {
		m.oldValue = func(context.Context) (*Request, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Request entities.
func (m *RequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Request.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestType sets the "request_type" field.
func (m *RequestMutation) SetRequestType(rt request.RequestType) {
	m.request_type = &rt
}

// RequestType returns the value of the "request_type" field in the mutation.
func (m *RequestMutation) RequestType() (r request.RequestType, exists bool) {
	v := m.request_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestType returns the old "request_type" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRequestType(ctx context.Context) (v request.RequestType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestType: %w", err)
	}
	return oldValue.RequestType, nil
}

// ResetRequestType resets all changes to the "request_type" field.
func (m *RequestMutation) ResetRequestType() {
	m.request_type = nil
}

// SetURL sets the "url" field.
func (m *RequestMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *RequestMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *RequestMutation) ClearURL() {
	m.url = nil
	m.clearedFields[request.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *RequestMutation) URLCleared() bool {
	_, ok := m.clearedFields[request.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *RequestMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, request.FieldURL)
}

// SetRequirements sets the "requirements" field.
func (m *RequestMutation) SetRequirements(s []string) {
	m.requirements = &s
	m.appendrequirements = nil
}

// Requirements returns the value of the "requirements" field in the mutation.
func (m *RequestMutation) Requirements() (r []string, exists bool) {
	v := m.requirements
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirements returns the old "requirements" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRequirements(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirements: %w", err)
	}
	return oldValue.Requirements, nil
}

// AppendRequirements adds s to the "requirements" field.
func (m *RequestMutation) AppendRequirements(s []string) {
	m.appendrequirements = append(m.appendrequirements, s...)
}

// AppendedRequirements returns the list of values that were appended to the "requirements" field in this mutation.
func (m *RequestMutation) AppendedRequirements() ([]string, bool) {
	if len(m.appendrequirements) == 0 {
		return nil, false
	}
	return m.appendrequirements, true
}

// ResetRequirements resets all changes to the "requirements" field.
func (m *RequestMutation) ResetRequirements() {
	m.requirements = nil
	m.appendrequirements = nil
}

// SetTestTypes sets the "test_types" field.
func (m *RequestMutation) SetTestTypes(s []string) {
	m.test_types = &s
	m.appendtest_types = nil
}

// TestTypes returns the value of the "test_types" field in the mutation.
func (m *RequestMutation) TestTypes() (r []string, exists bool) {
	v := m.test_types
	if v == nil {
		return
	}
	return *v, true
}

// OldTestTypes returns the old "test_types" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldTestTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestTypes: %w", err)
	}
	return oldValue.TestTypes, nil
}

// AppendTestTypes adds s to the "test_types" field.
func (m *RequestMutation) AppendTestTypes(s []string) {
	m.appendtest_types = append(m.appendtest_types, s...)
}

// AppendedTestTypes returns the list of values that were appended to the "test_types" field in this mutation.
func (m *RequestMutation) AppendedTestTypes() ([]string, bool) {
	if len(m.appendtest_types) == 0 {
		return nil, false
	}
	return m.appendtest_types, true
}

// ClearTestTypes clears the value of the "test_types" field.
func (m *RequestMutation) ClearTestTypes() {
	m.test_types = nil
	m.appendtest_types = nil
	m.clearedFields[request.FieldTestTypes] = struct{}{}
}

// TestTypesCleared returns if the "test_types" field was cleared in this mutation.
func (m *RequestMutation) TestTypesCleared() bool {
	_, ok := m.clearedFields[request.FieldTestTypes]
	return ok
}

// ResetTestTypes resets all changes to the "test_types" field.
func (m *RequestMutation) ResetTestTypes() {
	m.test_types = nil
	m.appendtest_types = nil
	delete(m.clearedFields, request.FieldTestTypes)
}

// SetOpenapiURL sets the "openapi_url" field.
func (m *RequestMutation) SetOpenapiURL(s string) {
	m.openapi_url = &s
}

// OpenapiURL returns the value of the "openapi_url" field in the mutation.
func (m *RequestMutation) OpenapiURL() (r string, exists bool) {
	v := m.openapi_url
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenapiURL returns the old "openapi_url" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldOpenapiURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenapiURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenapiURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenapiURL: %w", err)
	}
	return oldValue.OpenapiURL, nil
}

// ClearOpenapiURL clears the value of the "openapi_url" field.
func (m *RequestMutation) ClearOpenapiURL() {
	m.openapi_url = nil
	m.clearedFields[request.FieldOpenapiURL] = struct{}{}
}

// OpenapiURLCleared returns if the "openapi_url" field was cleared in this mutation.
func (m *RequestMutation) OpenapiURLCleared() bool {
	_, ok := m.clearedFields[request.FieldOpenapiURL]
	return ok
}

// ResetOpenapiURL resets all changes to the "openapi_url" field.
func (m *RequestMutation) ResetOpenapiURL() {
	m.openapi_url = nil
	delete(m.clearedFields, request.FieldOpenapiURL)
}

// SetOpenapiContent sets the "openapi_content" field.
func (m *RequestMutation) SetOpenapiContent(s string) {
	m.openapi_content = &s
}

// OpenapiContent returns the value of the "openapi_content" field in the mutation.
func (m *RequestMutation) OpenapiContent() (r string, exists bool) {
	v := m.openapi_content
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenapiContent returns the old "openapi_content" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldOpenapiContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenapiContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenapiContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenapiContent: %w", err)
	}
	return oldValue.OpenapiContent, nil
}

// ClearOpenapiContent clears the value of the "openapi_content" field.
func (m *RequestMutation) ClearOpenapiContent() {
	m.openapi_content = nil
	m.clearedFields[request.FieldOpenapiContent] = struct{}{}
}

// OpenapiContentCleared returns if the "openapi_content" field was cleared in this mutation.
func (m *RequestMutation) OpenapiContentCleared() bool {
	_, ok := m.clearedFields[request.FieldOpenapiContent]
	return ok
}

// ResetOpenapiContent resets all changes to the "openapi_content" field.
func (m *RequestMutation) ResetOpenapiContent() {
	m.openapi_content = nil
	delete(m.clearedFields, request.FieldOpenapiContent)
}

// SetOptions sets the "options" field.
func (m *RequestMutation) SetOptions(value map[string]interface{}) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *RequestMutation) Options() (r map[string]interface{}, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldOptions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ClearOptions clears the value of the "options" field.
func (m *RequestMutation) ClearOptions() {
	m.options = nil
	m.clearedFields[request.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *RequestMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[request.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *RequestMutation) ResetOptions() {
	m.options = nil
	delete(m.clearedFields, request.FieldOptions)
}

// SetStatus sets the "status" field.
func (m *RequestMutation) SetStatus(r request.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RequestMutation) Status() (r request.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldStatus(ctx context.Context) (v request.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RequestMutation) ResetStatus() {
	m.status = nil
}

// SetErrorCode sets the "error_code" field.
func (m *RequestMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *RequestMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *RequestMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[request.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *RequestMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[request.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *RequestMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, request.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *RequestMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RequestMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RequestMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[request.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RequestMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[request.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RequestMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, request.FieldErrorMessage)
}

// SetResultSummary sets the "result_summary" field.
func (m *RequestMutation) SetResultSummary(value map[string]interface{}) {
	m.result_summary = &value
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *RequestMutation) ResultSummary() (r map[string]interface{}, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldResultSummary(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *RequestMutation) ClearResultSummary() {
	m.result_summary = nil
	m.clearedFields[request.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *RequestMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[request.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *RequestMutation) ResetResultSummary() {
	m.result_summary = nil
	delete(m.clearedFields, request.FieldResultSummary)
}

// SetPodID sets the "pod_id" field.
func (m *RequestMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *RequestMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *RequestMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[request.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *RequestMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[request.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *RequestMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, request.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *RequestMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *RequestMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *RequestMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[request.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *RequestMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[request.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *RequestMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, request.FieldLastHeartbeatAt)
}

// SetRequeueCount sets the "requeue_count" field.
func (m *RequestMutation) SetRequeueCount(i int) {
	m.requeue_count = &i
	m.addrequeue_count = nil
}

// RequeueCount returns the value of the "requeue_count" field in the mutation.
func (m *RequestMutation) RequeueCount() (r int, exists bool) {
	v := m.requeue_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRequeueCount returns the old "requeue_count" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRequeueCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequeueCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequeueCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequeueCount: %w", err)
	}
	return oldValue.RequeueCount, nil
}

// AddRequeueCount adds i to the "requeue_count" field.
func (m *RequestMutation) AddRequeueCount(i int) {
	if m.addrequeue_count != nil {
		*m.addrequeue_count += i
	} else {
		m.addrequeue_count = &i
	}
}

// AddedRequeueCount returns the value that was added to the "requeue_count" field in this mutation.
func (m *RequestMutation) AddedRequeueCount() (r int, exists bool) {
	v := m.addrequeue_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequeueCount resets all changes to the "requeue_count" field.
func (m *RequestMutation) ResetRequeueCount() {
	m.requeue_count = nil
	m.addrequeue_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RequestMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RequestMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RequestMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[request.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RequestMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[request.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RequestMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, request.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RequestMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RequestMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RequestMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[request.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RequestMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[request.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RequestMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, request.FieldCompletedAt)
}

// AddTestCaseIDs adds the "test_cases" edge to the TestCase entity by ids.
func (m *RequestMutation) AddTestCaseIDs(ids ...string) {
	if m.test_cases == nil {
		m.test_cases = make(map[string]struct{})
	}
	for i := range ids {
		m.test_cases[ids[i]] = struct{}{}
	}
}

// ClearTestCases clears the "test_cases" edge to the TestCase entity.
func (m *RequestMutation) ClearTestCases() {
	m.clearedtest_cases = true
}

// TestCasesCleared reports if the "test_cases" edge to the TestCase entity was cleared.
func (m *RequestMutation) TestCasesCleared() bool {
	return m.clearedtest_cases
}

// RemoveTestCaseIDs removes the "test_cases" edge to the TestCase entity by IDs.
func (m *RequestMutation) RemoveTestCaseIDs(ids ...string) {
	if m.removedtest_cases == nil {
		m.removedtest_cases = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.test_cases, ids[i])
		m.removedtest_cases[ids[i]] = struct{}{}
	}
}

// RemovedTestCases returns the removed IDs of the "test_cases" edge to the TestCase entity.
func (m *RequestMutation) RemovedTestCasesIDs() (ids []string) {
	for id := range m.removedtest_cases {
		ids = append(ids, id)
	}
	return
}

// TestCasesIDs returns the "test_cases" edge IDs in the mutation.
func (m *RequestMutation) TestCasesIDs() (ids []string) {
	for id := range m.test_cases {
		ids = append(ids, id)
	}
	return
}

// ResetTestCases resets all changes to the "test_cases" edge.
func (m *RequestMutation) ResetTestCases() {
	m.test_cases = nil
	m.clearedtest_cases = false
	m.removedtest_cases = nil
}

// AddMetricIDs adds the "metrics" edge to the GenerationMetric entity by ids.
func (m *RequestMutation) AddMetricIDs(ids ...string) {
	if m.metrics == nil {
		m.metrics = make(map[string]struct{})
	}
	for i := range ids {
		m.metrics[ids[i]] = struct{}{}
	}
}

// ClearMetrics clears the "metrics" edge to the GenerationMetric entity.
func (m *RequestMutation) ClearMetrics() {
	m.clearedmetrics = true
}

// MetricsCleared reports if the "metrics" edge to the GenerationMetric entity was cleared.
func (m *RequestMutation) MetricsCleared() bool {
	return m.clearedmetrics
}

// RemoveMetricIDs removes the "metrics" edge to the GenerationMetric entity by IDs.
func (m *RequestMutation) RemoveMetricIDs(ids ...string) {
	if m.removedmetrics == nil {
		m.removedmetrics = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.metrics, ids[i])
		m.removedmetrics[ids[i]] = struct{}{}
	}
}

// RemovedMetrics returns the removed IDs of the "metrics" edge to the GenerationMetric entity.
func (m *RequestMutation) RemovedMetricsIDs() (ids []string) {
	for id := range m.removedmetrics {
		ids = append(ids, id)
	}
	return
}

// MetricsIDs returns the "metrics" edge IDs in the mutation.
func (m *RequestMutation) MetricsIDs() (ids []string) {
	for id := range m.metrics {
		ids = append(ids, id)
	}
	return
}

// ResetMetrics resets all changes to the "metrics" edge.
func (m *RequestMutation) ResetMetrics() {
	m.metrics = nil
	m.clearedmetrics = false
	m.removedmetrics = nil
}

// AddCoverageIDs adds the "coverage" edge to the CoverageAnalysis entity by ids.
func (m *RequestMutation) AddCoverageIDs(ids ...string) {
	if m.coverage == nil {
		m.coverage = make(map[string]struct{})
	}
	for i := range ids {
		m.coverage[ids[i]] = struct{}{}
	}
}

// ClearCoverage clears the "coverage" edge to the CoverageAnalysis entity.
func (m *RequestMutation) ClearCoverage() {
	m.clearedcoverage = true
}

// CoverageCleared reports if the "coverage" edge to the CoverageAnalysis entity was cleared.
func (m *RequestMutation) CoverageCleared() bool {
	return m.clearedcoverage
}

// RemoveCoverageIDs removes the "coverage" edge to the CoverageAnalysis entity by IDs.
func (m *RequestMutation) RemoveCoverageIDs(ids ...string) {
	if m.removedcoverage == nil {
		m.removedcoverage = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.coverage, ids[i])
		m.removedcoverage[ids[i]] = struct{}{}
	}
}

// RemovedCoverage returns the removed IDs of the "coverage" edge to the CoverageAnalysis entity.
func (m *RequestMutation) RemovedCoverageIDs() (ids []string) {
	for id := range m.removedcoverage {
		ids = append(ids, id)
	}
	return
}

// CoverageIDs returns the "coverage" edge IDs in the mutation.
func (m *RequestMutation) CoverageIDs() (ids []string) {
	for id := range m.coverage {
		ids = append(ids, id)
	}
	return
}

// ResetCoverage resets all changes to the "coverage" edge.
func (m *RequestMutation) ResetCoverage() {
	m.coverage = nil
	m.clearedcoverage = false
	m.removedcoverage = nil
}

// AddAuditLogIDs adds the "audit_logs" edge to the SecurityAuditLog entity by ids.
func (m *RequestMutation) AddAuditLogIDs(ids ...string) {
	if m.audit_logs == nil {
		m.audit_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.audit_logs[ids[i]] = struct{}{}
	}
}

// ClearAuditLogs clears the "audit_logs" edge to the SecurityAuditLog entity.
func (m *RequestMutation) ClearAuditLogs() {
	m.clearedaudit_logs = true
}

// AuditLogsCleared reports if the "audit_logs" edge to the SecurityAuditLog entity was cleared.
func (m *RequestMutation) AuditLogsCleared() bool {
	return m.clearedaudit_logs
}

// RemoveAuditLogIDs removes the "audit_logs" edge to the SecurityAuditLog entity by IDs.
func (m *RequestMutation) RemoveAuditLogIDs(ids ...string) {
	if m.removedaudit_logs == nil {
		m.removedaudit_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audit_logs, ids[i])
		m.removedaudit_logs[ids[i]] = struct{}{}
	}
}

// RemovedAuditLogs returns the removed IDs of the "audit_logs" edge to the SecurityAuditLog entity.
func (m *RequestMutation) RemovedAuditLogsIDs() (ids []string) {
	for id := range m.removedaudit_logs {
		ids = append(ids, id)
	}
	return
}

// AuditLogsIDs returns the "audit_logs" edge IDs in the mutation.
func (m *RequestMutation) AuditLogsIDs() (ids []string) {
	for id := range m.audit_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAuditLogs resets all changes to the "audit_logs" edge.
func (m *RequestMutation) ResetAuditLogs() {
	m.audit_logs = nil
	m.clearedaudit_logs = false
	m.removedaudit_logs = nil
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by id.
func (m *RequestMutation) SetCheckpointID(id string) {
	m.checkpoint = &id
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (m *RequestMutation) ClearCheckpoint() {
	m.clearedcheckpoint = true
}

// CheckpointCleared reports if the "checkpoint" edge to the Checkpoint entity was cleared.
func (m *RequestMutation) CheckpointCleared() bool {
	return m.clearedcheckpoint
}

// CheckpointID returns the "checkpoint" edge ID in the mutation.
func (m *RequestMutation) CheckpointID() (id string, exists bool) {
	if m.checkpoint != nil {
		return *m.checkpoint, true
	}
	return
}

// CheckpointIDs returns the "checkpoint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CheckpointID instead. It exists only for internal usage by the builders.
func (m *RequestMutation) CheckpointIDs() (ids []string) {
	if id := m.checkpoint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCheckpoint resets all changes to the "checkpoint" edge.
func (m *RequestMutation) ResetCheckpoint() {
	m.checkpoint = nil
	m.clearedcheckpoint = false
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *RequestMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *RequestMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *RequestMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *RequestMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *RequestMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *RequestMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *RequestMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the RequestMutation builder.
func (m *RequestMutation) Where(ps ...predicate.Request) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Request, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Request).
func (m *RequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.request_type != nil {
		fields = append(fields, request.FieldRequestType)
	}
	if m.url != nil {
		fields = append(fields, request.FieldURL)
	}
	if m.requirements != nil {
		fields = append(fields, request.FieldRequirements)
	}
	if m.test_types != nil {
		fields = append(fields, request.FieldTestTypes)
	}
	if m.openapi_url != nil {
		fields = append(fields, request.FieldOpenapiURL)
	}
	if m.openapi_content != nil {
		fields = append(fields, request.FieldOpenapiContent)
	}
	if m.options != nil {
		fields = append(fields, request.FieldOptions)
	}
	if m.status != nil {
		fields = append(fields, request.FieldStatus)
	}
	if m.error_code != nil {
		fields = append(fields, request.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, request.FieldErrorMessage)
	}
	if m.result_summary != nil {
		fields = append(fields, request.FieldResultSummary)
	}
	if m.pod_id != nil {
		fields = append(fields, request.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, request.FieldLastHeartbeatAt)
	}
	if m.requeue_count != nil {
		fields = append(fields, request.FieldRequeueCount)
	}
	if m.created_at != nil {
		fields = append(fields, request.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, request.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, request.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case request.FieldRequestType:
		return m.RequestType()
	case request.FieldURL:
		return m.URL()
	case request.FieldRequirements:
		return m.Requirements()
	case request.FieldTestTypes:
		return m.TestTypes()
	case request.FieldOpenapiURL:
		return m.OpenapiURL()
	case request.FieldOpenapiContent:
		return m.OpenapiContent()
	case request.FieldOptions:
		return m.Options()
	case request.FieldStatus:
		return m.Status()
	case request.FieldErrorCode:
		return m.ErrorCode()
	case request.FieldErrorMessage:
		return m.ErrorMessage()
	case request.FieldResultSummary:
		return m.ResultSummary()
	case request.FieldPodID:
		return m.PodID()
	case request.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case request.FieldRequeueCount:
		return m.RequeueCount()
	case request.FieldCreatedAt:
		return m.CreatedAt()
	case request.FieldStartedAt:
		return m.StartedAt()
	case request.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case request.FieldRequestType:
		return m.OldRequestType(ctx)
	case request.FieldURL:
		return m.OldURL(ctx)
	case request.FieldRequirements:
		return m.OldRequirements(ctx)
	case request.FieldTestTypes:
		return m.OldTestTypes(ctx)
	case request.FieldOpenapiURL:
		return m.OldOpenapiURL(ctx)
	case request.FieldOpenapiContent:
		return m.OldOpenapiContent(ctx)
	case request.FieldOptions:
		return m.OldOptions(ctx)
	case request.FieldStatus:
		return m.OldStatus(ctx)
	case request.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case request.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case request.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case request.FieldPodID:
		return m.OldPodID(ctx)
	case request.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case request.FieldRequeueCount:
		return m.OldRequeueCount(ctx)
	case request.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case request.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case request.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Request field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case request.FieldRequestType:
		v, ok := value.(request.RequestType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestType(v)
		return nil
	case request.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case request.FieldRequirements:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirements(v)
		return nil
	case request.FieldTestTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestTypes(v)
		return nil
	case request.FieldOpenapiURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenapiURL(v)
		return nil
	case request.FieldOpenapiContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenapiContent(v)
		return nil
	case request.FieldOptions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case request.FieldStatus:
		v, ok := value.(request.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case request.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case request.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case request.FieldResultSummary:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case request.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case request.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case request.FieldRequeueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequeueCount(v)
		return nil
	case request.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case request.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case request.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestMutation) AddedFields() []string {
	var fields []string
	if m.addrequeue_count != nil {
		fields = append(fields, request.FieldRequeueCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case request.FieldRequeueCount:
		return m.AddedRequeueCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case request.FieldRequeueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequeueCount(v)
		return nil
	}
	return fmt.Errorf("unknown Request numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(request.FieldURL) {
		fields = append(fields, request.FieldURL)
	}
	if m.FieldCleared(request.FieldTestTypes) {
		fields = append(fields, request.FieldTestTypes)
	}
	if m.FieldCleared(request.FieldOpenapiURL) {
		fields = append(fields, request.FieldOpenapiURL)
	}
	if m.FieldCleared(request.FieldOpenapiContent) {
		fields = append(fields, request.FieldOpenapiContent)
	}
	if m.FieldCleared(request.FieldOptions) {
		fields = append(fields, request.FieldOptions)
	}
	if m.FieldCleared(request.FieldErrorCode) {
		fields = append(fields, request.FieldErrorCode)
	}
	if m.FieldCleared(request.FieldErrorMessage) {
		fields = append(fields, request.FieldErrorMessage)
	}
	if m.FieldCleared(request.FieldResultSummary) {
		fields = append(fields, request.FieldResultSummary)
	}
	if m.FieldCleared(request.FieldPodID) {
		fields = append(fields, request.FieldPodID)
	}
	if m.FieldCleared(request.FieldLastHeartbeatAt) {
		fields = append(fields, request.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(request.FieldStartedAt) {
		fields = append(fields, request.FieldStartedAt)
	}
	if m.FieldCleared(request.FieldCompletedAt) {
		fields = append(fields, request.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestMutation) ClearField(name string) error {
	switch name {
	case request.FieldURL:
		m.ClearURL()
		return nil
	case request.FieldTestTypes:
		m.ClearTestTypes()
		return nil
	case request.FieldOpenapiURL:
		m.ClearOpenapiURL()
		return nil
	case request.FieldOpenapiContent:
		m.ClearOpenapiContent()
		return nil
	case request.FieldOptions:
		m.ClearOptions()
		return nil
	case request.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case request.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case request.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	case request.FieldPodID:
		m.ClearPodID()
		return nil
	case request.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case request.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case request.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Request nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestMutation) ResetField(name string) error {
	switch name {
	case request.FieldRequestType:
		m.ResetRequestType()
		return nil
	case request.FieldURL:
		m.ResetURL()
		return nil
	case request.FieldRequirements:
		m.ResetRequirements()
		return nil
	case request.FieldTestTypes:
		m.ResetTestTypes()
		return nil
	case request.FieldOpenapiURL:
		m.ResetOpenapiURL()
		return nil
	case request.FieldOpenapiContent:
		m.ResetOpenapiContent()
		return nil
	case request.FieldOptions:
		m.ResetOptions()
		return nil
	case request.FieldStatus:
		m.ResetStatus()
		return nil
	case request.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case request.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case request.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case request.FieldPodID:
		m.ResetPodID()
		return nil
	case request.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case request.FieldRequeueCount:
		m.ResetRequeueCount()
		return nil
	case request.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case request.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case request.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.test_cases != nil {
		edges = append(edges, request.EdgeTestCases)
	}
	if m.metrics != nil {
		edges = append(edges, request.EdgeMetrics)
	}
	if m.coverage != nil {
		edges = append(edges, request.EdgeCoverage)
	}
	if m.audit_logs != nil {
		edges = append(edges, request.EdgeAuditLogs)
	}
	if m.checkpoint != nil {
		edges = append(edges, request.EdgeCheckpoint)
	}
	if m.events != nil {
		edges = append(edges, request.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case request.EdgeTestCases:
		ids := make([]ent.Value, 0, len(m.test_cases))
		for id := range m.test_cases {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeMetrics:
		ids := make([]ent.Value, 0, len(m.metrics))
		for id := range m.metrics {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeCoverage:
		ids := make([]ent.Value, 0, len(m.coverage))
		for id := range m.coverage {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.audit_logs))
		for id := range m.audit_logs {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeCheckpoint:
		if id := m.checkpoint; id != nil {
			return []ent.Value{*id}
		}
	case request.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedtest_cases != nil {
		edges = append(edges, request.EdgeTestCases)
	}
	if m.removedmetrics != nil {
		edges = append(edges, request.EdgeMetrics)
	}
	if m.removedcoverage != nil {
		edges = append(edges, request.EdgeCoverage)
	}
	if m.removedaudit_logs != nil {
		edges = append(edges, request.EdgeAuditLogs)
	}
	if m.removedevents != nil {
		edges = append(edges, request.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case request.EdgeTestCases:
		ids := make([]ent.Value, 0, len(m.removedtest_cases))
		for id := range m.removedtest_cases {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeMetrics:
		ids := make([]ent.Value, 0, len(m.removedmetrics))
		for id := range m.removedmetrics {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeCoverage:
		ids := make([]ent.Value, 0, len(m.removedcoverage))
		for id := range m.removedcoverage {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.removedaudit_logs))
		for id := range m.removedaudit_logs {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedtest_cases {
		edges = append(edges, request.EdgeTestCases)
	}
	if m.clearedmetrics {
		edges = append(edges, request.EdgeMetrics)
	}
	if m.clearedcoverage {
		edges = append(edges, request.EdgeCoverage)
	}
	if m.clearedaudit_logs {
		edges = append(edges, request.EdgeAuditLogs)
	}
	if m.clearedcheckpoint {
		edges = append(edges, request.EdgeCheckpoint)
	}
	if m.clearedevents {
		edges = append(edges, request.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestMutation) EdgeCleared(name string) bool {
	switch name {
	case request.EdgeTestCases:
		return m.clearedtest_cases
	case request.EdgeMetrics:
		return m.clearedmetrics
	case request.EdgeCoverage:
		return m.clearedcoverage
	case request.EdgeAuditLogs:
		return m.clearedaudit_logs
	case request.EdgeCheckpoint:
		return m.clearedcheckpoint
	case request.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestMutation) ClearEdge(name string) error {
	switch name {
	case request.EdgeCheckpoint:
		m.ClearCheckpoint()
		return nil
	}
	return fmt.Errorf("unknown Request unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestMutation) ResetEdge(name string) error {
	switch name {
	case request.EdgeTestCases:
		m.ResetTestCases()
		return nil
	case request.EdgeMetrics:
		m.ResetMetrics()
		return nil
	case request.EdgeCoverage:
		m.ResetCoverage()
		return nil
	case request.EdgeAuditLogs:
		m.ResetAuditLogs()
		return nil
	case request.EdgeCheckpoint:
		m.ResetCheckpoint()
		return nil
	case request.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Request edge %s", name)
}

// SecurityAuditLogMutation represents an operation that mutates the SecurityAuditLog nodes in the graph.
type SecurityAuditLogMutation struct {
	config
	op             Op
	typ            string
	id             *string
	test_index     *int
	addtest_index  *int
	layer          *securityauditlog.Layer
	severity       *securityauditlog.Severity
	pattern        *string
	snippet        *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *string
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*SecurityAuditLog, error)
	predicates     []predicate.SecurityAuditLog
}

var _ ent.Mutation = (*SecurityAuditLogMutation)(nil)

// securityauditlogOption allows management of the mutation configuration using functional options.
type securityauditlogOption func(*SecurityAuditLogMutation)

// newSecurityAuditLogMutation creates new mutation for the SecurityAuditLog entity.
func newSecurityAuditLogMutation(c config, op Op, opts ...securityauditlogOption) *SecurityAuditLogMutation {
	m := &SecurityAuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeSecurityAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSecurityAuditLogID sets the ID field of the mutation.
func withSecurityAuditLogID(id string) securityauditlogOption {
	return func(m *SecurityAuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *SecurityAuditLog
		)
		m.oldValue = func(ctx context.Context) (*SecurityAuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SecurityAuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSecurityAuditLog sets the old SecurityAuditLog of the mutation.
func withSecurityAuditLog(node *SecurityAuditLog) securityauditlogOption {
	return func(m *SecurityAuditLogMutation) {
		m.oldValue = func(context.Context) (*SecurityAuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SecurityAuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SecurityAuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SecurityAuditLog entities.
func (m *SecurityAuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SecurityAuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SecurityAuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SecurityAuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *SecurityAuditLogMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *SecurityAuditLogMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the SecurityAuditLog entity.
// If the SecurityAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityAuditLogMutation) OldRequestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *SecurityAuditLogMutation) ClearRequestID() {
	m.request = nil
	m.clearedFields[securityauditlog.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *SecurityAuditLogMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[securityauditlog.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *SecurityAuditLogMutation) ResetRequestID() {
	m.request = nil
	delete(m.clearedFields, securityauditlog.FieldRequestID)
}

// SetTestIndex sets the "test_index" field.
func (m *SecurityAuditLogMutation) SetTestIndex(i int) {
	m.test_index = &i
	m.addtest_index = nil
}

// TestIndex returns the value of the "test_index" field in the mutation.
func (m *SecurityAuditLogMutation) TestIndex() (r int, exists bool) {
	v := m.test_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTestIndex returns the old "test_index" field's value of the SecurityAuditLog entity.
// If the SecurityAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityAuditLogMutation) OldTestIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestIndex: %w", err)
	}
	return oldValue.TestIndex, nil
}

// AddTestIndex adds i to the "test_index" field.
func (m *SecurityAuditLogMutation) AddTestIndex(i int) {
	if m.addtest_index != nil {
		*m.addtest_index += i
	} else {
		m.addtest_index = &i
	}
}

// AddedTestIndex returns the value that was added to the "test_index" field in this mutation.
func (m *SecurityAuditLogMutation) AddedTestIndex() (r int, exists bool) {
	v := m.addtest_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTestIndex resets all changes to the "test_index" field.
func (m *SecurityAuditLogMutation) ResetTestIndex() {
	m.test_index = nil
	m.addtest_index = nil
}

// SetLayer sets the "layer" field.
func (m *SecurityAuditLogMutation) SetLayer(s securityauditlog.Layer) {
	m.layer = &s
}

// Layer returns the value of the "layer" field in the mutation.
func (m *SecurityAuditLogMutation) Layer() (r securityauditlog.Layer, exists bool) {
	v := m.layer
	if v == nil {
		return
	}
	return *v, true
}

// OldLayer returns the old "layer" field's value of the SecurityAuditLog entity.
// If the SecurityAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityAuditLogMutation) OldLayer(ctx context.Context) (v securityauditlog.Layer, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayer: %w", err)
	}
	return oldValue.Layer, nil
}

// ResetLayer resets all changes to the "layer" field.
func (m *SecurityAuditLogMutation) ResetLayer() {
	m.layer = nil
}

// SetSeverity sets the "severity" field.
func (m *SecurityAuditLogMutation) SetSeverity(s securityauditlog.Severity) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *SecurityAuditLogMutation) Severity() (r securityauditlog.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the SecurityAuditLog entity.
// If the SecurityAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityAuditLogMutation) OldSeverity(ctx context.Context) (v securityauditlog.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *SecurityAuditLogMutation) ResetSeverity() {
	m.severity = nil
}

// SetPattern sets the "pattern" field.
func (m *SecurityAuditLogMutation) SetPattern(s string) {
	m.pattern = &s
}

// Pattern returns the value of the "pattern" field in the mutation.
func (m *SecurityAuditLogMutation) Pattern() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPattern returns the old "pattern" field's value of the SecurityAuditLog entity.
// If the SecurityAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityAuditLogMutation) OldPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPattern: %w", err)
	}
	return oldValue.Pattern, nil
}

// ResetPattern resets all changes to the "pattern" field.
func (m *SecurityAuditLogMutation) ResetPattern() {
	m.pattern = nil
}

// SetSnippet sets the "snippet" field.
func (m *SecurityAuditLogMutation) SetSnippet(s string) {
	m.snippet = &s
}

// Snippet returns the value of the "snippet" field in the mutation.
func (m *SecurityAuditLogMutation) Snippet() (r string, exists bool) {
	v := m.snippet
	if v == nil {
		return
	}
	return *v, true
}

// OldSnippet returns the old "snippet" field's value of the SecurityAuditLog entity.
// If the SecurityAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityAuditLogMutation) OldSnippet(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnippet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnippet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnippet: %w", err)
	}
	return oldValue.Snippet, nil
}

// ClearSnippet clears the value of the "snippet" field.
func (m *SecurityAuditLogMutation) ClearSnippet() {
	m.snippet = nil
	m.clearedFields[securityauditlog.FieldSnippet] = struct{}{}
}

// SnippetCleared returns if the "snippet" field was cleared in this mutation.
func (m *SecurityAuditLogMutation) SnippetCleared() bool {
	_, ok := m.clearedFields[securityauditlog.FieldSnippet]
	return ok
}

// ResetSnippet resets all changes to the "snippet" field.
func (m *SecurityAuditLogMutation) ResetSnippet() {
	m.snippet = nil
	delete(m.clearedFields, securityauditlog.FieldSnippet)
}

// SetCreatedAt sets the "created_at" field.
func (m *SecurityAuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SecurityAuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SecurityAuditLog entity.
// If the SecurityAuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecurityAuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SecurityAuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *SecurityAuditLogMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[securityauditlog.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *SecurityAuditLogMutation) RequestCleared() bool {
	return m.RequestIDCleared() || m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *SecurityAuditLogMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *SecurityAuditLogMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the SecurityAuditLogMutation builder.
func (m *SecurityAuditLogMutation) Where(ps ...predicate.SecurityAuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SecurityAuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SecurityAuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SecurityAuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SecurityAuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SecurityAuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SecurityAuditLog).
func (m *SecurityAuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SecurityAuditLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.request != nil {
		fields = append(fields, securityauditlog.FieldRequestID)
	}
	if m.test_index != nil {
		fields = append(fields, securityauditlog.FieldTestIndex)
	}
	if m.layer != nil {
		fields = append(fields, securityauditlog.FieldLayer)
	}
	if m.severity != nil {
		fields = append(fields, securityauditlog.FieldSeverity)
	}
	if m.pattern != nil {
		fields = append(fields, securityauditlog.FieldPattern)
	}
	if m.snippet != nil {
		fields = append(fields, securityauditlog.FieldSnippet)
	}
	if m.created_at != nil {
		fields = append(fields, securityauditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SecurityAuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case securityauditlog.FieldRequestID:
		return m.RequestID()
	case securityauditlog.FieldTestIndex:
		return m.TestIndex()
	case securityauditlog.FieldLayer:
		return m.Layer()
	case securityauditlog.FieldSeverity:
		return m.Severity()
	case securityauditlog.FieldPattern:
		return m.Pattern()
	case securityauditlog.FieldSnippet:
		return m.Snippet()
	case securityauditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SecurityAuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case securityauditlog.FieldRequestID:
		return m.OldRequestID(ctx)
	case securityauditlog.FieldTestIndex:
		return m.OldTestIndex(ctx)
	case securityauditlog.FieldLayer:
		return m.OldLayer(ctx)
	case securityauditlog.FieldSeverity:
		return m.OldSeverity(ctx)
	case securityauditlog.FieldPattern:
		return m.OldPattern(ctx)
	case securityauditlog.FieldSnippet:
		return m.OldSnippet(ctx)
	case securityauditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SecurityAuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecurityAuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case securityauditlog.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case securityauditlog.FieldTestIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestIndex(v)
		return nil
	case securityauditlog.FieldLayer:
		v, ok := value.(securityauditlog.Layer)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayer(v)
		return nil
	case securityauditlog.FieldSeverity:
		v, ok := value.(securityauditlog.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case securityauditlog.FieldPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPattern(v)
		return nil
	case securityauditlog.FieldSnippet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnippet(v)
		return nil
	case securityauditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SecurityAuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SecurityAuditLogMutation) AddedFields() []string {
	var fields []string
	if m.addtest_index != nil {
		fields = append(fields, securityauditlog.FieldTestIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SecurityAuditLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case securityauditlog.FieldTestIndex:
		return m.AddedTestIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecurityAuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case securityauditlog.FieldTestIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTestIndex(v)
		return nil
	}
	return fmt.Errorf("unknown SecurityAuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SecurityAuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(securityauditlog.FieldRequestID) {
		fields = append(fields, securityauditlog.FieldRequestID)
	}
	if m.FieldCleared(securityauditlog.FieldSnippet) {
		fields = append(fields, securityauditlog.FieldSnippet)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SecurityAuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SecurityAuditLogMutation) ClearField(name string) error {
	switch name {
	case securityauditlog.FieldRequestID:
		m.ClearRequestID()
		return nil
	case securityauditlog.FieldSnippet:
		m.ClearSnippet()
		return nil
	}
	return fmt.Errorf("unknown SecurityAuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SecurityAuditLogMutation) ResetField(name string) error {
	switch name {
	case securityauditlog.FieldRequestID:
		m.ResetRequestID()
		return nil
	case securityauditlog.FieldTestIndex:
		m.ResetTestIndex()
		return nil
	case securityauditlog.FieldLayer:
		m.ResetLayer()
		return nil
	case securityauditlog.FieldSeverity:
		m.ResetSeverity()
		return nil
	case securityauditlog.FieldPattern:
		m.ResetPattern()
		return nil
	case securityauditlog.FieldSnippet:
		m.ResetSnippet()
		return nil
	case securityauditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SecurityAuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SecurityAuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, securityauditlog.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SecurityAuditLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case securityauditlog.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SecurityAuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SecurityAuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SecurityAuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, securityauditlog.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SecurityAuditLogMutation) EdgeCleared(name string) bool {
	switch name {
	case securityauditlog.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SecurityAuditLogMutation) ClearEdge(name string) error {
	switch name {
	case securityauditlog.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown SecurityAuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SecurityAuditLogMutation) ResetEdge(name string) error {
	switch name {
	case securityauditlog.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown SecurityAuditLog edge %s", name)
}

// TestCaseMutation represents an operation that mutates the TestCase nodes in the graph.
type TestCaseMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	code           *string
	description    *string
	test_type      *string
	score          *int
	addscore       *int
	valid          *bool
	duplicate_of   *string
	similarity     *float64
	addsimilarity  *float64
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *string
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*TestCase, error)
	predicates     []predicate.TestCase
}

var _ ent.Mutation = (*TestCaseMutation)(nil)

// testcaseOption allows management of the mutation configuration using functional options.
type testcaseOption func(*TestCaseMutation)

// newTestCaseMutation creates new mutation for the TestCase entity.
func newTestCaseMutation(c config, op Op, opts ...testcaseOption) *TestCaseMutation {
	m := &TestCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeTestCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestCaseID sets the ID field of the mutation.
func withTestCaseID(id string) testcaseOption {
	return func(m *TestCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *TestCase
		)
		m.oldValue = func(ctx context.Context) (*TestCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestCase sets the old TestCase of the mutation.
func withTestCase(node *TestCase) testcaseOption {
	return func(m *TestCaseMutation) {
		m.oldValue = func(context.Context) (*TestCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TestCase entities.
func (m *TestCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *TestCaseMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *TestCaseMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *TestCaseMutation) ResetRequestID() {
	m.request = nil
}

// SetName sets the "name" field.
func (m *TestCaseMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TestCaseMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TestCaseMutation) ResetName() {
	m.name = nil
}

// SetCode sets the "code" field.
func (m *TestCaseMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *TestCaseMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *TestCaseMutation) ResetCode() {
	m.code = nil
}

// SetDescription sets the "description" field.
func (m *TestCaseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TestCaseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TestCaseMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[testcase.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TestCaseMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[testcase.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TestCaseMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, testcase.FieldDescription)
}

// SetTestType sets the "test_type" field.
func (m *TestCaseMutation) SetTestType(s string) {
	m.test_type = &s
}

// TestType returns the value of the "test_type" field in the mutation.
func (m *TestCaseMutation) TestType() (r string, exists bool) {
	v := m.test_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTestType returns the old "test_type" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldTestType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestType: %w", err)
	}
	return oldValue.TestType, nil
}

// ClearTestType clears the value of the "test_type" field.
func (m *TestCaseMutation) ClearTestType() {
	m.test_type = nil
	m.clearedFields[testcase.FieldTestType] = struct{}{}
}

// TestTypeCleared returns if the "test_type" field was cleared in this mutation.
func (m *TestCaseMutation) TestTypeCleared() bool {
	_, ok := m.clearedFields[testcase.FieldTestType]
	return ok
}

// ResetTestType resets all changes to the "test_type" field.
func (m *TestCaseMutation) ResetTestType() {
	m.test_type = nil
	delete(m.clearedFields, testcase.FieldTestType)
}

// SetScore sets the "score" field.
func (m *TestCaseMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *TestCaseMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *TestCaseMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *TestCaseMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *TestCaseMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetValid sets the "valid" field.
func (m *TestCaseMutation) SetValid(b bool) {
	m.valid = &b
}

// Valid returns the value of the "valid" field in the mutation.
func (m *TestCaseMutation) Valid() (r bool, exists bool) {
	v := m.valid
	if v == nil {
		return
	}
	return *v, true
}

// OldValid returns the old "valid" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValid: %w", err)
	}
	return oldValue.Valid, nil
}

// ResetValid resets all changes to the "valid" field.
func (m *TestCaseMutation) ResetValid() {
	m.valid = nil
}

// SetDuplicateOf sets the "duplicate_of" field.
func (m *TestCaseMutation) SetDuplicateOf(s string) {
	m.duplicate_of = &s
}

// DuplicateOf returns the value of the "duplicate_of" field in the mutation.
func (m *TestCaseMutation) DuplicateOf() (r string, exists bool) {
	v := m.duplicate_of
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicateOf returns the old "duplicate_of" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldDuplicateOf(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicateOf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicateOf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicateOf: %w", err)
	}
	return oldValue.DuplicateOf, nil
}

// ClearDuplicateOf clears the value of the "duplicate_of" field.
func (m *TestCaseMutation) ClearDuplicateOf() {
	m.duplicate_of = nil
	m.clearedFields[testcase.FieldDuplicateOf] = struct{}{}
}

// DuplicateOfCleared returns if the "duplicate_of" field was cleared in this mutation.
func (m *TestCaseMutation) DuplicateOfCleared() bool {
	_, ok := m.clearedFields[testcase.FieldDuplicateOf]
	return ok
}

// ResetDuplicateOf resets all changes to the "duplicate_of" field.
func (m *TestCaseMutation) ResetDuplicateOf() {
	m.duplicate_of = nil
	delete(m.clearedFields, testcase.FieldDuplicateOf)
}

// SetSimilarity sets the "similarity" field.
func (m *TestCaseMutation) SetSimilarity(f float64) {
	m.similarity = &f
	m.addsimilarity = nil
}

// Similarity returns the value of the "similarity" field in the mutation.
func (m *TestCaseMutation) Similarity() (r float64, exists bool) {
	v := m.similarity
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarity returns the old "similarity" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldSimilarity(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarity: %w", err)
	}
	return oldValue.Similarity, nil
}

// AddSimilarity adds f to the "similarity" field.
func (m *TestCaseMutation) AddSimilarity(f float64) {
	if m.addsimilarity != nil {
		*m.addsimilarity += f
	} else {
		m.addsimilarity = &f
	}
}

// AddedSimilarity returns the value that was added to the "similarity" field in this mutation.
func (m *TestCaseMutation) AddedSimilarity() (r float64, exists bool) {
	v := m.addsimilarity
	if v == nil {
		return
	}
	return *v, true
}

// ClearSimilarity clears the value of the "similarity" field.
func (m *TestCaseMutation) ClearSimilarity() {
	m.similarity = nil
	m.addsimilarity = nil
	m.clearedFields[testcase.FieldSimilarity] = struct{}{}
}

// SimilarityCleared returns if the "similarity" field was cleared in this mutation.
func (m *TestCaseMutation) SimilarityCleared() bool {
	_, ok := m.clearedFields[testcase.FieldSimilarity]
	return ok
}

// ResetSimilarity resets all changes to the "similarity" field.
func (m *TestCaseMutation) ResetSimilarity() {
	m.similarity = nil
	m.addsimilarity = nil
	delete(m.clearedFields, testcase.FieldSimilarity)
}

// SetCreatedAt sets the "created_at" field.
func (m *TestCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *TestCaseMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[testcase.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *TestCaseMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *TestCaseMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *TestCaseMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the TestCaseMutation builder.
func (m *TestCaseMutation) Where(ps ...predicate.TestCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestCase).
func (m *TestCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestCaseMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.request != nil {
		fields = append(fields, testcase.FieldRequestID)
	}
	if m.name != nil {
		fields = append(fields, testcase.FieldName)
	}
	if m.code != nil {
		fields = append(fields, testcase.FieldCode)
	}
	if m.description != nil {
		fields = append(fields, testcase.FieldDescription)
	}
	if m.test_type != nil {
		fields = append(fields, testcase.FieldTestType)
	}
	if m.score != nil {
		fields = append(fields, testcase.FieldScore)
	}
	if m.valid != nil {
		fields = append(fields, testcase.FieldValid)
	}
	if m.duplicate_of != nil {
		fields = append(fields, testcase.FieldDuplicateOf)
	}
	if m.similarity != nil {
		fields = append(fields, testcase.FieldSimilarity)
	}
	if m.created_at != nil {
		fields = append(fields, testcase.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testcase.FieldRequestID:
		return m.RequestID()
	case testcase.FieldName:
		return m.Name()
	case testcase.FieldCode:
		return m.Code()
	case testcase.FieldDescription:
		return m.Description()
	case testcase.FieldTestType:
		return m.TestType()
	case testcase.FieldScore:
		return m.Score()
	case testcase.FieldValid:
		return m.Valid()
	case testcase.FieldDuplicateOf:
		return m.DuplicateOf()
	case testcase.FieldSimilarity:
		return m.Similarity()
	case testcase.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testcase.FieldRequestID:
		return m.OldRequestID(ctx)
	case testcase.FieldName:
		return m.OldName(ctx)
	case testcase.FieldCode:
		return m.OldCode(ctx)
	case testcase.FieldDescription:
		return m.OldDescription(ctx)
	case testcase.FieldTestType:
		return m.OldTestType(ctx)
	case testcase.FieldScore:
		return m.OldScore(ctx)
	case testcase.FieldValid:
		return m.OldValid(ctx)
	case testcase.FieldDuplicateOf:
		return m.OldDuplicateOf(ctx)
	case testcase.FieldSimilarity:
		return m.OldSimilarity(ctx)
	case testcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TestCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testcase.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case testcase.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case testcase.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case testcase.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case testcase.FieldTestType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestType(v)
		return nil
	case testcase.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case testcase.FieldValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValid(v)
		return nil
	case testcase.FieldDuplicateOf:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicateOf(v)
		return nil
	case testcase.FieldSimilarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarity(v)
		return nil
	case testcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TestCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestCaseMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, testcase.FieldScore)
	}
	if m.addsimilarity != nil {
		fields = append(fields, testcase.FieldSimilarity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestCaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testcase.FieldScore:
		return m.AddedScore()
	case testcase.FieldSimilarity:
		return m.AddedSimilarity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testcase.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case testcase.FieldSimilarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarity(v)
		return nil
	}
	return fmt.Errorf("unknown TestCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testcase.FieldDescription) {
		fields = append(fields, testcase.FieldDescription)
	}
	if m.FieldCleared(testcase.FieldTestType) {
		fields = append(fields, testcase.FieldTestType)
	}
	if m.FieldCleared(testcase.FieldDuplicateOf) {
		fields = append(fields, testcase.FieldDuplicateOf)
	}
	if m.FieldCleared(testcase.FieldSimilarity) {
		fields = append(fields, testcase.FieldSimilarity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestCaseMutation) ClearField(name string) error {
	switch name {
	case testcase.FieldDescription:
		m.ClearDescription()
		return nil
	case testcase.FieldTestType:
		m.ClearTestType()
		return nil
	case testcase.FieldDuplicateOf:
		m.ClearDuplicateOf()
		return nil
	case testcase.FieldSimilarity:
		m.ClearSimilarity()
		return nil
	}
	return fmt.Errorf("unknown TestCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestCaseMutation) ResetField(name string) error {
	switch name {
	case testcase.FieldRequestID:
		m.ResetRequestID()
		return nil
	case testcase.FieldName:
		m.ResetName()
		return nil
	case testcase.FieldCode:
		m.ResetCode()
		return nil
	case testcase.FieldDescription:
		m.ResetDescription()
		return nil
	case testcase.FieldTestType:
		m.ResetTestType()
		return nil
	case testcase.FieldScore:
		m.ResetScore()
		return nil
	case testcase.FieldValid:
		m.ResetValid()
		return nil
	case testcase.FieldDuplicateOf:
		m.ResetDuplicateOf()
		return nil
	case testcase.FieldSimilarity:
		m.ResetSimilarity()
		return nil
	case testcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TestCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, testcase.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestCaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case testcase.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, testcase.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestCaseMutation) EdgeCleared(name string) bool {
	switch name {
	case testcase.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestCaseMutation) ClearEdge(name string) error {
	switch name {
	case testcase.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown TestCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestCaseMutation) ResetEdge(name string) error {
	switch name {
	case testcase.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown TestCase edge %s", name)
}
