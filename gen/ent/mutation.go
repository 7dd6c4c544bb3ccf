// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hirewise/resume-ingest/gen/ent/extractionerror"
	"github.com/hirewise/resume-ingest/gen/ent/predicate"
	"github.com/hirewise/resume-ingest/gen/ent/resume"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractionError = "ExtractionError"
	TypeResume          = "Resume"
)

// ExtractionErrorMutation represents an operation that mutates the ExtractionError nodes in the graph.
type ExtractionErrorMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	field_kind    *string
	message       *string
	severity      *string
	resolved      *bool
	resolved_at   *time.Time
	occurred_at   *time.Time
	clearedFields map[string]struct{}
	resume        *uuid.UUID
	clearedresume bool
	done          bool
	oldValue      func(context.Context) (*ExtractionError, error)
	predicates    []predicate.ExtractionError
}

var _ ent.Mutation = (*ExtractionErrorMutation)(nil)

// extractionerrorOption allows management of the mutation configuration using functional options.
type extractionerrorOption func(*ExtractionErrorMutation)

// newExtractionErrorMutation creates new mutation for the ExtractionError entity.
func newExtractionErrorMutation(c config, op Op, opts ...extractionerrorOption) *ExtractionErrorMutation {
	m := &ExtractionErrorMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionError,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionErrorID sets the ID field of the mutation.
func withExtractionErrorID(id uuid.UUID) extractionerrorOption {
	return func(m *ExtractionErrorMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionError
		)
		m.oldValue = func(ctx context.Context) (*ExtractionError, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionError.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionError sets the old ExtractionError of the mutation.
func withExtractionError(node *ExtractionError) extractionerrorOption {
	return func(m *ExtractionErrorMutation) {
		m.oldValue = func(context.Context) (*ExtractionError, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionErrorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionErrorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionError entities.
func (m *ExtractionErrorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionErrorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionErrorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionError.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResumeID sets the "resume_id" field.
func (m *ExtractionErrorMutation) SetResumeID(u uuid.UUID) {
	m.resume = &u
}

// ResumeID returns the value of the "resume_id" field in the mutation.
func (m *ExtractionErrorMutation) ResumeID() (r uuid.UUID, exists bool) {
	v := m.resume
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeID returns the old "resume_id" field's value of the ExtractionError entity.
// If the ExtractionError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionErrorMutation) OldResumeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeID: %w", err)
	}
	return oldValue.ResumeID, nil
}

// ResetResumeID resets all changes to the "resume_id" field.
func (m *ExtractionErrorMutation) ResetResumeID() {
	m.resume = nil
}

// SetFieldKind sets the "field_kind" field.
func (m *ExtractionErrorMutation) SetFieldKind(s string) {
	m.field_kind = &s
}

// FieldKind returns the value of the "field_kind" field in the mutation.
func (m *ExtractionErrorMutation) FieldKind() (r string, exists bool) {
	v := m.field_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldKind returns the old "field_kind" field's value of the ExtractionError entity.
// If the ExtractionError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionErrorMutation) OldFieldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldKind: %w", err)
	}
	return oldValue.FieldKind, nil
}

// ResetFieldKind resets all changes to the "field_kind" field.
func (m *ExtractionErrorMutation) ResetFieldKind() {
	m.field_kind = nil
}

// SetMessage sets the "message" field.
func (m *ExtractionErrorMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ExtractionErrorMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ExtractionError entity.
// If the ExtractionError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionErrorMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ExtractionErrorMutation) ResetMessage() {
	m.message = nil
}

// SetSeverity sets the "severity" field.
func (m *ExtractionErrorMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ExtractionErrorMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ExtractionError entity.
// If the ExtractionError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionErrorMutation) OldSeverity(ctx context.Context) (v string, err error) {
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
func (m *ExtractionErrorMutation) ResetSeverity() {
	m.severity = nil
}

// SetResolved sets the "resolved" field.
func (m *ExtractionErrorMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *ExtractionErrorMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the ExtractionError entity.
// If the ExtractionError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionErrorMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *ExtractionErrorMutation) ResetResolved() {
	m.resolved = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ExtractionErrorMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ExtractionErrorMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the ExtractionError entity.
// If the ExtractionError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionErrorMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ExtractionErrorMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[extractionerror.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ExtractionErrorMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[extractionerror.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ExtractionErrorMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, extractionerror.FieldResolvedAt)
}

// SetOccurredAt sets the "occurred_at" field.
func (m *ExtractionErrorMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *ExtractionErrorMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the ExtractionError entity.
// If the ExtractionError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionErrorMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *ExtractionErrorMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// ClearResume clears the "resume" edge to the Resume entity.
func (m *ExtractionErrorMutation) ClearResume() {
	m.clearedresume = true
	m.clearedFields[extractionerror.FieldResumeID] = struct{}{}
}

// ResumeCleared reports if the "resume" edge to the Resume entity was cleared.
func (m *ExtractionErrorMutation) ResumeCleared() bool {
	return m.clearedresume
}

// ResumeIDs returns the "resume" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResumeID instead. It exists only for internal usage by the builders.
func (m *ExtractionErrorMutation) ResumeIDs() (ids []uuid.UUID) {
	if id := m.resume; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResume resets all changes to the "resume" edge.
func (m *ExtractionErrorMutation) ResetResume() {
	m.resume = nil
	m.clearedresume = false
}

// Where appends a list predicates to the ExtractionErrorMutation builder.
func (m *ExtractionErrorMutation) Where(ps ...predicate.ExtractionError) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionErrorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionErrorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionError, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionErrorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionErrorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionError).
func (m *ExtractionErrorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionErrorMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.resume != nil {
		fields = append(fields, extractionerror.FieldResumeID)
	}
	if m.field_kind != nil {
		fields = append(fields, extractionerror.FieldFieldKind)
	}
	if m.message != nil {
		fields = append(fields, extractionerror.FieldMessage)
	}
	if m.severity != nil {
		fields = append(fields, extractionerror.FieldSeverity)
	}
	if m.resolved != nil {
		fields = append(fields, extractionerror.FieldResolved)
	}
	if m.resolved_at != nil {
		fields = append(fields, extractionerror.FieldResolvedAt)
	}
	if m.occurred_at != nil {
		fields = append(fields, extractionerror.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionErrorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionerror.FieldResumeID:
		return m.ResumeID()
	case extractionerror.FieldFieldKind:
		return m.FieldKind()
	case extractionerror.FieldMessage:
		return m.Message()
	case extractionerror.FieldSeverity:
		return m.Severity()
	case extractionerror.FieldResolved:
		return m.Resolved()
	case extractionerror.FieldResolvedAt:
		return m.ResolvedAt()
	case extractionerror.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionErrorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionerror.FieldResumeID:
		return m.OldResumeID(ctx)
	case extractionerror.FieldFieldKind:
		return m.OldFieldKind(ctx)
	case extractionerror.FieldMessage:
		return m.OldMessage(ctx)
	case extractionerror.FieldSeverity:
		return m.OldSeverity(ctx)
	case extractionerror.FieldResolved:
		return m.OldResolved(ctx)
	case extractionerror.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case extractionerror.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionError field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionErrorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionerror.FieldResumeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeID(v)
		return nil
	case extractionerror.FieldFieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldKind(v)
		return nil
	case extractionerror.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case extractionerror.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case extractionerror.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case extractionerror.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case extractionerror.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionError field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionErrorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionErrorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionErrorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionError numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionErrorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionerror.FieldResolvedAt) {
		fields = append(fields, extractionerror.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionErrorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionErrorMutation) ClearField(name string) error {
	switch name {
	case extractionerror.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionError nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionErrorMutation) ResetField(name string) error {
	switch name {
	case extractionerror.FieldResumeID:
		m.ResetResumeID()
		return nil
	case extractionerror.FieldFieldKind:
		m.ResetFieldKind()
		return nil
	case extractionerror.FieldMessage:
		m.ResetMessage()
		return nil
	case extractionerror.FieldSeverity:
		m.ResetSeverity()
		return nil
	case extractionerror.FieldResolved:
		m.ResetResolved()
		return nil
	case extractionerror.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case extractionerror.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionError field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionErrorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.resume != nil {
		edges = append(edges, extractionerror.EdgeResume)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionErrorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionerror.EdgeResume:
		if id := m.resume; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionErrorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionErrorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionErrorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresume {
		edges = append(edges, extractionerror.EdgeResume)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionErrorMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionerror.EdgeResume:
		return m.clearedresume
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionErrorMutation) ClearEdge(name string) error {
	switch name {
	case extractionerror.EdgeResume:
		m.ClearResume()
		return nil
	}
	return fmt.Errorf("unknown ExtractionError unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionErrorMutation) ResetEdge(name string) error {
	switch name {
	case extractionerror.EdgeResume:
		m.ResetResume()
		return nil
	}
	return fmt.Errorf("unknown ExtractionError edge %s", name)
}

// ResumeMutation represents an operation that mutates the Resume nodes in the graph.
type ResumeMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	file_hash       *string
	file_name       *string
	file_path       *string
	file_size       *int
	addfile_size    *int
	file_type       *string
	status          *string
	raw_text        *string
	structured_data *map[string]json.RawMessage
	uploaded_at     *time.Time
	processed_at    *time.Time
	clearedFields   map[string]struct{}
	errors          map[uuid.UUID]struct{}
	removederrors   map[uuid.UUID]struct{}
	clearederrors   bool
	done            bool
	oldValue        func(context.Context) (*Resume, error)
	predicates      []predicate.Resume
}

var _ ent.Mutation = (*ResumeMutation)(nil)

// resumeOption allows management of the mutation configuration using functional options.
type resumeOption func(*ResumeMutation)

// newResumeMutation creates new mutation for the Resume entity.
func newResumeMutation(c config, op Op, opts ...resumeOption) *ResumeMutation {
	m := &ResumeMutation{
		config:        c,
		op:            op,
		typ:           TypeResume,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResumeID sets the ID field of the mutation.
func withResumeID(id uuid.UUID) resumeOption {
	return func(m *ResumeMutation) {
		var (
			err   error
			once  sync.Once
			value *Resume
		)
		m.oldValue = func(ctx context.Context) (*Resume, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Resume.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResume sets the old Resume of the mutation.
func withResume(node *Resume) resumeOption {
	return func(m *ResumeMutation) {
		m.oldValue = func(context.Context) (*Resume, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResumeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResumeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Resume entities.
func (m *ResumeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResumeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResumeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Resume.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileHash sets the "file_hash" field.
func (m *ResumeMutation) SetFileHash(s string) {
	m.file_hash = &s
}

// FileHash returns the value of the "file_hash" field in the mutation.
func (m *ResumeMutation) FileHash() (r string, exists bool) {
	v := m.file_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldFileHash returns the old "file_hash" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldFileHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileHash: %w", err)
	}
	return oldValue.FileHash, nil
}

// ResetFileHash resets all changes to the "file_hash" field.
func (m *ResumeMutation) ResetFileHash() {
	m.file_hash = nil
}

// SetFileName sets the "file_name" field.
func (m *ResumeMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ResumeMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ResumeMutation) ResetFileName() {
	m.file_name = nil
}

// SetFilePath sets the "file_path" field.
func (m *ResumeMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *ResumeMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *ResumeMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileSize sets the "file_size" field.
func (m *ResumeMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ResumeMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ResumeMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ResumeMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ResumeMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetFileType sets the "file_type" field.
func (m *ResumeMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *ResumeMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ResetFileType resets all changes to the "file_type" field.
func (m *ResumeMutation) ResetFileType() {
	m.file_type = nil
}

// SetStatus sets the "status" field.
func (m *ResumeMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ResumeMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ResumeMutation) ResetStatus() {
	m.status = nil
}

// SetRawText sets the "raw_text" field.
func (m *ResumeMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ResumeMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ResumeMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[resume.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ResumeMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[resume.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ResumeMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, resume.FieldRawText)
}

// SetStructuredData sets the "structured_data" field.
func (m *ResumeMutation) SetStructuredData(mm map[string]json.RawMessage) {
	m.structured_data = &mm
}

// StructuredData returns the value of the "structured_data" field in the mutation.
func (m *ResumeMutation) StructuredData() (r map[string]json.RawMessage, exists bool) {
	v := m.structured_data
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredData returns the old "structured_data" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldStructuredData(ctx context.Context) (v map[string]json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredData: %w", err)
	}
	return oldValue.StructuredData, nil
}

// ClearStructuredData clears the value of the "structured_data" field.
func (m *ResumeMutation) ClearStructuredData() {
	m.structured_data = nil
	m.clearedFields[resume.FieldStructuredData] = struct{}{}
}

// StructuredDataCleared returns if the "structured_data" field was cleared in this mutation.
func (m *ResumeMutation) StructuredDataCleared() bool {
	_, ok := m.clearedFields[resume.FieldStructuredData]
	return ok
}

// ResetStructuredData resets all changes to the "structured_data" field.
func (m *ResumeMutation) ResetStructuredData() {
	m.structured_data = nil
	delete(m.clearedFields, resume.FieldStructuredData)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ResumeMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ResumeMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ResumeMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *ResumeMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ResumeMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ResumeMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[resume.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ResumeMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[resume.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ResumeMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, resume.FieldProcessedAt)
}

// AddErrorIDs adds the "errors" edge to the ExtractionError entity by ids.
func (m *ResumeMutation) AddErrorIDs(ids ...uuid.UUID) {
	if m.errors == nil {
		m.errors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.errors[ids[i]] = struct{}{}
	}
}

// ClearErrors clears the "errors" edge to the ExtractionError entity.
func (m *ResumeMutation) ClearErrors() {
	m.clearederrors = true
}

// ErrorsCleared reports if the "errors" edge to the ExtractionError entity was cleared.
func (m *ResumeMutation) ErrorsCleared() bool {
	return m.clearederrors
}

// RemoveErrorIDs removes the "errors" edge to the ExtractionError entity by IDs.
func (m *ResumeMutation) RemoveErrorIDs(ids ...uuid.UUID) {
	if m.removederrors == nil {
		m.removederrors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.errors, ids[i])
		m.removederrors[ids[i]] = struct{}{}
	}
}

// RemovedErrors returns the removed IDs of the "errors" edge to the ExtractionError entity.
func (m *ResumeMutation) RemovedErrorsIDs() (ids []uuid.UUID) {
	for id := range m.removederrors {
		ids = append(ids, id)
	}
	return
}

// ErrorsIDs returns the "errors" edge IDs in the mutation.
func (m *ResumeMutation) ErrorsIDs() (ids []uuid.UUID) {
	for id := range m.errors {
		ids = append(ids, id)
	}
	return
}

// ResetErrors resets all changes to the "errors" edge.
func (m *ResumeMutation) ResetErrors() {
	m.errors = nil
	m.clearederrors = false
	m.removederrors = nil
}

// Where appends a list predicates to the ResumeMutation builder.
func (m *ResumeMutation) Where(ps ...predicate.Resume) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResumeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResumeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Resume, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResumeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResumeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Resume).
func (m *ResumeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResumeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.file_hash != nil {
		fields = append(fields, resume.FieldFileHash)
	}
	if m.file_name != nil {
		fields = append(fields, resume.FieldFileName)
	}
	if m.file_path != nil {
		fields = append(fields, resume.FieldFilePath)
	}
	if m.file_size != nil {
		fields = append(fields, resume.FieldFileSize)
	}
	if m.file_type != nil {
		fields = append(fields, resume.FieldFileType)
	}
	if m.status != nil {
		fields = append(fields, resume.FieldStatus)
	}
	if m.raw_text != nil {
		fields = append(fields, resume.FieldRawText)
	}
	if m.structured_data != nil {
		fields = append(fields, resume.FieldStructuredData)
	}
	if m.uploaded_at != nil {
		fields = append(fields, resume.FieldUploadedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, resume.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResumeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resume.FieldFileHash:
		return m.FileHash()
	case resume.FieldFileName:
		return m.FileName()
	case resume.FieldFilePath:
		return m.FilePath()
	case resume.FieldFileSize:
		return m.FileSize()
	case resume.FieldFileType:
		return m.FileType()
	case resume.FieldStatus:
		return m.Status()
	case resume.FieldRawText:
		return m.RawText()
	case resume.FieldStructuredData:
		return m.StructuredData()
	case resume.FieldUploadedAt:
		return m.UploadedAt()
	case resume.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResumeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resume.FieldFileHash:
		return m.OldFileHash(ctx)
	case resume.FieldFileName:
		return m.OldFileName(ctx)
	case resume.FieldFilePath:
		return m.OldFilePath(ctx)
	case resume.FieldFileSize:
		return m.OldFileSize(ctx)
	case resume.FieldFileType:
		return m.OldFileType(ctx)
	case resume.FieldStatus:
		return m.OldStatus(ctx)
	case resume.FieldRawText:
		return m.OldRawText(ctx)
	case resume.FieldStructuredData:
		return m.OldStructuredData(ctx)
	case resume.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case resume.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Resume field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResumeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resume.FieldFileHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileHash(v)
		return nil
	case resume.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case resume.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case resume.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case resume.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case resume.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case resume.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case resume.FieldStructuredData:
		v, ok := value.(map[string]json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredData(v)
		return nil
	case resume.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case resume.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Resume field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResumeMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, resume.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResumeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case resume.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResumeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case resume.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Resume numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResumeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resume.FieldRawText) {
		fields = append(fields, resume.FieldRawText)
	}
	if m.FieldCleared(resume.FieldStructuredData) {
		fields = append(fields, resume.FieldStructuredData)
	}
	if m.FieldCleared(resume.FieldProcessedAt) {
		fields = append(fields, resume.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResumeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResumeMutation) ClearField(name string) error {
	switch name {
	case resume.FieldRawText:
		m.ClearRawText()
		return nil
	case resume.FieldStructuredData:
		m.ClearStructuredData()
		return nil
	case resume.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Resume nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResumeMutation) ResetField(name string) error {
	switch name {
	case resume.FieldFileHash:
		m.ResetFileHash()
		return nil
	case resume.FieldFileName:
		m.ResetFileName()
		return nil
	case resume.FieldFilePath:
		m.ResetFilePath()
		return nil
	case resume.FieldFileSize:
		m.ResetFileSize()
		return nil
	case resume.FieldFileType:
		m.ResetFileType()
		return nil
	case resume.FieldStatus:
		m.ResetStatus()
		return nil
	case resume.FieldRawText:
		m.ResetRawText()
		return nil
	case resume.FieldStructuredData:
		m.ResetStructuredData()
		return nil
	case resume.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case resume.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Resume field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResumeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.errors != nil {
		edges = append(edges, resume.EdgeErrors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResumeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case resume.EdgeErrors:
		ids := make([]ent.Value, 0, len(m.errors))
		for id := range m.errors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResumeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removederrors != nil {
		edges = append(edges, resume.EdgeErrors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResumeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case resume.EdgeErrors:
		ids := make([]ent.Value, 0, len(m.removederrors))
		for id := range m.removederrors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResumeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearederrors {
		edges = append(edges, resume.EdgeErrors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResumeMutation) EdgeCleared(name string) bool {
	switch name {
	case resume.EdgeErrors:
		return m.clearederrors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResumeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Resume unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResumeMutation) ResetEdge(name string) error {
	switch name {
	case resume.EdgeErrors:
		m.ResetErrors()
		return nil
	}
	return fmt.Errorf("unknown Resume edge %s", name)
}
