// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hirewise/resume-ingest/gen/ent/extractionerror"
	"github.com/hirewise/resume-ingest/gen/ent/predicate"
	"github.com/hirewise/resume-ingest/gen/ent/resume"
)

// ExtractionErrorUpdate is the builder for updating ExtractionError entities.
type ExtractionErrorUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionErrorMutation
}

// Where appends a list predicates to the ExtractionErrorUpdate builder.
func (_u *ExtractionErrorUpdate) Where(ps ...predicate.ExtractionError) *ExtractionErrorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResumeID sets the "resume_id" field.
func (_u *ExtractionErrorUpdate) SetResumeID(v uuid.UUID) *ExtractionErrorUpdate {
	_u.mutation.SetResumeID(v)
	return _u
}

// SetNillableResumeID sets the "resume_id" field if the given value is not nil.
func (_u *ExtractionErrorUpdate) SetNillableResumeID(v *uuid.UUID) *ExtractionErrorUpdate {
	if v != nil {
		_u.SetResumeID(*v)
	}
	return _u
}

// SetFieldKind sets the "field_kind" field.
func (_u *ExtractionErrorUpdate) SetFieldKind(v string) *ExtractionErrorUpdate {
	_u.mutation.SetFieldKind(v)
	return _u
}

// SetNillableFieldKind sets the "field_kind" field if the given value is not nil.
func (_u *ExtractionErrorUpdate) SetNillableFieldKind(v *string) *ExtractionErrorUpdate {
	if v != nil {
		_u.SetFieldKind(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ExtractionErrorUpdate) SetMessage(v string) *ExtractionErrorUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ExtractionErrorUpdate) SetNillableMessage(v *string) *ExtractionErrorUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ExtractionErrorUpdate) SetSeverity(v string) *ExtractionErrorUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ExtractionErrorUpdate) SetNillableSeverity(v *string) *ExtractionErrorUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *ExtractionErrorUpdate) SetResolved(v bool) *ExtractionErrorUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *ExtractionErrorUpdate) SetNillableResolved(v *bool) *ExtractionErrorUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ExtractionErrorUpdate) SetResolvedAt(v time.Time) *ExtractionErrorUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ExtractionErrorUpdate) SetNillableResolvedAt(v *time.Time) *ExtractionErrorUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ExtractionErrorUpdate) ClearResolvedAt() *ExtractionErrorUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResume sets the "resume" edge to the Resume entity.
func (_u *ExtractionErrorUpdate) SetResume(v *Resume) *ExtractionErrorUpdate {
	return _u.SetResumeID(v.ID)
}

// Mutation returns the ExtractionErrorMutation object of the builder.
func (_u *ExtractionErrorUpdate) Mutation() *ExtractionErrorMutation {
	return _u.mutation
}

// ClearResume clears the "resume" edge to the Resume entity.
func (_u *ExtractionErrorUpdate) ClearResume() *ExtractionErrorUpdate {
	_u.mutation.ClearResume()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionErrorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionErrorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionErrorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionErrorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionErrorUpdate) check() error {
	if v, ok := _u.mutation.FieldKind(); ok {
		if err := extractionerror.FieldKindValidator(v); err != nil {
			return &ValidationError{Name: "field_kind", err: fmt.Errorf(`ent: validator failed for field "ExtractionError.field_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := extractionerror.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "ExtractionError.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := extractionerror.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ExtractionError.severity": %w`, err)}
		}
	}
	if _u.mutation.ResumeCleared() && len(_u.mutation.ResumeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionError.resume"`)
	}
	return nil
}

func (_u *ExtractionErrorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionerror.Table, extractionerror.Columns, sqlgraph.NewFieldSpec(extractionerror.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldKind(); ok {
		_spec.SetField(extractionerror.FieldFieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(extractionerror.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(extractionerror.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(extractionerror.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(extractionerror.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(extractionerror.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.ResumeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionerror.ResumeTable,
			Columns: []string{extractionerror.ResumeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResumeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionerror.ResumeTable,
			Columns: []string{extractionerror.ResumeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionerror.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionErrorUpdateOne is the builder for updating a single ExtractionError entity.
type ExtractionErrorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionErrorMutation
}

// SetResumeID sets the "resume_id" field.
func (_u *ExtractionErrorUpdateOne) SetResumeID(v uuid.UUID) *ExtractionErrorUpdateOne {
	_u.mutation.SetResumeID(v)
	return _u
}

// SetNillableResumeID sets the "resume_id" field if the given value is not nil.
func (_u *ExtractionErrorUpdateOne) SetNillableResumeID(v *uuid.UUID) *ExtractionErrorUpdateOne {
	if v != nil {
		_u.SetResumeID(*v)
	}
	return _u
}

// SetFieldKind sets the "field_kind" field.
func (_u *ExtractionErrorUpdateOne) SetFieldKind(v string) *ExtractionErrorUpdateOne {
	_u.mutation.SetFieldKind(v)
	return _u
}

// SetNillableFieldKind sets the "field_kind" field if the given value is not nil.
func (_u *ExtractionErrorUpdateOne) SetNillableFieldKind(v *string) *ExtractionErrorUpdateOne {
	if v != nil {
		_u.SetFieldKind(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ExtractionErrorUpdateOne) SetMessage(v string) *ExtractionErrorUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ExtractionErrorUpdateOne) SetNillableMessage(v *string) *ExtractionErrorUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ExtractionErrorUpdateOne) SetSeverity(v string) *ExtractionErrorUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ExtractionErrorUpdateOne) SetNillableSeverity(v *string) *ExtractionErrorUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *ExtractionErrorUpdateOne) SetResolved(v bool) *ExtractionErrorUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *ExtractionErrorUpdateOne) SetNillableResolved(v *bool) *ExtractionErrorUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ExtractionErrorUpdateOne) SetResolvedAt(v time.Time) *ExtractionErrorUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ExtractionErrorUpdateOne) SetNillableResolvedAt(v *time.Time) *ExtractionErrorUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ExtractionErrorUpdateOne) ClearResolvedAt() *ExtractionErrorUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResume sets the "resume" edge to the Resume entity.
func (_u *ExtractionErrorUpdateOne) SetResume(v *Resume) *ExtractionErrorUpdateOne {
	return _u.SetResumeID(v.ID)
}

// Mutation returns the ExtractionErrorMutation object of the builder.
func (_u *ExtractionErrorUpdateOne) Mutation() *ExtractionErrorMutation {
	return _u.mutation
}

// ClearResume clears the "resume" edge to the Resume entity.
func (_u *ExtractionErrorUpdateOne) ClearResume() *ExtractionErrorUpdateOne {
	_u.mutation.ClearResume()
	return _u
}

// Where appends a list predicates to the ExtractionErrorUpdate builder.
func (_u *ExtractionErrorUpdateOne) Where(ps ...predicate.ExtractionError) *ExtractionErrorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionErrorUpdateOne) Select(field string, fields ...string) *ExtractionErrorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionError entity.
func (_u *ExtractionErrorUpdateOne) Save(ctx context.Context) (*ExtractionError, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionErrorUpdateOne) SaveX(ctx context.Context) *ExtractionError {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionErrorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionErrorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionErrorUpdateOne) check() error {
	if v, ok := _u.mutation.FieldKind(); ok {
		if err := extractionerror.FieldKindValidator(v); err != nil {
			return &ValidationError{Name: "field_kind", err: fmt.Errorf(`ent: validator failed for field "ExtractionError.field_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := extractionerror.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "ExtractionError.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := extractionerror.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ExtractionError.severity": %w`, err)}
		}
	}
	if _u.mutation.ResumeCleared() && len(_u.mutation.ResumeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionError.resume"`)
	}
	return nil
}

func (_u *ExtractionErrorUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionError, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionerror.Table, extractionerror.Columns, sqlgraph.NewFieldSpec(extractionerror.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionError.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionerror.FieldID)
		for _, f := range fields {
			if !extractionerror.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionerror.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldKind(); ok {
		_spec.SetField(extractionerror.FieldFieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(extractionerror.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(extractionerror.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(extractionerror.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(extractionerror.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(extractionerror.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.ResumeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionerror.ResumeTable,
			Columns: []string{extractionerror.ResumeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResumeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionerror.ResumeTable,
			Columns: []string{extractionerror.ResumeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionError{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionerror.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
