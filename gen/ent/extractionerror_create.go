// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hirewise/resume-ingest/gen/ent/extractionerror"
	"github.com/hirewise/resume-ingest/gen/ent/resume"
)

// ExtractionErrorCreate is the builder for creating a ExtractionError entity.
type ExtractionErrorCreate struct {
	config
	mutation *ExtractionErrorMutation
	hooks    []Hook
}

// SetResumeID sets the "resume_id" field.
func (_c *ExtractionErrorCreate) SetResumeID(v uuid.UUID) *ExtractionErrorCreate {
	_c.mutation.SetResumeID(v)
	return _c
}

// SetFieldKind sets the "field_kind" field.
func (_c *ExtractionErrorCreate) SetFieldKind(v string) *ExtractionErrorCreate {
	_c.mutation.SetFieldKind(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ExtractionErrorCreate) SetMessage(v string) *ExtractionErrorCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ExtractionErrorCreate) SetSeverity(v string) *ExtractionErrorCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *ExtractionErrorCreate) SetNillableSeverity(v *string) *ExtractionErrorCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *ExtractionErrorCreate) SetResolved(v bool) *ExtractionErrorCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *ExtractionErrorCreate) SetNillableResolved(v *bool) *ExtractionErrorCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ExtractionErrorCreate) SetResolvedAt(v time.Time) *ExtractionErrorCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ExtractionErrorCreate) SetNillableResolvedAt(v *time.Time) *ExtractionErrorCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *ExtractionErrorCreate) SetOccurredAt(v time.Time) *ExtractionErrorCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *ExtractionErrorCreate) SetNillableOccurredAt(v *time.Time) *ExtractionErrorCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionErrorCreate) SetID(v uuid.UUID) *ExtractionErrorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionErrorCreate) SetNillableID(v *uuid.UUID) *ExtractionErrorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetResume sets the "resume" edge to the Resume entity.
func (_c *ExtractionErrorCreate) SetResume(v *Resume) *ExtractionErrorCreate {
	return _c.SetResumeID(v.ID)
}

// Mutation returns the ExtractionErrorMutation object of the builder.
func (_c *ExtractionErrorCreate) Mutation() *ExtractionErrorMutation {
	return _c.mutation
}

// Save creates the ExtractionError in the database.
func (_c *ExtractionErrorCreate) Save(ctx context.Context) (*ExtractionError, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionErrorCreate) SaveX(ctx context.Context) *ExtractionError {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionErrorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionErrorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionErrorCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := extractionerror.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		v := extractionerror.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := extractionerror.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionerror.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionErrorCreate) check() error {
	if _, ok := _c.mutation.ResumeID(); !ok {
		return &ValidationError{Name: "resume_id", err: errors.New(`ent: missing required field "ExtractionError.resume_id"`)}
	}
	if _, ok := _c.mutation.FieldKind(); !ok {
		return &ValidationError{Name: "field_kind", err: errors.New(`ent: missing required field "ExtractionError.field_kind"`)}
	}
	if v, ok := _c.mutation.FieldKind(); ok {
		if err := extractionerror.FieldKindValidator(v); err != nil {
			return &ValidationError{Name: "field_kind", err: fmt.Errorf(`ent: validator failed for field "ExtractionError.field_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ExtractionError.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := extractionerror.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "ExtractionError.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ExtractionError.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := extractionerror.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ExtractionError.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "ExtractionError.resolved"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "ExtractionError.occurred_at"`)}
	}
	if len(_c.mutation.ResumeIDs()) == 0 {
		return &ValidationError{Name: "resume", err: errors.New(`ent: missing required edge "ExtractionError.resume"`)}
	}
	return nil
}

func (_c *ExtractionErrorCreate) sqlSave(ctx context.Context) (*ExtractionError, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionErrorCreate) createSpec() (*ExtractionError, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionError{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionerror.Table, sqlgraph.NewFieldSpec(extractionerror.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FieldKind(); ok {
		_spec.SetField(extractionerror.FieldFieldKind, field.TypeString, value)
		_node.FieldKind = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(extractionerror.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(extractionerror.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(extractionerror.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(extractionerror.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(extractionerror.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if nodes := _c.mutation.ResumeIDs(); len(nodes) > 0 {
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
		_node.ResumeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionErrorCreateBulk is the builder for creating many ExtractionError entities in bulk.
type ExtractionErrorCreateBulk struct {
	config
	err      error
	builders []*ExtractionErrorCreate
}

// Save creates the ExtractionError entities in the database.
func (_c *ExtractionErrorCreateBulk) Save(ctx context.Context) ([]*ExtractionError, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionError, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionErrorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionErrorCreateBulk) SaveX(ctx context.Context) []*ExtractionError {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionErrorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionErrorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
