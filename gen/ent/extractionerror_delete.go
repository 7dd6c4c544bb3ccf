// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hirewise/resume-ingest/gen/ent/extractionerror"
	"github.com/hirewise/resume-ingest/gen/ent/predicate"
)

// ExtractionErrorDelete is the builder for deleting a ExtractionError entity.
type ExtractionErrorDelete struct {
	config
	hooks    []Hook
	mutation *ExtractionErrorMutation
}

// Where appends a list predicates to the ExtractionErrorDelete builder.
func (_d *ExtractionErrorDelete) Where(ps ...predicate.ExtractionError) *ExtractionErrorDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractionErrorDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionErrorDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractionErrorDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractionerror.Table, sqlgraph.NewFieldSpec(extractionerror.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractionErrorDeleteOne is the builder for deleting a single ExtractionError entity.
type ExtractionErrorDeleteOne struct {
	_d *ExtractionErrorDelete
}

// Where appends a list predicates to the ExtractionErrorDelete builder.
func (_d *ExtractionErrorDeleteOne) Where(ps ...predicate.ExtractionError) *ExtractionErrorDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractionErrorDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractionerror.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionErrorDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
