// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
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

// ResumeUpdate is the builder for updating Resume entities.
type ResumeUpdate struct {
	config
	hooks    []Hook
	mutation *ResumeMutation
}

// Where appends a list predicates to the ResumeUpdate builder.
func (_u *ResumeUpdate) Where(ps ...predicate.Resume) *ResumeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ResumeUpdate) SetFilePath(v string) *ResumeUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableFilePath(v *string) *ResumeUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResumeUpdate) SetStatus(v string) *ResumeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableStatus(v *string) *ResumeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ResumeUpdate) SetRawText(v string) *ResumeUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableRawText(v *string) *ResumeUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ResumeUpdate) ClearRawText() *ResumeUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetStructuredData sets the "structured_data" field.
func (_u *ResumeUpdate) SetStructuredData(v map[string]json.RawMessage) *ResumeUpdate {
	_u.mutation.SetStructuredData(v)
	return _u
}

// ClearStructuredData clears the value of the "structured_data" field.
func (_u *ResumeUpdate) ClearStructuredData() *ResumeUpdate {
	_u.mutation.ClearStructuredData()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ResumeUpdate) SetProcessedAt(v time.Time) *ResumeUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableProcessedAt(v *time.Time) *ResumeUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ResumeUpdate) ClearProcessedAt() *ResumeUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// AddErrorIDs adds the "errors" edge to the ExtractionError entity by IDs.
func (_u *ResumeUpdate) AddErrorIDs(ids ...uuid.UUID) *ResumeUpdate {
	_u.mutation.AddErrorIDs(ids...)
	return _u
}

// AddErrors adds the "errors" edges to the ExtractionError entity.
func (_u *ResumeUpdate) AddErrors(v ...*ExtractionError) *ResumeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddErrorIDs(ids...)
}

// Mutation returns the ResumeMutation object of the builder.
func (_u *ResumeUpdate) Mutation() *ResumeMutation {
	return _u.mutation
}

// ClearErrors clears all "errors" edges to the ExtractionError entity.
func (_u *ResumeUpdate) ClearErrors() *ResumeUpdate {
	_u.mutation.ClearErrors()
	return _u
}

// RemoveErrorIDs removes the "errors" edge to ExtractionError entities by IDs.
func (_u *ResumeUpdate) RemoveErrorIDs(ids ...uuid.UUID) *ResumeUpdate {
	_u.mutation.RemoveErrorIDs(ids...)
	return _u
}

// RemoveErrors removes "errors" edges to ExtractionError entities.
func (_u *ResumeUpdate) RemoveErrors(v ...*ExtractionError) *ResumeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveErrorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResumeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResumeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResumeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResumeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResumeUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := resume.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Resume.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := resume.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Resume.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResumeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resume.Table, resume.Columns, sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(resume.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(resume.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(resume.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(resume.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredData(); ok {
		_spec.SetField(resume.FieldStructuredData, field.TypeJSON, value)
	}
	if _u.mutation.StructuredDataCleared() {
		_spec.ClearField(resume.FieldStructuredData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(resume.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(resume.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.ErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.ErrorsTable,
			Columns: []string{resume.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionerror.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedErrorsIDs(); len(nodes) > 0 && !_u.mutation.ErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.ErrorsTable,
			Columns: []string{resume.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionerror.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ErrorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.ErrorsTable,
			Columns: []string{resume.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionerror.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resume.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResumeUpdateOne is the builder for updating a single Resume entity.
type ResumeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResumeMutation
}

// SetFilePath sets the "file_path" field.
func (_u *ResumeUpdateOne) SetFilePath(v string) *ResumeUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableFilePath(v *string) *ResumeUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResumeUpdateOne) SetStatus(v string) *ResumeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableStatus(v *string) *ResumeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ResumeUpdateOne) SetRawText(v string) *ResumeUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableRawText(v *string) *ResumeUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ResumeUpdateOne) ClearRawText() *ResumeUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetStructuredData sets the "structured_data" field.
func (_u *ResumeUpdateOne) SetStructuredData(v map[string]json.RawMessage) *ResumeUpdateOne {
	_u.mutation.SetStructuredData(v)
	return _u
}

// ClearStructuredData clears the value of the "structured_data" field.
func (_u *ResumeUpdateOne) ClearStructuredData() *ResumeUpdateOne {
	_u.mutation.ClearStructuredData()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ResumeUpdateOne) SetProcessedAt(v time.Time) *ResumeUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableProcessedAt(v *time.Time) *ResumeUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ResumeUpdateOne) ClearProcessedAt() *ResumeUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// AddErrorIDs adds the "errors" edge to the ExtractionError entity by IDs.
func (_u *ResumeUpdateOne) AddErrorIDs(ids ...uuid.UUID) *ResumeUpdateOne {
	_u.mutation.AddErrorIDs(ids...)
	return _u
}

// AddErrors adds the "errors" edges to the ExtractionError entity.
func (_u *ResumeUpdateOne) AddErrors(v ...*ExtractionError) *ResumeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddErrorIDs(ids...)
}

// Mutation returns the ResumeMutation object of the builder.
func (_u *ResumeUpdateOne) Mutation() *ResumeMutation {
	return _u.mutation
}

// ClearErrors clears all "errors" edges to the ExtractionError entity.
func (_u *ResumeUpdateOne) ClearErrors() *ResumeUpdateOne {
	_u.mutation.ClearErrors()
	return _u
}

// RemoveErrorIDs removes the "errors" edge to ExtractionError entities by IDs.
func (_u *ResumeUpdateOne) RemoveErrorIDs(ids ...uuid.UUID) *ResumeUpdateOne {
	_u.mutation.RemoveErrorIDs(ids...)
	return _u
}

// RemoveErrors removes "errors" edges to ExtractionError entities.
func (_u *ResumeUpdateOne) RemoveErrors(v ...*ExtractionError) *ResumeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveErrorIDs(ids...)
}

// Where appends a list predicates to the ResumeUpdate builder.
func (_u *ResumeUpdateOne) Where(ps ...predicate.Resume) *ResumeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResumeUpdateOne) Select(field string, fields ...string) *ResumeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Resume entity.
func (_u *ResumeUpdateOne) Save(ctx context.Context) (*Resume, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResumeUpdateOne) SaveX(ctx context.Context) *Resume {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResumeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResumeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResumeUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := resume.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Resume.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := resume.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Resume.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResumeUpdateOne) sqlSave(ctx context.Context) (_node *Resume, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resume.Table, resume.Columns, sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Resume.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resume.FieldID)
		for _, f := range fields {
			if !resume.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resume.FieldID {
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
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(resume.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(resume.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(resume.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(resume.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredData(); ok {
		_spec.SetField(resume.FieldStructuredData, field.TypeJSON, value)
	}
	if _u.mutation.StructuredDataCleared() {
		_spec.ClearField(resume.FieldStructuredData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(resume.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(resume.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.ErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.ErrorsTable,
			Columns: []string{resume.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionerror.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedErrorsIDs(); len(nodes) > 0 && !_u.mutation.ErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.ErrorsTable,
			Columns: []string{resume.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionerror.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ErrorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.ErrorsTable,
			Columns: []string{resume.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionerror.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Resume{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resume.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
