// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hirewise/resume-ingest/gen/ent/extractionerror"
	"github.com/hirewise/resume-ingest/gen/ent/resume"
)

// ResumeCreate is the builder for creating a Resume entity.
type ResumeCreate struct {
	config
	mutation *ResumeMutation
	hooks    []Hook
}

// SetFileHash sets the "file_hash" field.
func (_c *ResumeCreate) SetFileHash(v string) *ResumeCreate {
	_c.mutation.SetFileHash(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ResumeCreate) SetFileName(v string) *ResumeCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *ResumeCreate) SetFilePath(v string) *ResumeCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *ResumeCreate) SetFileSize(v int) *ResumeCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *ResumeCreate) SetFileType(v string) *ResumeCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResumeCreate) SetStatus(v string) *ResumeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableStatus(v *string) *ResumeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ResumeCreate) SetRawText(v string) *ResumeCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableRawText(v *string) *ResumeCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetStructuredData sets the "structured_data" field.
func (_c *ResumeCreate) SetStructuredData(v map[string]json.RawMessage) *ResumeCreate {
	_c.mutation.SetStructuredData(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *ResumeCreate) SetUploadedAt(v time.Time) *ResumeCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableUploadedAt(v *time.Time) *ResumeCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ResumeCreate) SetProcessedAt(v time.Time) *ResumeCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableProcessedAt(v *time.Time) *ResumeCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResumeCreate) SetID(v uuid.UUID) *ResumeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableID(v *uuid.UUID) *ResumeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddErrorIDs adds the "errors" edge to the ExtractionError entity by IDs.
func (_c *ResumeCreate) AddErrorIDs(ids ...uuid.UUID) *ResumeCreate {
	_c.mutation.AddErrorIDs(ids...)
	return _c
}

// AddErrors adds the "errors" edges to the ExtractionError entity.
func (_c *ResumeCreate) AddErrors(v ...*ExtractionError) *ResumeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddErrorIDs(ids...)
}

// Mutation returns the ResumeMutation object of the builder.
func (_c *ResumeCreate) Mutation() *ResumeMutation {
	return _c.mutation
}

// Save creates the Resume in the database.
func (_c *ResumeCreate) Save(ctx context.Context) (*Resume, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResumeCreate) SaveX(ctx context.Context) *Resume {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResumeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResumeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResumeCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := resume.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := resume.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := resume.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResumeCreate) check() error {
	if _, ok := _c.mutation.FileHash(); !ok {
		return &ValidationError{Name: "file_hash", err: errors.New(`ent: missing required field "Resume.file_hash"`)}
	}
	if v, ok := _c.mutation.FileHash(); ok {
		if err := resume.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "Resume.file_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "Resume.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := resume.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Resume.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "Resume.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := resume.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Resume.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Resume.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := resume.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Resume.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "Resume.file_type"`)}
	}
	if v, ok := _c.mutation.FileType(); ok {
		if err := resume.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Resume.file_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Resume.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := resume.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Resume.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Resume.uploaded_at"`)}
	}
	return nil
}

func (_c *ResumeCreate) sqlSave(ctx context.Context) (*Resume, error) {
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

func (_c *ResumeCreate) createSpec() (*Resume, *sqlgraph.CreateSpec) {
	var (
		_node = &Resume{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resume.Table, sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileHash(); ok {
		_spec.SetField(resume.FieldFileHash, field.TypeString, value)
		_node.FileHash = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(resume.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(resume.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(resume.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(resume.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(resume.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(resume.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.StructuredData(); ok {
		_spec.SetField(resume.FieldStructuredData, field.TypeJSON, value)
		_node.StructuredData = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(resume.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(resume.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.ErrorsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResumeCreateBulk is the builder for creating many Resume entities in bulk.
type ResumeCreateBulk struct {
	config
	err      error
	builders []*ResumeCreate
}

// Save creates the Resume entities in the database.
func (_c *ResumeCreateBulk) Save(ctx context.Context) ([]*Resume, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Resume, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResumeMutation)
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
func (_c *ResumeCreateBulk) SaveX(ctx context.Context) []*Resume {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResumeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResumeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
