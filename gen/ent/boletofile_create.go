// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brpayflow/boleto-tracker/gen/ent/boleto"
	"github.com/brpayflow/boleto-tracker/gen/ent/boletofile"
	"github.com/brpayflow/boleto-tracker/gen/ent/company"
	"github.com/brpayflow/boleto-tracker/gen/ent/extractjob"
	"github.com/google/uuid"
)

// BoletoFileCreate is the builder for creating a BoletoFile entity.
type BoletoFileCreate struct {
	config
	mutation *BoletoFileMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *BoletoFileCreate) SetCompanyID(v uuid.UUID) *BoletoFileCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetBoletoID sets the "boleto_id" field.
func (_c *BoletoFileCreate) SetBoletoID(v uuid.UUID) *BoletoFileCreate {
	_c.mutation.SetBoletoID(v)
	return _c
}

// SetNillableBoletoID sets the "boleto_id" field if the given value is not nil.
func (_c *BoletoFileCreate) SetNillableBoletoID(v *uuid.UUID) *BoletoFileCreate {
	if v != nil {
		_c.SetBoletoID(*v)
	}
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *BoletoFileCreate) SetSourcePath(v string) *BoletoFileCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *BoletoFileCreate) SetFilename(v string) *BoletoFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *BoletoFileCreate) SetFileExt(v string) *BoletoFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *BoletoFileCreate) SetFileSize(v int) *BoletoFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *BoletoFileCreate) SetContentHash(v []byte) *BoletoFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *BoletoFileCreate) SetContent(v []byte) *BoletoFileCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *BoletoFileCreate) SetUploadedAt(v time.Time) *BoletoFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *BoletoFileCreate) SetNillableUploadedAt(v *time.Time) *BoletoFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BoletoFileCreate) SetID(v uuid.UUID) *BoletoFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BoletoFileCreate) SetNillableID(v *uuid.UUID) *BoletoFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *BoletoFileCreate) SetCompany(v *Company) *BoletoFileCreate {
	return _c.SetCompanyID(v.ID)
}

// SetBoleto sets the "boleto" edge to the Boleto entity.
func (_c *BoletoFileCreate) SetBoleto(v *Boleto) *BoletoFileCreate {
	return _c.SetBoletoID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *BoletoFileCreate) AddJobIDs(ids ...uuid.UUID) *BoletoFileCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *BoletoFileCreate) AddJobs(v ...*ExtractJob) *BoletoFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the BoletoFileMutation object of the builder.
func (_c *BoletoFileCreate) Mutation() *BoletoFileMutation {
	return _c.mutation
}

// Save creates the BoletoFile in the database.
func (_c *BoletoFileCreate) Save(ctx context.Context) (*BoletoFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BoletoFileCreate) SaveX(ctx context.Context) *BoletoFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoletoFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoletoFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BoletoFileCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := boletofile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := boletofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BoletoFileCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "BoletoFile.company_id"`)}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "BoletoFile.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := boletofile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "BoletoFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := boletofile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "BoletoFile.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := boletofile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "BoletoFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := boletofile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "BoletoFile.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := boletofile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "BoletoFile.content"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "BoletoFile.uploaded_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "BoletoFile.company"`)}
	}
	return nil
}

func (_c *BoletoFileCreate) sqlSave(ctx context.Context) (*BoletoFile, error) {
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

func (_c *BoletoFileCreate) createSpec() (*BoletoFile, *sqlgraph.CreateSpec) {
	var (
		_node = &BoletoFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(boletofile.Table, sqlgraph.NewFieldSpec(boletofile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(boletofile.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(boletofile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(boletofile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(boletofile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(boletofile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(boletofile.FieldContent, field.TypeBytes, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(boletofile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   boletofile.CompanyTable,
			Columns: []string{boletofile.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BoletoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   boletofile.BoletoTable,
			Columns: []string{boletofile.BoletoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(boleto.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BoletoID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   boletofile.JobsTable,
			Columns: []string{boletofile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BoletoFileCreateBulk is the builder for creating many BoletoFile entities in bulk.
type BoletoFileCreateBulk struct {
	config
	err      error
	builders []*BoletoFileCreate
}

// Save creates the BoletoFile entities in the database.
func (_c *BoletoFileCreateBulk) Save(ctx context.Context) ([]*BoletoFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BoletoFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BoletoFileMutation)
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
func (_c *BoletoFileCreateBulk) SaveX(ctx context.Context) []*BoletoFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoletoFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoletoFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
