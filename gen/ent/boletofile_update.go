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
	"github.com/brpayflow/boleto-tracker/gen/ent/boleto"
	"github.com/brpayflow/boleto-tracker/gen/ent/boletofile"
	"github.com/brpayflow/boleto-tracker/gen/ent/company"
	"github.com/brpayflow/boleto-tracker/gen/ent/extractjob"
	"github.com/brpayflow/boleto-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// BoletoFileUpdate is the builder for updating BoletoFile entities.
type BoletoFileUpdate struct {
	config
	hooks    []Hook
	mutation *BoletoFileMutation
}

// Where appends a list predicates to the BoletoFileUpdate builder.
func (_u *BoletoFileUpdate) Where(ps ...predicate.BoletoFile) *BoletoFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *BoletoFileUpdate) SetCompanyID(v uuid.UUID) *BoletoFileUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *BoletoFileUpdate) SetNillableCompanyID(v *uuid.UUID) *BoletoFileUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetBoletoID sets the "boleto_id" field.
func (_u *BoletoFileUpdate) SetBoletoID(v uuid.UUID) *BoletoFileUpdate {
	_u.mutation.SetBoletoID(v)
	return _u
}

// SetNillableBoletoID sets the "boleto_id" field if the given value is not nil.
func (_u *BoletoFileUpdate) SetNillableBoletoID(v *uuid.UUID) *BoletoFileUpdate {
	if v != nil {
		_u.SetBoletoID(*v)
	}
	return _u
}

// ClearBoletoID clears the value of the "boleto_id" field.
func (_u *BoletoFileUpdate) ClearBoletoID() *BoletoFileUpdate {
	_u.mutation.ClearBoletoID()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *BoletoFileUpdate) SetSourcePath(v string) *BoletoFileUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *BoletoFileUpdate) SetNillableSourcePath(v *string) *BoletoFileUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *BoletoFileUpdate) SetFilename(v string) *BoletoFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *BoletoFileUpdate) SetNillableFilename(v *string) *BoletoFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *BoletoFileUpdate) SetFileExt(v string) *BoletoFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *BoletoFileUpdate) SetNillableFileExt(v *string) *BoletoFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *BoletoFileUpdate) SetFileSize(v int) *BoletoFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *BoletoFileUpdate) SetNillableFileSize(v *int) *BoletoFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *BoletoFileUpdate) AddFileSize(v int) *BoletoFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *BoletoFileUpdate) SetContentHash(v []byte) *BoletoFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *BoletoFileUpdate) SetContent(v []byte) *BoletoFileUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *BoletoFileUpdate) SetUploadedAt(v time.Time) *BoletoFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *BoletoFileUpdate) SetNillableUploadedAt(v *time.Time) *BoletoFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *BoletoFileUpdate) SetCompany(v *Company) *BoletoFileUpdate {
	return _u.SetCompanyID(v.ID)
}

// SetBoleto sets the "boleto" edge to the Boleto entity.
func (_u *BoletoFileUpdate) SetBoleto(v *Boleto) *BoletoFileUpdate {
	return _u.SetBoletoID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *BoletoFileUpdate) AddJobIDs(ids ...uuid.UUID) *BoletoFileUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *BoletoFileUpdate) AddJobs(v ...*ExtractJob) *BoletoFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BoletoFileMutation object of the builder.
func (_u *BoletoFileUpdate) Mutation() *BoletoFileMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *BoletoFileUpdate) ClearCompany() *BoletoFileUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearBoleto clears the "boleto" edge to the Boleto entity.
func (_u *BoletoFileUpdate) ClearBoleto() *BoletoFileUpdate {
	_u.mutation.ClearBoleto()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *BoletoFileUpdate) ClearJobs() *BoletoFileUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *BoletoFileUpdate) RemoveJobIDs(ids ...uuid.UUID) *BoletoFileUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *BoletoFileUpdate) RemoveJobs(v ...*ExtractJob) *BoletoFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BoletoFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BoletoFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BoletoFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BoletoFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BoletoFileUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := boletofile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := boletofile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := boletofile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := boletofile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := boletofile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.content_hash": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BoletoFile.company"`)
	}
	return nil
}

func (_u *BoletoFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(boletofile.Table, boletofile.Columns, sqlgraph.NewFieldSpec(boletofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(boletofile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(boletofile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(boletofile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(boletofile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(boletofile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(boletofile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(boletofile.FieldContent, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(boletofile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BoletoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BoletoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{boletofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BoletoFileUpdateOne is the builder for updating a single BoletoFile entity.
type BoletoFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BoletoFileMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *BoletoFileUpdateOne) SetCompanyID(v uuid.UUID) *BoletoFileUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *BoletoFileUpdateOne) SetNillableCompanyID(v *uuid.UUID) *BoletoFileUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetBoletoID sets the "boleto_id" field.
func (_u *BoletoFileUpdateOne) SetBoletoID(v uuid.UUID) *BoletoFileUpdateOne {
	_u.mutation.SetBoletoID(v)
	return _u
}

// SetNillableBoletoID sets the "boleto_id" field if the given value is not nil.
func (_u *BoletoFileUpdateOne) SetNillableBoletoID(v *uuid.UUID) *BoletoFileUpdateOne {
	if v != nil {
		_u.SetBoletoID(*v)
	}
	return _u
}

// ClearBoletoID clears the value of the "boleto_id" field.
func (_u *BoletoFileUpdateOne) ClearBoletoID() *BoletoFileUpdateOne {
	_u.mutation.ClearBoletoID()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *BoletoFileUpdateOne) SetSourcePath(v string) *BoletoFileUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *BoletoFileUpdateOne) SetNillableSourcePath(v *string) *BoletoFileUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *BoletoFileUpdateOne) SetFilename(v string) *BoletoFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *BoletoFileUpdateOne) SetNillableFilename(v *string) *BoletoFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *BoletoFileUpdateOne) SetFileExt(v string) *BoletoFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *BoletoFileUpdateOne) SetNillableFileExt(v *string) *BoletoFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *BoletoFileUpdateOne) SetFileSize(v int) *BoletoFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *BoletoFileUpdateOne) SetNillableFileSize(v *int) *BoletoFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *BoletoFileUpdateOne) AddFileSize(v int) *BoletoFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *BoletoFileUpdateOne) SetContentHash(v []byte) *BoletoFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *BoletoFileUpdateOne) SetContent(v []byte) *BoletoFileUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *BoletoFileUpdateOne) SetUploadedAt(v time.Time) *BoletoFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *BoletoFileUpdateOne) SetNillableUploadedAt(v *time.Time) *BoletoFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *BoletoFileUpdateOne) SetCompany(v *Company) *BoletoFileUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// SetBoleto sets the "boleto" edge to the Boleto entity.
func (_u *BoletoFileUpdateOne) SetBoleto(v *Boleto) *BoletoFileUpdateOne {
	return _u.SetBoletoID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *BoletoFileUpdateOne) AddJobIDs(ids ...uuid.UUID) *BoletoFileUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *BoletoFileUpdateOne) AddJobs(v ...*ExtractJob) *BoletoFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BoletoFileMutation object of the builder.
func (_u *BoletoFileUpdateOne) Mutation() *BoletoFileMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *BoletoFileUpdateOne) ClearCompany() *BoletoFileUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearBoleto clears the "boleto" edge to the Boleto entity.
func (_u *BoletoFileUpdateOne) ClearBoleto() *BoletoFileUpdateOne {
	_u.mutation.ClearBoleto()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *BoletoFileUpdateOne) ClearJobs() *BoletoFileUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *BoletoFileUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *BoletoFileUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *BoletoFileUpdateOne) RemoveJobs(v ...*ExtractJob) *BoletoFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the BoletoFileUpdate builder.
func (_u *BoletoFileUpdateOne) Where(ps ...predicate.BoletoFile) *BoletoFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BoletoFileUpdateOne) Select(field string, fields ...string) *BoletoFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BoletoFile entity.
func (_u *BoletoFileUpdateOne) Save(ctx context.Context) (*BoletoFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BoletoFileUpdateOne) SaveX(ctx context.Context) *BoletoFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BoletoFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BoletoFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BoletoFileUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := boletofile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := boletofile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := boletofile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := boletofile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := boletofile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "BoletoFile.content_hash": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BoletoFile.company"`)
	}
	return nil
}

func (_u *BoletoFileUpdateOne) sqlSave(ctx context.Context) (_node *BoletoFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(boletofile.Table, boletofile.Columns, sqlgraph.NewFieldSpec(boletofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BoletoFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, boletofile.FieldID)
		for _, f := range fields {
			if !boletofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != boletofile.FieldID {
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
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(boletofile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(boletofile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(boletofile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(boletofile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(boletofile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(boletofile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(boletofile.FieldContent, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(boletofile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BoletoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BoletoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BoletoFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{boletofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
