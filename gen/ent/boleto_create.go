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

// BoletoCreate is the builder for creating a Boleto entity.
type BoletoCreate struct {
	config
	mutation *BoletoMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *BoletoCreate) SetCompanyID(v uuid.UUID) *BoletoCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetRecipient sets the "recipient" field.
func (_c *BoletoCreate) SetRecipient(v string) *BoletoCreate {
	_c.mutation.SetRecipient(v)
	return _c
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableRecipient(v *string) *BoletoCreate {
	if v != nil {
		_c.SetRecipient(*v)
	}
	return _c
}

// SetDrawee sets the "drawee" field.
func (_c *BoletoCreate) SetDrawee(v string) *BoletoCreate {
	_c.mutation.SetDrawee(v)
	return _c
}

// SetNillableDrawee sets the "drawee" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableDrawee(v *string) *BoletoCreate {
	if v != nil {
		_c.SetDrawee(*v)
	}
	return _c
}

// SetDocumentDate sets the "document_date" field.
func (_c *BoletoCreate) SetDocumentDate(v time.Time) *BoletoCreate {
	_c.mutation.SetDocumentDate(v)
	return _c
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableDocumentDate(v *time.Time) *BoletoCreate {
	if v != nil {
		_c.SetDocumentDate(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *BoletoCreate) SetDueDate(v time.Time) *BoletoCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableDueDate(v *time.Time) *BoletoCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetDocumentAmount sets the "document_amount" field.
func (_c *BoletoCreate) SetDocumentAmount(v float64) *BoletoCreate {
	_c.mutation.SetDocumentAmount(v)
	return _c
}

// SetNillableDocumentAmount sets the "document_amount" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableDocumentAmount(v *float64) *BoletoCreate {
	if v != nil {
		_c.SetDocumentAmount(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BoletoCreate) SetAmount(v float64) *BoletoCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetDiscount sets the "discount" field.
func (_c *BoletoCreate) SetDiscount(v float64) *BoletoCreate {
	_c.mutation.SetDiscount(v)
	return _c
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableDiscount(v *float64) *BoletoCreate {
	if v != nil {
		_c.SetDiscount(*v)
	}
	return _c
}

// SetInterestAndFines sets the "interest_and_fines" field.
func (_c *BoletoCreate) SetInterestAndFines(v float64) *BoletoCreate {
	_c.mutation.SetInterestAndFines(v)
	return _c
}

// SetNillableInterestAndFines sets the "interest_and_fines" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableInterestAndFines(v *float64) *BoletoCreate {
	if v != nil {
		_c.SetInterestAndFines(*v)
	}
	return _c
}

// SetBarcode sets the "barcode" field.
func (_c *BoletoCreate) SetBarcode(v string) *BoletoCreate {
	_c.mutation.SetBarcode(v)
	return _c
}

// SetGuideNumber sets the "guide_number" field.
func (_c *BoletoCreate) SetGuideNumber(v string) *BoletoCreate {
	_c.mutation.SetGuideNumber(v)
	return _c
}

// SetNillableGuideNumber sets the "guide_number" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableGuideNumber(v *string) *BoletoCreate {
	if v != nil {
		_c.SetGuideNumber(*v)
	}
	return _c
}

// SetPixQrCodeText sets the "pix_qr_code_text" field.
func (_c *BoletoCreate) SetPixQrCodeText(v string) *BoletoCreate {
	_c.mutation.SetPixQrCodeText(v)
	return _c
}

// SetNillablePixQrCodeText sets the "pix_qr_code_text" field if the given value is not nil.
func (_c *BoletoCreate) SetNillablePixQrCodeText(v *string) *BoletoCreate {
	if v != nil {
		_c.SetPixQrCodeText(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BoletoCreate) SetStatus(v string) *BoletoCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableStatus(v *string) *BoletoCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *BoletoCreate) SetFileName(v string) *BoletoCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetComments sets the "comments" field.
func (_c *BoletoCreate) SetComments(v string) *BoletoCreate {
	_c.mutation.SetComments(v)
	return _c
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableComments(v *string) *BoletoCreate {
	if v != nil {
		_c.SetComments(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BoletoCreate) SetCreatedAt(v time.Time) *BoletoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableCreatedAt(v *time.Time) *BoletoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BoletoCreate) SetUpdatedAt(v time.Time) *BoletoCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableUpdatedAt(v *time.Time) *BoletoCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BoletoCreate) SetID(v uuid.UUID) *BoletoCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BoletoCreate) SetNillableID(v *uuid.UUID) *BoletoCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *BoletoCreate) SetCompany(v *Company) *BoletoCreate {
	return _c.SetCompanyID(v.ID)
}

// AddFileIDs adds the "files" edge to the BoletoFile entity by IDs.
func (_c *BoletoCreate) AddFileIDs(ids ...uuid.UUID) *BoletoCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the BoletoFile entity.
func (_c *BoletoCreate) AddFiles(v ...*BoletoFile) *BoletoCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *BoletoCreate) AddJobIDs(ids ...uuid.UUID) *BoletoCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *BoletoCreate) AddJobs(v ...*ExtractJob) *BoletoCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the BoletoMutation object of the builder.
func (_c *BoletoCreate) Mutation() *BoletoMutation {
	return _c.mutation
}

// Save creates the Boleto in the database.
func (_c *BoletoCreate) Save(ctx context.Context) (*Boleto, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BoletoCreate) SaveX(ctx context.Context) *Boleto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoletoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoletoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BoletoCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := boleto.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := boleto.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := boleto.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := boleto.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BoletoCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Boleto.company_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Boleto.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := boleto.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Boleto.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Barcode(); !ok {
		return &ValidationError{Name: "barcode", err: errors.New(`ent: missing required field "Boleto.barcode"`)}
	}
	if v, ok := _c.mutation.Barcode(); ok {
		if err := boleto.BarcodeValidator(v); err != nil {
			return &ValidationError{Name: "barcode", err: fmt.Errorf(`ent: validator failed for field "Boleto.barcode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Boleto.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := boleto.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Boleto.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "Boleto.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := boleto.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Boleto.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Boleto.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Boleto.updated_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "Boleto.company"`)}
	}
	return nil
}

func (_c *BoletoCreate) sqlSave(ctx context.Context) (*Boleto, error) {
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

func (_c *BoletoCreate) createSpec() (*Boleto, *sqlgraph.CreateSpec) {
	var (
		_node = &Boleto{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(boleto.Table, sqlgraph.NewFieldSpec(boleto.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Recipient(); ok {
		_spec.SetField(boleto.FieldRecipient, field.TypeString, value)
		_node.Recipient = &value
	}
	if value, ok := _c.mutation.Drawee(); ok {
		_spec.SetField(boleto.FieldDrawee, field.TypeString, value)
		_node.Drawee = &value
	}
	if value, ok := _c.mutation.DocumentDate(); ok {
		_spec.SetField(boleto.FieldDocumentDate, field.TypeTime, value)
		_node.DocumentDate = &value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(boleto.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.DocumentAmount(); ok {
		_spec.SetField(boleto.FieldDocumentAmount, field.TypeFloat64, value)
		_node.DocumentAmount = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(boleto.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Discount(); ok {
		_spec.SetField(boleto.FieldDiscount, field.TypeFloat64, value)
		_node.Discount = &value
	}
	if value, ok := _c.mutation.InterestAndFines(); ok {
		_spec.SetField(boleto.FieldInterestAndFines, field.TypeFloat64, value)
		_node.InterestAndFines = &value
	}
	if value, ok := _c.mutation.Barcode(); ok {
		_spec.SetField(boleto.FieldBarcode, field.TypeString, value)
		_node.Barcode = value
	}
	if value, ok := _c.mutation.GuideNumber(); ok {
		_spec.SetField(boleto.FieldGuideNumber, field.TypeString, value)
		_node.GuideNumber = &value
	}
	if value, ok := _c.mutation.PixQrCodeText(); ok {
		_spec.SetField(boleto.FieldPixQrCodeText, field.TypeString, value)
		_node.PixQrCodeText = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(boleto.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(boleto.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.Comments(); ok {
		_spec.SetField(boleto.FieldComments, field.TypeString, value)
		_node.Comments = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(boleto.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(boleto.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   boleto.CompanyTable,
			Columns: []string{boleto.CompanyColumn},
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
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   boleto.FilesTable,
			Columns: []string{boleto.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(boletofile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   boleto.JobsTable,
			Columns: []string{boleto.JobsColumn},
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

// BoletoCreateBulk is the builder for creating many Boleto entities in bulk.
type BoletoCreateBulk struct {
	config
	err      error
	builders []*BoletoCreate
}

// Save creates the Boleto entities in the database.
func (_c *BoletoCreateBulk) Save(ctx context.Context) ([]*Boleto, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Boleto, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BoletoMutation)
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
func (_c *BoletoCreateBulk) SaveX(ctx context.Context) []*Boleto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoletoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoletoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
