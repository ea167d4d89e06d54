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

// BoletoUpdate is the builder for updating Boleto entities.
type BoletoUpdate struct {
	config
	hooks    []Hook
	mutation *BoletoMutation
}

// Where appends a list predicates to the BoletoUpdate builder.
func (_u *BoletoUpdate) Where(ps ...predicate.Boleto) *BoletoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *BoletoUpdate) SetCompanyID(v uuid.UUID) *BoletoUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableCompanyID(v *uuid.UUID) *BoletoUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *BoletoUpdate) SetRecipient(v string) *BoletoUpdate {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableRecipient(v *string) *BoletoUpdate {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// ClearRecipient clears the value of the "recipient" field.
func (_u *BoletoUpdate) ClearRecipient() *BoletoUpdate {
	_u.mutation.ClearRecipient()
	return _u
}

// SetDrawee sets the "drawee" field.
func (_u *BoletoUpdate) SetDrawee(v string) *BoletoUpdate {
	_u.mutation.SetDrawee(v)
	return _u
}

// SetNillableDrawee sets the "drawee" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableDrawee(v *string) *BoletoUpdate {
	if v != nil {
		_u.SetDrawee(*v)
	}
	return _u
}

// ClearDrawee clears the value of the "drawee" field.
func (_u *BoletoUpdate) ClearDrawee() *BoletoUpdate {
	_u.mutation.ClearDrawee()
	return _u
}

// SetDocumentDate sets the "document_date" field.
func (_u *BoletoUpdate) SetDocumentDate(v time.Time) *BoletoUpdate {
	_u.mutation.SetDocumentDate(v)
	return _u
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableDocumentDate(v *time.Time) *BoletoUpdate {
	if v != nil {
		_u.SetDocumentDate(*v)
	}
	return _u
}

// ClearDocumentDate clears the value of the "document_date" field.
func (_u *BoletoUpdate) ClearDocumentDate() *BoletoUpdate {
	_u.mutation.ClearDocumentDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *BoletoUpdate) SetDueDate(v time.Time) *BoletoUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableDueDate(v *time.Time) *BoletoUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *BoletoUpdate) ClearDueDate() *BoletoUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetDocumentAmount sets the "document_amount" field.
func (_u *BoletoUpdate) SetDocumentAmount(v float64) *BoletoUpdate {
	_u.mutation.ResetDocumentAmount()
	_u.mutation.SetDocumentAmount(v)
	return _u
}

// SetNillableDocumentAmount sets the "document_amount" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableDocumentAmount(v *float64) *BoletoUpdate {
	if v != nil {
		_u.SetDocumentAmount(*v)
	}
	return _u
}

// AddDocumentAmount adds value to the "document_amount" field.
func (_u *BoletoUpdate) AddDocumentAmount(v float64) *BoletoUpdate {
	_u.mutation.AddDocumentAmount(v)
	return _u
}

// ClearDocumentAmount clears the value of the "document_amount" field.
func (_u *BoletoUpdate) ClearDocumentAmount() *BoletoUpdate {
	_u.mutation.ClearDocumentAmount()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BoletoUpdate) SetAmount(v float64) *BoletoUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableAmount(v *float64) *BoletoUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BoletoUpdate) AddAmount(v float64) *BoletoUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDiscount sets the "discount" field.
func (_u *BoletoUpdate) SetDiscount(v float64) *BoletoUpdate {
	_u.mutation.ResetDiscount()
	_u.mutation.SetDiscount(v)
	return _u
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableDiscount(v *float64) *BoletoUpdate {
	if v != nil {
		_u.SetDiscount(*v)
	}
	return _u
}

// AddDiscount adds value to the "discount" field.
func (_u *BoletoUpdate) AddDiscount(v float64) *BoletoUpdate {
	_u.mutation.AddDiscount(v)
	return _u
}

// ClearDiscount clears the value of the "discount" field.
func (_u *BoletoUpdate) ClearDiscount() *BoletoUpdate {
	_u.mutation.ClearDiscount()
	return _u
}

// SetInterestAndFines sets the "interest_and_fines" field.
func (_u *BoletoUpdate) SetInterestAndFines(v float64) *BoletoUpdate {
	_u.mutation.ResetInterestAndFines()
	_u.mutation.SetInterestAndFines(v)
	return _u
}

// SetNillableInterestAndFines sets the "interest_and_fines" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableInterestAndFines(v *float64) *BoletoUpdate {
	if v != nil {
		_u.SetInterestAndFines(*v)
	}
	return _u
}

// AddInterestAndFines adds value to the "interest_and_fines" field.
func (_u *BoletoUpdate) AddInterestAndFines(v float64) *BoletoUpdate {
	_u.mutation.AddInterestAndFines(v)
	return _u
}

// ClearInterestAndFines clears the value of the "interest_and_fines" field.
func (_u *BoletoUpdate) ClearInterestAndFines() *BoletoUpdate {
	_u.mutation.ClearInterestAndFines()
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *BoletoUpdate) SetBarcode(v string) *BoletoUpdate {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableBarcode(v *string) *BoletoUpdate {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// SetGuideNumber sets the "guide_number" field.
func (_u *BoletoUpdate) SetGuideNumber(v string) *BoletoUpdate {
	_u.mutation.SetGuideNumber(v)
	return _u
}

// SetNillableGuideNumber sets the "guide_number" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableGuideNumber(v *string) *BoletoUpdate {
	if v != nil {
		_u.SetGuideNumber(*v)
	}
	return _u
}

// ClearGuideNumber clears the value of the "guide_number" field.
func (_u *BoletoUpdate) ClearGuideNumber() *BoletoUpdate {
	_u.mutation.ClearGuideNumber()
	return _u
}

// SetPixQrCodeText sets the "pix_qr_code_text" field.
func (_u *BoletoUpdate) SetPixQrCodeText(v string) *BoletoUpdate {
	_u.mutation.SetPixQrCodeText(v)
	return _u
}

// SetNillablePixQrCodeText sets the "pix_qr_code_text" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillablePixQrCodeText(v *string) *BoletoUpdate {
	if v != nil {
		_u.SetPixQrCodeText(*v)
	}
	return _u
}

// ClearPixQrCodeText clears the value of the "pix_qr_code_text" field.
func (_u *BoletoUpdate) ClearPixQrCodeText() *BoletoUpdate {
	_u.mutation.ClearPixQrCodeText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BoletoUpdate) SetStatus(v string) *BoletoUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableStatus(v *string) *BoletoUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *BoletoUpdate) SetFileName(v string) *BoletoUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableFileName(v *string) *BoletoUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetComments sets the "comments" field.
func (_u *BoletoUpdate) SetComments(v string) *BoletoUpdate {
	_u.mutation.SetComments(v)
	return _u
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableComments(v *string) *BoletoUpdate {
	if v != nil {
		_u.SetComments(*v)
	}
	return _u
}

// ClearComments clears the value of the "comments" field.
func (_u *BoletoUpdate) ClearComments() *BoletoUpdate {
	_u.mutation.ClearComments()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BoletoUpdate) SetCreatedAt(v time.Time) *BoletoUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BoletoUpdate) SetNillableCreatedAt(v *time.Time) *BoletoUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BoletoUpdate) SetUpdatedAt(v time.Time) *BoletoUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *BoletoUpdate) SetCompany(v *Company) *BoletoUpdate {
	return _u.SetCompanyID(v.ID)
}

// AddFileIDs adds the "files" edge to the BoletoFile entity by IDs.
func (_u *BoletoUpdate) AddFileIDs(ids ...uuid.UUID) *BoletoUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the BoletoFile entity.
func (_u *BoletoUpdate) AddFiles(v ...*BoletoFile) *BoletoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *BoletoUpdate) AddJobIDs(ids ...uuid.UUID) *BoletoUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *BoletoUpdate) AddJobs(v ...*ExtractJob) *BoletoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BoletoMutation object of the builder.
func (_u *BoletoUpdate) Mutation() *BoletoMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *BoletoUpdate) ClearCompany() *BoletoUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// ClearFiles clears all "files" edges to the BoletoFile entity.
func (_u *BoletoUpdate) ClearFiles() *BoletoUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to BoletoFile entities by IDs.
func (_u *BoletoUpdate) RemoveFileIDs(ids ...uuid.UUID) *BoletoUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to BoletoFile entities.
func (_u *BoletoUpdate) RemoveFiles(v ...*BoletoFile) *BoletoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *BoletoUpdate) ClearJobs() *BoletoUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *BoletoUpdate) RemoveJobIDs(ids ...uuid.UUID) *BoletoUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *BoletoUpdate) RemoveJobs(v ...*ExtractJob) *BoletoUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BoletoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BoletoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BoletoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BoletoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BoletoUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := boleto.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BoletoUpdate) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := boleto.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Boleto.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Barcode(); ok {
		if err := boleto.BarcodeValidator(v); err != nil {
			return &ValidationError{Name: "barcode", err: fmt.Errorf(`ent: validator failed for field "Boleto.barcode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := boleto.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Boleto.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := boleto.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Boleto.file_name": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Boleto.company"`)
	}
	return nil
}

func (_u *BoletoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(boleto.Table, boleto.Columns, sqlgraph.NewFieldSpec(boleto.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(boleto.FieldRecipient, field.TypeString, value)
	}
	if _u.mutation.RecipientCleared() {
		_spec.ClearField(boleto.FieldRecipient, field.TypeString)
	}
	if value, ok := _u.mutation.Drawee(); ok {
		_spec.SetField(boleto.FieldDrawee, field.TypeString, value)
	}
	if _u.mutation.DraweeCleared() {
		_spec.ClearField(boleto.FieldDrawee, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentDate(); ok {
		_spec.SetField(boleto.FieldDocumentDate, field.TypeTime, value)
	}
	if _u.mutation.DocumentDateCleared() {
		_spec.ClearField(boleto.FieldDocumentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(boleto.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(boleto.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DocumentAmount(); ok {
		_spec.SetField(boleto.FieldDocumentAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDocumentAmount(); ok {
		_spec.AddField(boleto.FieldDocumentAmount, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentAmountCleared() {
		_spec.ClearField(boleto.FieldDocumentAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(boleto.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(boleto.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discount(); ok {
		_spec.SetField(boleto.FieldDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscount(); ok {
		_spec.AddField(boleto.FieldDiscount, field.TypeFloat64, value)
	}
	if _u.mutation.DiscountCleared() {
		_spec.ClearField(boleto.FieldDiscount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InterestAndFines(); ok {
		_spec.SetField(boleto.FieldInterestAndFines, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInterestAndFines(); ok {
		_spec.AddField(boleto.FieldInterestAndFines, field.TypeFloat64, value)
	}
	if _u.mutation.InterestAndFinesCleared() {
		_spec.ClearField(boleto.FieldInterestAndFines, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(boleto.FieldBarcode, field.TypeString, value)
	}
	if value, ok := _u.mutation.GuideNumber(); ok {
		_spec.SetField(boleto.FieldGuideNumber, field.TypeString, value)
	}
	if _u.mutation.GuideNumberCleared() {
		_spec.ClearField(boleto.FieldGuideNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PixQrCodeText(); ok {
		_spec.SetField(boleto.FieldPixQrCodeText, field.TypeString, value)
	}
	if _u.mutation.PixQrCodeTextCleared() {
		_spec.ClearField(boleto.FieldPixQrCodeText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(boleto.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(boleto.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(boleto.FieldComments, field.TypeString, value)
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(boleto.FieldComments, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(boleto.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(boleto.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{boleto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BoletoUpdateOne is the builder for updating a single Boleto entity.
type BoletoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BoletoMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *BoletoUpdateOne) SetCompanyID(v uuid.UUID) *BoletoUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableCompanyID(v *uuid.UUID) *BoletoUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *BoletoUpdateOne) SetRecipient(v string) *BoletoUpdateOne {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableRecipient(v *string) *BoletoUpdateOne {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// ClearRecipient clears the value of the "recipient" field.
func (_u *BoletoUpdateOne) ClearRecipient() *BoletoUpdateOne {
	_u.mutation.ClearRecipient()
	return _u
}

// SetDrawee sets the "drawee" field.
func (_u *BoletoUpdateOne) SetDrawee(v string) *BoletoUpdateOne {
	_u.mutation.SetDrawee(v)
	return _u
}

// SetNillableDrawee sets the "drawee" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableDrawee(v *string) *BoletoUpdateOne {
	if v != nil {
		_u.SetDrawee(*v)
	}
	return _u
}

// ClearDrawee clears the value of the "drawee" field.
func (_u *BoletoUpdateOne) ClearDrawee() *BoletoUpdateOne {
	_u.mutation.ClearDrawee()
	return _u
}

// SetDocumentDate sets the "document_date" field.
func (_u *BoletoUpdateOne) SetDocumentDate(v time.Time) *BoletoUpdateOne {
	_u.mutation.SetDocumentDate(v)
	return _u
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableDocumentDate(v *time.Time) *BoletoUpdateOne {
	if v != nil {
		_u.SetDocumentDate(*v)
	}
	return _u
}

// ClearDocumentDate clears the value of the "document_date" field.
func (_u *BoletoUpdateOne) ClearDocumentDate() *BoletoUpdateOne {
	_u.mutation.ClearDocumentDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *BoletoUpdateOne) SetDueDate(v time.Time) *BoletoUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableDueDate(v *time.Time) *BoletoUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *BoletoUpdateOne) ClearDueDate() *BoletoUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetDocumentAmount sets the "document_amount" field.
func (_u *BoletoUpdateOne) SetDocumentAmount(v float64) *BoletoUpdateOne {
	_u.mutation.ResetDocumentAmount()
	_u.mutation.SetDocumentAmount(v)
	return _u
}

// SetNillableDocumentAmount sets the "document_amount" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableDocumentAmount(v *float64) *BoletoUpdateOne {
	if v != nil {
		_u.SetDocumentAmount(*v)
	}
	return _u
}

// AddDocumentAmount adds value to the "document_amount" field.
func (_u *BoletoUpdateOne) AddDocumentAmount(v float64) *BoletoUpdateOne {
	_u.mutation.AddDocumentAmount(v)
	return _u
}

// ClearDocumentAmount clears the value of the "document_amount" field.
func (_u *BoletoUpdateOne) ClearDocumentAmount() *BoletoUpdateOne {
	_u.mutation.ClearDocumentAmount()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BoletoUpdateOne) SetAmount(v float64) *BoletoUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableAmount(v *float64) *BoletoUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BoletoUpdateOne) AddAmount(v float64) *BoletoUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDiscount sets the "discount" field.
func (_u *BoletoUpdateOne) SetDiscount(v float64) *BoletoUpdateOne {
	_u.mutation.ResetDiscount()
	_u.mutation.SetDiscount(v)
	return _u
}

// SetNillableDiscount sets the "discount" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableDiscount(v *float64) *BoletoUpdateOne {
	if v != nil {
		_u.SetDiscount(*v)
	}
	return _u
}

// AddDiscount adds value to the "discount" field.
func (_u *BoletoUpdateOne) AddDiscount(v float64) *BoletoUpdateOne {
	_u.mutation.AddDiscount(v)
	return _u
}

// ClearDiscount clears the value of the "discount" field.
func (_u *BoletoUpdateOne) ClearDiscount() *BoletoUpdateOne {
	_u.mutation.ClearDiscount()
	return _u
}

// SetInterestAndFines sets the "interest_and_fines" field.
func (_u *BoletoUpdateOne) SetInterestAndFines(v float64) *BoletoUpdateOne {
	_u.mutation.ResetInterestAndFines()
	_u.mutation.SetInterestAndFines(v)
	return _u
}

// SetNillableInterestAndFines sets the "interest_and_fines" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableInterestAndFines(v *float64) *BoletoUpdateOne {
	if v != nil {
		_u.SetInterestAndFines(*v)
	}
	return _u
}

// AddInterestAndFines adds value to the "interest_and_fines" field.
func (_u *BoletoUpdateOne) AddInterestAndFines(v float64) *BoletoUpdateOne {
	_u.mutation.AddInterestAndFines(v)
	return _u
}

// ClearInterestAndFines clears the value of the "interest_and_fines" field.
func (_u *BoletoUpdateOne) ClearInterestAndFines() *BoletoUpdateOne {
	_u.mutation.ClearInterestAndFines()
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *BoletoUpdateOne) SetBarcode(v string) *BoletoUpdateOne {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableBarcode(v *string) *BoletoUpdateOne {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// SetGuideNumber sets the "guide_number" field.
func (_u *BoletoUpdateOne) SetGuideNumber(v string) *BoletoUpdateOne {
	_u.mutation.SetGuideNumber(v)
	return _u
}

// SetNillableGuideNumber sets the "guide_number" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableGuideNumber(v *string) *BoletoUpdateOne {
	if v != nil {
		_u.SetGuideNumber(*v)
	}
	return _u
}

// ClearGuideNumber clears the value of the "guide_number" field.
func (_u *BoletoUpdateOne) ClearGuideNumber() *BoletoUpdateOne {
	_u.mutation.ClearGuideNumber()
	return _u
}

// SetPixQrCodeText sets the "pix_qr_code_text" field.
func (_u *BoletoUpdateOne) SetPixQrCodeText(v string) *BoletoUpdateOne {
	_u.mutation.SetPixQrCodeText(v)
	return _u
}

// SetNillablePixQrCodeText sets the "pix_qr_code_text" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillablePixQrCodeText(v *string) *BoletoUpdateOne {
	if v != nil {
		_u.SetPixQrCodeText(*v)
	}
	return _u
}

// ClearPixQrCodeText clears the value of the "pix_qr_code_text" field.
func (_u *BoletoUpdateOne) ClearPixQrCodeText() *BoletoUpdateOne {
	_u.mutation.ClearPixQrCodeText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BoletoUpdateOne) SetStatus(v string) *BoletoUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableStatus(v *string) *BoletoUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *BoletoUpdateOne) SetFileName(v string) *BoletoUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableFileName(v *string) *BoletoUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetComments sets the "comments" field.
func (_u *BoletoUpdateOne) SetComments(v string) *BoletoUpdateOne {
	_u.mutation.SetComments(v)
	return _u
}

// SetNillableComments sets the "comments" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableComments(v *string) *BoletoUpdateOne {
	if v != nil {
		_u.SetComments(*v)
	}
	return _u
}

// ClearComments clears the value of the "comments" field.
func (_u *BoletoUpdateOne) ClearComments() *BoletoUpdateOne {
	_u.mutation.ClearComments()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BoletoUpdateOne) SetCreatedAt(v time.Time) *BoletoUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BoletoUpdateOne) SetNillableCreatedAt(v *time.Time) *BoletoUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BoletoUpdateOne) SetUpdatedAt(v time.Time) *BoletoUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *BoletoUpdateOne) SetCompany(v *Company) *BoletoUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// AddFileIDs adds the "files" edge to the BoletoFile entity by IDs.
func (_u *BoletoUpdateOne) AddFileIDs(ids ...uuid.UUID) *BoletoUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the BoletoFile entity.
func (_u *BoletoUpdateOne) AddFiles(v ...*BoletoFile) *BoletoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *BoletoUpdateOne) AddJobIDs(ids ...uuid.UUID) *BoletoUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *BoletoUpdateOne) AddJobs(v ...*ExtractJob) *BoletoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BoletoMutation object of the builder.
func (_u *BoletoUpdateOne) Mutation() *BoletoMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *BoletoUpdateOne) ClearCompany() *BoletoUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// ClearFiles clears all "files" edges to the BoletoFile entity.
func (_u *BoletoUpdateOne) ClearFiles() *BoletoUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to BoletoFile entities by IDs.
func (_u *BoletoUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *BoletoUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to BoletoFile entities.
func (_u *BoletoUpdateOne) RemoveFiles(v ...*BoletoFile) *BoletoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *BoletoUpdateOne) ClearJobs() *BoletoUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *BoletoUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *BoletoUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *BoletoUpdateOne) RemoveJobs(v ...*ExtractJob) *BoletoUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the BoletoUpdate builder.
func (_u *BoletoUpdateOne) Where(ps ...predicate.Boleto) *BoletoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BoletoUpdateOne) Select(field string, fields ...string) *BoletoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Boleto entity.
func (_u *BoletoUpdateOne) Save(ctx context.Context) (*Boleto, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BoletoUpdateOne) SaveX(ctx context.Context) *Boleto {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BoletoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BoletoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BoletoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := boleto.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BoletoUpdateOne) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := boleto.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Boleto.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Barcode(); ok {
		if err := boleto.BarcodeValidator(v); err != nil {
			return &ValidationError{Name: "barcode", err: fmt.Errorf(`ent: validator failed for field "Boleto.barcode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := boleto.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Boleto.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := boleto.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Boleto.file_name": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Boleto.company"`)
	}
	return nil
}

func (_u *BoletoUpdateOne) sqlSave(ctx context.Context) (_node *Boleto, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(boleto.Table, boleto.Columns, sqlgraph.NewFieldSpec(boleto.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Boleto.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, boleto.FieldID)
		for _, f := range fields {
			if !boleto.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != boleto.FieldID {
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
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(boleto.FieldRecipient, field.TypeString, value)
	}
	if _u.mutation.RecipientCleared() {
		_spec.ClearField(boleto.FieldRecipient, field.TypeString)
	}
	if value, ok := _u.mutation.Drawee(); ok {
		_spec.SetField(boleto.FieldDrawee, field.TypeString, value)
	}
	if _u.mutation.DraweeCleared() {
		_spec.ClearField(boleto.FieldDrawee, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentDate(); ok {
		_spec.SetField(boleto.FieldDocumentDate, field.TypeTime, value)
	}
	if _u.mutation.DocumentDateCleared() {
		_spec.ClearField(boleto.FieldDocumentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(boleto.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(boleto.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DocumentAmount(); ok {
		_spec.SetField(boleto.FieldDocumentAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDocumentAmount(); ok {
		_spec.AddField(boleto.FieldDocumentAmount, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentAmountCleared() {
		_spec.ClearField(boleto.FieldDocumentAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(boleto.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(boleto.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Discount(); ok {
		_spec.SetField(boleto.FieldDiscount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscount(); ok {
		_spec.AddField(boleto.FieldDiscount, field.TypeFloat64, value)
	}
	if _u.mutation.DiscountCleared() {
		_spec.ClearField(boleto.FieldDiscount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InterestAndFines(); ok {
		_spec.SetField(boleto.FieldInterestAndFines, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInterestAndFines(); ok {
		_spec.AddField(boleto.FieldInterestAndFines, field.TypeFloat64, value)
	}
	if _u.mutation.InterestAndFinesCleared() {
		_spec.ClearField(boleto.FieldInterestAndFines, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(boleto.FieldBarcode, field.TypeString, value)
	}
	if value, ok := _u.mutation.GuideNumber(); ok {
		_spec.SetField(boleto.FieldGuideNumber, field.TypeString, value)
	}
	if _u.mutation.GuideNumberCleared() {
		_spec.ClearField(boleto.FieldGuideNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PixQrCodeText(); ok {
		_spec.SetField(boleto.FieldPixQrCodeText, field.TypeString, value)
	}
	if _u.mutation.PixQrCodeTextCleared() {
		_spec.ClearField(boleto.FieldPixQrCodeText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(boleto.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(boleto.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(boleto.FieldComments, field.TypeString, value)
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(boleto.FieldComments, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(boleto.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(boleto.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Boleto{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{boleto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
