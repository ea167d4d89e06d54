// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brpayflow/boleto-tracker/gen/ent/boleto"
	"github.com/brpayflow/boleto-tracker/gen/ent/boletofile"
	"github.com/brpayflow/boleto-tracker/gen/ent/company"
	"github.com/brpayflow/boleto-tracker/gen/ent/extractjob"
	"github.com/brpayflow/boleto-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBoleto     = "Boleto"
	TypeBoletoFile = "BoletoFile"
	TypeCompany    = "Company"
	TypeExtractJob = "ExtractJob"
)

// BoletoMutation represents an operation that mutates the Boleto nodes in the graph.
type BoletoMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	recipient             *string
	drawee                *string
	document_date         *time.Time
	due_date              *time.Time
	document_amount       *float64
	adddocument_amount    *float64
	amount                *float64
	addamount             *float64
	discount              *float64
	adddiscount           *float64
	interest_and_fines    *float64
	addinterest_and_fines *float64
	barcode               *string
	guide_number          *string
	pix_qr_code_text      *string
	status                *string
	file_name             *string
	comments              *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	company               *uuid.UUID
	clearedcompany        bool
	files                 map[uuid.UUID]struct{}
	removedfiles          map[uuid.UUID]struct{}
	clearedfiles          bool
	jobs                  map[uuid.UUID]struct{}
	removedjobs           map[uuid.UUID]struct{}
	clearedjobs           bool
	done                  bool
	oldValue              func(context.Context) (*Boleto, error)
	predicates            []predicate.Boleto
}

var _ ent.Mutation = (*BoletoMutation)(nil)

// boletoOption allows management of the mutation configuration using functional options.
type boletoOption func(*BoletoMutation)

// newBoletoMutation creates new mutation for the Boleto entity.
func newBoletoMutation(c config, op Op, opts ...boletoOption) *BoletoMutation {
	m := &BoletoMutation{
		config:        c,
		op:            op,
		typ:           TypeBoleto,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBoletoID sets the ID field of the mutation.
func withBoletoID(id uuid.UUID) boletoOption {
	return func(m *BoletoMutation) {
		var (
			err   error
			once  sync.Once
			value *Boleto
		)
		m.oldValue = func(ctx context.Context) (*Boleto, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Boleto.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBoleto sets the old Boleto of the mutation.
func withBoleto(node *Boleto) boletoOption {
	return func(m *BoletoMutation) {
		m.oldValue = func(context.Context) (*Boleto, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BoletoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BoletoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Boleto entities.
func (m *BoletoMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BoletoMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BoletoMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Boleto.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *BoletoMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *BoletoMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *BoletoMutation) ResetCompanyID() {
	m.company = nil
}

// SetRecipient sets the "recipient" field.
func (m *BoletoMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *BoletoMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldRecipient(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ClearRecipient clears the value of the "recipient" field.
func (m *BoletoMutation) ClearRecipient() {
	m.recipient = nil
	m.clearedFields[boleto.FieldRecipient] = struct{}{}
}

// RecipientCleared returns if the "recipient" field was cleared in this mutation.
func (m *BoletoMutation) RecipientCleared() bool {
	_, ok := m.clearedFields[boleto.FieldRecipient]
	return ok
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *BoletoMutation) ResetRecipient() {
	m.recipient = nil
	delete(m.clearedFields, boleto.FieldRecipient)
}

// SetDrawee sets the "drawee" field.
func (m *BoletoMutation) SetDrawee(s string) {
	m.drawee = &s
}

// Drawee returns the value of the "drawee" field in the mutation.
func (m *BoletoMutation) Drawee() (r string, exists bool) {
	v := m.drawee
	if v == nil {
		return
	}
	return *v, true
}

// OldDrawee returns the old "drawee" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldDrawee(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrawee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrawee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrawee: %w", err)
	}
	return oldValue.Drawee, nil
}

// ClearDrawee clears the value of the "drawee" field.
func (m *BoletoMutation) ClearDrawee() {
	m.drawee = nil
	m.clearedFields[boleto.FieldDrawee] = struct{}{}
}

// DraweeCleared returns if the "drawee" field was cleared in this mutation.
func (m *BoletoMutation) DraweeCleared() bool {
	_, ok := m.clearedFields[boleto.FieldDrawee]
	return ok
}

// ResetDrawee resets all changes to the "drawee" field.
func (m *BoletoMutation) ResetDrawee() {
	m.drawee = nil
	delete(m.clearedFields, boleto.FieldDrawee)
}

// SetDocumentDate sets the "document_date" field.
func (m *BoletoMutation) SetDocumentDate(t time.Time) {
	m.document_date = &t
}

// DocumentDate returns the value of the "document_date" field in the mutation.
func (m *BoletoMutation) DocumentDate() (r time.Time, exists bool) {
	v := m.document_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentDate returns the old "document_date" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldDocumentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentDate: %w", err)
	}
	return oldValue.DocumentDate, nil
}

// ClearDocumentDate clears the value of the "document_date" field.
func (m *BoletoMutation) ClearDocumentDate() {
	m.document_date = nil
	m.clearedFields[boleto.FieldDocumentDate] = struct{}{}
}

// DocumentDateCleared returns if the "document_date" field was cleared in this mutation.
func (m *BoletoMutation) DocumentDateCleared() bool {
	_, ok := m.clearedFields[boleto.FieldDocumentDate]
	return ok
}

// ResetDocumentDate resets all changes to the "document_date" field.
func (m *BoletoMutation) ResetDocumentDate() {
	m.document_date = nil
	delete(m.clearedFields, boleto.FieldDocumentDate)
}

// SetDueDate sets the "due_date" field.
func (m *BoletoMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *BoletoMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *BoletoMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[boleto.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *BoletoMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[boleto.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *BoletoMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, boleto.FieldDueDate)
}

// SetDocumentAmount sets the "document_amount" field.
func (m *BoletoMutation) SetDocumentAmount(f float64) {
	m.document_amount = &f
	m.adddocument_amount = nil
}

// DocumentAmount returns the value of the "document_amount" field in the mutation.
func (m *BoletoMutation) DocumentAmount() (r float64, exists bool) {
	v := m.document_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentAmount returns the old "document_amount" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldDocumentAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentAmount: %w", err)
	}
	return oldValue.DocumentAmount, nil
}

// AddDocumentAmount adds f to the "document_amount" field.
func (m *BoletoMutation) AddDocumentAmount(f float64) {
	if m.adddocument_amount != nil {
		*m.adddocument_amount += f
	} else {
		m.adddocument_amount = &f
	}
}

// AddedDocumentAmount returns the value that was added to the "document_amount" field in this mutation.
func (m *BoletoMutation) AddedDocumentAmount() (r float64, exists bool) {
	v := m.adddocument_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearDocumentAmount clears the value of the "document_amount" field.
func (m *BoletoMutation) ClearDocumentAmount() {
	m.document_amount = nil
	m.adddocument_amount = nil
	m.clearedFields[boleto.FieldDocumentAmount] = struct{}{}
}

// DocumentAmountCleared returns if the "document_amount" field was cleared in this mutation.
func (m *BoletoMutation) DocumentAmountCleared() bool {
	_, ok := m.clearedFields[boleto.FieldDocumentAmount]
	return ok
}

// ResetDocumentAmount resets all changes to the "document_amount" field.
func (m *BoletoMutation) ResetDocumentAmount() {
	m.document_amount = nil
	m.adddocument_amount = nil
	delete(m.clearedFields, boleto.FieldDocumentAmount)
}

// SetAmount sets the "amount" field.
func (m *BoletoMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *BoletoMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *BoletoMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *BoletoMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *BoletoMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetDiscount sets the "discount" field.
func (m *BoletoMutation) SetDiscount(f float64) {
	m.discount = &f
	m.adddiscount = nil
}

// Discount returns the value of the "discount" field in the mutation.
func (m *BoletoMutation) Discount() (r float64, exists bool) {
	v := m.discount
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscount returns the old "discount" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldDiscount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscount: %w", err)
	}
	return oldValue.Discount, nil
}

// AddDiscount adds f to the "discount" field.
func (m *BoletoMutation) AddDiscount(f float64) {
	if m.adddiscount != nil {
		*m.adddiscount += f
	} else {
		m.adddiscount = &f
	}
}

// AddedDiscount returns the value that was added to the "discount" field in this mutation.
func (m *BoletoMutation) AddedDiscount() (r float64, exists bool) {
	v := m.adddiscount
	if v == nil {
		return
	}
	return *v, true
}

// ClearDiscount clears the value of the "discount" field.
func (m *BoletoMutation) ClearDiscount() {
	m.discount = nil
	m.adddiscount = nil
	m.clearedFields[boleto.FieldDiscount] = struct{}{}
}

// DiscountCleared returns if the "discount" field was cleared in this mutation.
func (m *BoletoMutation) DiscountCleared() bool {
	_, ok := m.clearedFields[boleto.FieldDiscount]
	return ok
}

// ResetDiscount resets all changes to the "discount" field.
func (m *BoletoMutation) ResetDiscount() {
	m.discount = nil
	m.adddiscount = nil
	delete(m.clearedFields, boleto.FieldDiscount)
}

// SetInterestAndFines sets the "interest_and_fines" field.
func (m *BoletoMutation) SetInterestAndFines(f float64) {
	m.interest_and_fines = &f
	m.addinterest_and_fines = nil
}

// InterestAndFines returns the value of the "interest_and_fines" field in the mutation.
func (m *BoletoMutation) InterestAndFines() (r float64, exists bool) {
	v := m.interest_and_fines
	if v == nil {
		return
	}
	return *v, true
}

// OldInterestAndFines returns the old "interest_and_fines" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldInterestAndFines(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterestAndFines is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterestAndFines requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterestAndFines: %w", err)
	}
	return oldValue.InterestAndFines, nil
}

// AddInterestAndFines adds f to the "interest_and_fines" field.
func (m *BoletoMutation) AddInterestAndFines(f float64) {
	if m.addinterest_and_fines != nil {
		*m.addinterest_and_fines += f
	} else {
		m.addinterest_and_fines = &f
	}
}

// AddedInterestAndFines returns the value that was added to the "interest_and_fines" field in this mutation.
func (m *BoletoMutation) AddedInterestAndFines() (r float64, exists bool) {
	v := m.addinterest_and_fines
	if v == nil {
		return
	}
	return *v, true
}

// ClearInterestAndFines clears the value of the "interest_and_fines" field.
func (m *BoletoMutation) ClearInterestAndFines() {
	m.interest_and_fines = nil
	m.addinterest_and_fines = nil
	m.clearedFields[boleto.FieldInterestAndFines] = struct{}{}
}

// InterestAndFinesCleared returns if the "interest_and_fines" field was cleared in this mutation.
func (m *BoletoMutation) InterestAndFinesCleared() bool {
	_, ok := m.clearedFields[boleto.FieldInterestAndFines]
	return ok
}

// ResetInterestAndFines resets all changes to the "interest_and_fines" field.
func (m *BoletoMutation) ResetInterestAndFines() {
	m.interest_and_fines = nil
	m.addinterest_and_fines = nil
	delete(m.clearedFields, boleto.FieldInterestAndFines)
}

// SetBarcode sets the "barcode" field.
func (m *BoletoMutation) SetBarcode(s string) {
	m.barcode = &s
}

// Barcode returns the value of the "barcode" field in the mutation.
func (m *BoletoMutation) Barcode() (r string, exists bool) {
	v := m.barcode
	if v == nil {
		return
	}
	return *v, true
}

// OldBarcode returns the old "barcode" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldBarcode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBarcode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBarcode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBarcode: %w", err)
	}
	return oldValue.Barcode, nil
}

// ResetBarcode resets all changes to the "barcode" field.
func (m *BoletoMutation) ResetBarcode() {
	m.barcode = nil
}

// SetGuideNumber sets the "guide_number" field.
func (m *BoletoMutation) SetGuideNumber(s string) {
	m.guide_number = &s
}

// GuideNumber returns the value of the "guide_number" field in the mutation.
func (m *BoletoMutation) GuideNumber() (r string, exists bool) {
	v := m.guide_number
	if v == nil {
		return
	}
	return *v, true
}

// OldGuideNumber returns the old "guide_number" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldGuideNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuideNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuideNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuideNumber: %w", err)
	}
	return oldValue.GuideNumber, nil
}

// ClearGuideNumber clears the value of the "guide_number" field.
func (m *BoletoMutation) ClearGuideNumber() {
	m.guide_number = nil
	m.clearedFields[boleto.FieldGuideNumber] = struct{}{}
}

// GuideNumberCleared returns if the "guide_number" field was cleared in this mutation.
func (m *BoletoMutation) GuideNumberCleared() bool {
	_, ok := m.clearedFields[boleto.FieldGuideNumber]
	return ok
}

// ResetGuideNumber resets all changes to the "guide_number" field.
func (m *BoletoMutation) ResetGuideNumber() {
	m.guide_number = nil
	delete(m.clearedFields, boleto.FieldGuideNumber)
}

// SetPixQrCodeText sets the "pix_qr_code_text" field.
func (m *BoletoMutation) SetPixQrCodeText(s string) {
	m.pix_qr_code_text = &s
}

// PixQrCodeText returns the value of the "pix_qr_code_text" field in the mutation.
func (m *BoletoMutation) PixQrCodeText() (r string, exists bool) {
	v := m.pix_qr_code_text
	if v == nil {
		return
	}
	return *v, true
}

// OldPixQrCodeText returns the old "pix_qr_code_text" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldPixQrCodeText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPixQrCodeText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPixQrCodeText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPixQrCodeText: %w", err)
	}
	return oldValue.PixQrCodeText, nil
}

// ClearPixQrCodeText clears the value of the "pix_qr_code_text" field.
func (m *BoletoMutation) ClearPixQrCodeText() {
	m.pix_qr_code_text = nil
	m.clearedFields[boleto.FieldPixQrCodeText] = struct{}{}
}

// PixQrCodeTextCleared returns if the "pix_qr_code_text" field was cleared in this mutation.
func (m *BoletoMutation) PixQrCodeTextCleared() bool {
	_, ok := m.clearedFields[boleto.FieldPixQrCodeText]
	return ok
}

// ResetPixQrCodeText resets all changes to the "pix_qr_code_text" field.
func (m *BoletoMutation) ResetPixQrCodeText() {
	m.pix_qr_code_text = nil
	delete(m.clearedFields, boleto.FieldPixQrCodeText)
}

// SetStatus sets the "status" field.
func (m *BoletoMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BoletoMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *BoletoMutation) ResetStatus() {
	m.status = nil
}

// SetFileName sets the "file_name" field.
func (m *BoletoMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *BoletoMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldFileName(ctx context.Context) (v string, err error) {
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
func (m *BoletoMutation) ResetFileName() {
	m.file_name = nil
}

// SetComments sets the "comments" field.
func (m *BoletoMutation) SetComments(s string) {
	m.comments = &s
}

// Comments returns the value of the "comments" field in the mutation.
func (m *BoletoMutation) Comments() (r string, exists bool) {
	v := m.comments
	if v == nil {
		return
	}
	return *v, true
}

// OldComments returns the old "comments" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldComments(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComments: %w", err)
	}
	return oldValue.Comments, nil
}

// ClearComments clears the value of the "comments" field.
func (m *BoletoMutation) ClearComments() {
	m.comments = nil
	m.clearedFields[boleto.FieldComments] = struct{}{}
}

// CommentsCleared returns if the "comments" field was cleared in this mutation.
func (m *BoletoMutation) CommentsCleared() bool {
	_, ok := m.clearedFields[boleto.FieldComments]
	return ok
}

// ResetComments resets all changes to the "comments" field.
func (m *BoletoMutation) ResetComments() {
	m.comments = nil
	delete(m.clearedFields, boleto.FieldComments)
}

// SetCreatedAt sets the "created_at" field.
func (m *BoletoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BoletoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BoletoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BoletoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BoletoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Boleto entity.
// If the Boleto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BoletoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *BoletoMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[boleto.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *BoletoMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *BoletoMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *BoletoMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddFileIDs adds the "files" edge to the BoletoFile entity by ids.
func (m *BoletoMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the BoletoFile entity.
func (m *BoletoMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the BoletoFile entity was cleared.
func (m *BoletoMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the BoletoFile entity by IDs.
func (m *BoletoMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the BoletoFile entity.
func (m *BoletoMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *BoletoMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *BoletoMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *BoletoMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *BoletoMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *BoletoMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *BoletoMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *BoletoMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *BoletoMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *BoletoMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the BoletoMutation builder.
func (m *BoletoMutation) Where(ps ...predicate.Boleto) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BoletoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BoletoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Boleto, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BoletoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BoletoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Boleto).
func (m *BoletoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BoletoMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.company != nil {
		fields = append(fields, boleto.FieldCompanyID)
	}
	if m.recipient != nil {
		fields = append(fields, boleto.FieldRecipient)
	}
	if m.drawee != nil {
		fields = append(fields, boleto.FieldDrawee)
	}
	if m.document_date != nil {
		fields = append(fields, boleto.FieldDocumentDate)
	}
	if m.due_date != nil {
		fields = append(fields, boleto.FieldDueDate)
	}
	if m.document_amount != nil {
		fields = append(fields, boleto.FieldDocumentAmount)
	}
	if m.amount != nil {
		fields = append(fields, boleto.FieldAmount)
	}
	if m.discount != nil {
		fields = append(fields, boleto.FieldDiscount)
	}
	if m.interest_and_fines != nil {
		fields = append(fields, boleto.FieldInterestAndFines)
	}
	if m.barcode != nil {
		fields = append(fields, boleto.FieldBarcode)
	}
	if m.guide_number != nil {
		fields = append(fields, boleto.FieldGuideNumber)
	}
	if m.pix_qr_code_text != nil {
		fields = append(fields, boleto.FieldPixQrCodeText)
	}
	if m.status != nil {
		fields = append(fields, boleto.FieldStatus)
	}
	if m.file_name != nil {
		fields = append(fields, boleto.FieldFileName)
	}
	if m.comments != nil {
		fields = append(fields, boleto.FieldComments)
	}
	if m.created_at != nil {
		fields = append(fields, boleto.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, boleto.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BoletoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case boleto.FieldCompanyID:
		return m.CompanyID()
	case boleto.FieldRecipient:
		return m.Recipient()
	case boleto.FieldDrawee:
		return m.Drawee()
	case boleto.FieldDocumentDate:
		return m.DocumentDate()
	case boleto.FieldDueDate:
		return m.DueDate()
	case boleto.FieldDocumentAmount:
		return m.DocumentAmount()
	case boleto.FieldAmount:
		return m.Amount()
	case boleto.FieldDiscount:
		return m.Discount()
	case boleto.FieldInterestAndFines:
		return m.InterestAndFines()
	case boleto.FieldBarcode:
		return m.Barcode()
	case boleto.FieldGuideNumber:
		return m.GuideNumber()
	case boleto.FieldPixQrCodeText:
		return m.PixQrCodeText()
	case boleto.FieldStatus:
		return m.Status()
	case boleto.FieldFileName:
		return m.FileName()
	case boleto.FieldComments:
		return m.Comments()
	case boleto.FieldCreatedAt:
		return m.CreatedAt()
	case boleto.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BoletoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case boleto.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case boleto.FieldRecipient:
		return m.OldRecipient(ctx)
	case boleto.FieldDrawee:
		return m.OldDrawee(ctx)
	case boleto.FieldDocumentDate:
		return m.OldDocumentDate(ctx)
	case boleto.FieldDueDate:
		return m.OldDueDate(ctx)
	case boleto.FieldDocumentAmount:
		return m.OldDocumentAmount(ctx)
	case boleto.FieldAmount:
		return m.OldAmount(ctx)
	case boleto.FieldDiscount:
		return m.OldDiscount(ctx)
	case boleto.FieldInterestAndFines:
		return m.OldInterestAndFines(ctx)
	case boleto.FieldBarcode:
		return m.OldBarcode(ctx)
	case boleto.FieldGuideNumber:
		return m.OldGuideNumber(ctx)
	case boleto.FieldPixQrCodeText:
		return m.OldPixQrCodeText(ctx)
	case boleto.FieldStatus:
		return m.OldStatus(ctx)
	case boleto.FieldFileName:
		return m.OldFileName(ctx)
	case boleto.FieldComments:
		return m.OldComments(ctx)
	case boleto.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case boleto.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Boleto field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoletoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case boleto.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case boleto.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case boleto.FieldDrawee:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrawee(v)
		return nil
	case boleto.FieldDocumentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentDate(v)
		return nil
	case boleto.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case boleto.FieldDocumentAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentAmount(v)
		return nil
	case boleto.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case boleto.FieldDiscount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscount(v)
		return nil
	case boleto.FieldInterestAndFines:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterestAndFines(v)
		return nil
	case boleto.FieldBarcode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBarcode(v)
		return nil
	case boleto.FieldGuideNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuideNumber(v)
		return nil
	case boleto.FieldPixQrCodeText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPixQrCodeText(v)
		return nil
	case boleto.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case boleto.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case boleto.FieldComments:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComments(v)
		return nil
	case boleto.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case boleto.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Boleto field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BoletoMutation) AddedFields() []string {
	var fields []string
	if m.adddocument_amount != nil {
		fields = append(fields, boleto.FieldDocumentAmount)
	}
	if m.addamount != nil {
		fields = append(fields, boleto.FieldAmount)
	}
	if m.adddiscount != nil {
		fields = append(fields, boleto.FieldDiscount)
	}
	if m.addinterest_and_fines != nil {
		fields = append(fields, boleto.FieldInterestAndFines)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BoletoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case boleto.FieldDocumentAmount:
		return m.AddedDocumentAmount()
	case boleto.FieldAmount:
		return m.AddedAmount()
	case boleto.FieldDiscount:
		return m.AddedDiscount()
	case boleto.FieldInterestAndFines:
		return m.AddedInterestAndFines()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoletoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case boleto.FieldDocumentAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDocumentAmount(v)
		return nil
	case boleto.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case boleto.FieldDiscount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiscount(v)
		return nil
	case boleto.FieldInterestAndFines:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInterestAndFines(v)
		return nil
	}
	return fmt.Errorf("unknown Boleto numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BoletoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(boleto.FieldRecipient) {
		fields = append(fields, boleto.FieldRecipient)
	}
	if m.FieldCleared(boleto.FieldDrawee) {
		fields = append(fields, boleto.FieldDrawee)
	}
	if m.FieldCleared(boleto.FieldDocumentDate) {
		fields = append(fields, boleto.FieldDocumentDate)
	}
	if m.FieldCleared(boleto.FieldDueDate) {
		fields = append(fields, boleto.FieldDueDate)
	}
	if m.FieldCleared(boleto.FieldDocumentAmount) {
		fields = append(fields, boleto.FieldDocumentAmount)
	}
	if m.FieldCleared(boleto.FieldDiscount) {
		fields = append(fields, boleto.FieldDiscount)
	}
	if m.FieldCleared(boleto.FieldInterestAndFines) {
		fields = append(fields, boleto.FieldInterestAndFines)
	}
	if m.FieldCleared(boleto.FieldGuideNumber) {
		fields = append(fields, boleto.FieldGuideNumber)
	}
	if m.FieldCleared(boleto.FieldPixQrCodeText) {
		fields = append(fields, boleto.FieldPixQrCodeText)
	}
	if m.FieldCleared(boleto.FieldComments) {
		fields = append(fields, boleto.FieldComments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BoletoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BoletoMutation) ClearField(name string) error {
	switch name {
	case boleto.FieldRecipient:
		m.ClearRecipient()
		return nil
	case boleto.FieldDrawee:
		m.ClearDrawee()
		return nil
	case boleto.FieldDocumentDate:
		m.ClearDocumentDate()
		return nil
	case boleto.FieldDueDate:
		m.ClearDueDate()
		return nil
	case boleto.FieldDocumentAmount:
		m.ClearDocumentAmount()
		return nil
	case boleto.FieldDiscount:
		m.ClearDiscount()
		return nil
	case boleto.FieldInterestAndFines:
		m.ClearInterestAndFines()
		return nil
	case boleto.FieldGuideNumber:
		m.ClearGuideNumber()
		return nil
	case boleto.FieldPixQrCodeText:
		m.ClearPixQrCodeText()
		return nil
	case boleto.FieldComments:
		m.ClearComments()
		return nil
	}
	return fmt.Errorf("unknown Boleto nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BoletoMutation) ResetField(name string) error {
	switch name {
	case boleto.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case boleto.FieldRecipient:
		m.ResetRecipient()
		return nil
	case boleto.FieldDrawee:
		m.ResetDrawee()
		return nil
	case boleto.FieldDocumentDate:
		m.ResetDocumentDate()
		return nil
	case boleto.FieldDueDate:
		m.ResetDueDate()
		return nil
	case boleto.FieldDocumentAmount:
		m.ResetDocumentAmount()
		return nil
	case boleto.FieldAmount:
		m.ResetAmount()
		return nil
	case boleto.FieldDiscount:
		m.ResetDiscount()
		return nil
	case boleto.FieldInterestAndFines:
		m.ResetInterestAndFines()
		return nil
	case boleto.FieldBarcode:
		m.ResetBarcode()
		return nil
	case boleto.FieldGuideNumber:
		m.ResetGuideNumber()
		return nil
	case boleto.FieldPixQrCodeText:
		m.ResetPixQrCodeText()
		return nil
	case boleto.FieldStatus:
		m.ResetStatus()
		return nil
	case boleto.FieldFileName:
		m.ResetFileName()
		return nil
	case boleto.FieldComments:
		m.ResetComments()
		return nil
	case boleto.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case boleto.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Boleto field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BoletoMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.company != nil {
		edges = append(edges, boleto.EdgeCompany)
	}
	if m.files != nil {
		edges = append(edges, boleto.EdgeFiles)
	}
	if m.jobs != nil {
		edges = append(edges, boleto.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BoletoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case boleto.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case boleto.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case boleto.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BoletoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfiles != nil {
		edges = append(edges, boleto.EdgeFiles)
	}
	if m.removedjobs != nil {
		edges = append(edges, boleto.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BoletoMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case boleto.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case boleto.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BoletoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcompany {
		edges = append(edges, boleto.EdgeCompany)
	}
	if m.clearedfiles {
		edges = append(edges, boleto.EdgeFiles)
	}
	if m.clearedjobs {
		edges = append(edges, boleto.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BoletoMutation) EdgeCleared(name string) bool {
	switch name {
	case boleto.EdgeCompany:
		return m.clearedcompany
	case boleto.EdgeFiles:
		return m.clearedfiles
	case boleto.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BoletoMutation) ClearEdge(name string) error {
	switch name {
	case boleto.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Boleto unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BoletoMutation) ResetEdge(name string) error {
	switch name {
	case boleto.EdgeCompany:
		m.ResetCompany()
		return nil
	case boleto.EdgeFiles:
		m.ResetFiles()
		return nil
	case boleto.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Boleto edge %s", name)
}

// BoletoFileMutation represents an operation that mutates the BoletoFile nodes in the graph.
type BoletoFileMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	source_path    *string
	filename       *string
	file_ext       *string
	file_size      *int
	addfile_size   *int
	content_hash   *[]byte
	content        *[]byte
	uploaded_at    *time.Time
	clearedFields  map[string]struct{}
	company        *uuid.UUID
	clearedcompany bool
	boleto         *uuid.UUID
	clearedboleto  bool
	jobs           map[uuid.UUID]struct{}
	removedjobs    map[uuid.UUID]struct{}
	clearedjobs    bool
	done           bool
	oldValue       func(context.Context) (*BoletoFile, error)
	predicates     []predicate.BoletoFile
}

var _ ent.Mutation = (*BoletoFileMutation)(nil)

// boletofileOption allows management of the mutation configuration using functional options.
type boletofileOption func(*BoletoFileMutation)

// newBoletoFileMutation creates new mutation for the BoletoFile entity.
func newBoletoFileMutation(c config, op Op, opts ...boletofileOption) *BoletoFileMutation {
	m := &BoletoFileMutation{
		config:        c,
		op:            op,
		typ:           TypeBoletoFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBoletoFileID sets the ID field of the mutation.
func withBoletoFileID(id uuid.UUID) boletofileOption {
	return func(m *BoletoFileMutation) {
		var (
			err   error
			once  sync.Once
			value *BoletoFile
		)
		m.oldValue = func(ctx context.Context) (*BoletoFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BoletoFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBoletoFile sets the old BoletoFile of the mutation.
func withBoletoFile(node *BoletoFile) boletofileOption {
	return func(m *BoletoFileMutation) {
		m.oldValue = func(context.Context) (*BoletoFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BoletoFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BoletoFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BoletoFile entities.
func (m *BoletoFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BoletoFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BoletoFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BoletoFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *BoletoFileMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *BoletoFileMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the BoletoFile entity.
// If the BoletoFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoFileMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *BoletoFileMutation) ResetCompanyID() {
	m.company = nil
}

// SetBoletoID sets the "boleto_id" field.
func (m *BoletoFileMutation) SetBoletoID(u uuid.UUID) {
	m.boleto = &u
}

// BoletoID returns the value of the "boleto_id" field in the mutation.
func (m *BoletoFileMutation) BoletoID() (r uuid.UUID, exists bool) {
	v := m.boleto
	if v == nil {
		return
	}
	return *v, true
}

// OldBoletoID returns the old "boleto_id" field's value of the BoletoFile entity.
// If the BoletoFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoFileMutation) OldBoletoID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoletoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoletoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoletoID: %w", err)
	}
	return oldValue.BoletoID, nil
}

// ClearBoletoID clears the value of the "boleto_id" field.
func (m *BoletoFileMutation) ClearBoletoID() {
	m.boleto = nil
	m.clearedFields[boletofile.FieldBoletoID] = struct{}{}
}

// BoletoIDCleared returns if the "boleto_id" field was cleared in this mutation.
func (m *BoletoFileMutation) BoletoIDCleared() bool {
	_, ok := m.clearedFields[boletofile.FieldBoletoID]
	return ok
}

// ResetBoletoID resets all changes to the "boleto_id" field.
func (m *BoletoFileMutation) ResetBoletoID() {
	m.boleto = nil
	delete(m.clearedFields, boletofile.FieldBoletoID)
}

// SetSourcePath sets the "source_path" field.
func (m *BoletoFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *BoletoFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the BoletoFile entity.
// If the BoletoFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *BoletoFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFilename sets the "filename" field.
func (m *BoletoFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *BoletoFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the BoletoFile entity.
// If the BoletoFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *BoletoFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *BoletoFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *BoletoFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the BoletoFile entity.
// If the BoletoFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *BoletoFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *BoletoFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *BoletoFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the BoletoFile entity.
// If the BoletoFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
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
func (m *BoletoFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *BoletoFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *BoletoFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetContentHash sets the "content_hash" field.
func (m *BoletoFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *BoletoFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the BoletoFile entity.
// If the BoletoFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *BoletoFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetContent sets the "content" field.
func (m *BoletoFileMutation) SetContent(b []byte) {
	m.content = &b
}

// Content returns the value of the "content" field in the mutation.
func (m *BoletoFileMutation) Content() (r []byte, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the BoletoFile entity.
// If the BoletoFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoFileMutation) OldContent(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *BoletoFileMutation) ResetContent() {
	m.content = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *BoletoFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *BoletoFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the BoletoFile entity.
// If the BoletoFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoletoFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BoletoFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *BoletoFileMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[boletofile.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *BoletoFileMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *BoletoFileMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *BoletoFileMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// ClearBoleto clears the "boleto" edge to the Boleto entity.
func (m *BoletoFileMutation) ClearBoleto() {
	m.clearedboleto = true
	m.clearedFields[boletofile.FieldBoletoID] = struct{}{}
}

// BoletoCleared reports if the "boleto" edge to the Boleto entity was cleared.
func (m *BoletoFileMutation) BoletoCleared() bool {
	return m.BoletoIDCleared() || m.clearedboleto
}

// BoletoIDs returns the "boleto" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BoletoID instead. It exists only for internal usage by the builders.
func (m *BoletoFileMutation) BoletoIDs() (ids []uuid.UUID) {
	if id := m.boleto; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBoleto resets all changes to the "boleto" edge.
func (m *BoletoFileMutation) ResetBoleto() {
	m.boleto = nil
	m.clearedboleto = false
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *BoletoFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *BoletoFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *BoletoFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *BoletoFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *BoletoFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *BoletoFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *BoletoFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the BoletoFileMutation builder.
func (m *BoletoFileMutation) Where(ps ...predicate.BoletoFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BoletoFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BoletoFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BoletoFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BoletoFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BoletoFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BoletoFile).
func (m *BoletoFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BoletoFileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.company != nil {
		fields = append(fields, boletofile.FieldCompanyID)
	}
	if m.boleto != nil {
		fields = append(fields, boletofile.FieldBoletoID)
	}
	if m.source_path != nil {
		fields = append(fields, boletofile.FieldSourcePath)
	}
	if m.filename != nil {
		fields = append(fields, boletofile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, boletofile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, boletofile.FieldFileSize)
	}
	if m.content_hash != nil {
		fields = append(fields, boletofile.FieldContentHash)
	}
	if m.content != nil {
		fields = append(fields, boletofile.FieldContent)
	}
	if m.uploaded_at != nil {
		fields = append(fields, boletofile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BoletoFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case boletofile.FieldCompanyID:
		return m.CompanyID()
	case boletofile.FieldBoletoID:
		return m.BoletoID()
	case boletofile.FieldSourcePath:
		return m.SourcePath()
	case boletofile.FieldFilename:
		return m.Filename()
	case boletofile.FieldFileExt:
		return m.FileExt()
	case boletofile.FieldFileSize:
		return m.FileSize()
	case boletofile.FieldContentHash:
		return m.ContentHash()
	case boletofile.FieldContent:
		return m.Content()
	case boletofile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BoletoFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case boletofile.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case boletofile.FieldBoletoID:
		return m.OldBoletoID(ctx)
	case boletofile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case boletofile.FieldFilename:
		return m.OldFilename(ctx)
	case boletofile.FieldFileExt:
		return m.OldFileExt(ctx)
	case boletofile.FieldFileSize:
		return m.OldFileSize(ctx)
	case boletofile.FieldContentHash:
		return m.OldContentHash(ctx)
	case boletofile.FieldContent:
		return m.OldContent(ctx)
	case boletofile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BoletoFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoletoFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case boletofile.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case boletofile.FieldBoletoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoletoID(v)
		return nil
	case boletofile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case boletofile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case boletofile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case boletofile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case boletofile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case boletofile.FieldContent:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case boletofile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BoletoFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BoletoFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, boletofile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BoletoFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case boletofile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoletoFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case boletofile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown BoletoFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BoletoFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(boletofile.FieldBoletoID) {
		fields = append(fields, boletofile.FieldBoletoID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BoletoFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BoletoFileMutation) ClearField(name string) error {
	switch name {
	case boletofile.FieldBoletoID:
		m.ClearBoletoID()
		return nil
	}
	return fmt.Errorf("unknown BoletoFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BoletoFileMutation) ResetField(name string) error {
	switch name {
	case boletofile.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case boletofile.FieldBoletoID:
		m.ResetBoletoID()
		return nil
	case boletofile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case boletofile.FieldFilename:
		m.ResetFilename()
		return nil
	case boletofile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case boletofile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case boletofile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case boletofile.FieldContent:
		m.ResetContent()
		return nil
	case boletofile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown BoletoFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BoletoFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.company != nil {
		edges = append(edges, boletofile.EdgeCompany)
	}
	if m.boleto != nil {
		edges = append(edges, boletofile.EdgeBoleto)
	}
	if m.jobs != nil {
		edges = append(edges, boletofile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BoletoFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case boletofile.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case boletofile.EdgeBoleto:
		if id := m.boleto; id != nil {
			return []ent.Value{*id}
		}
	case boletofile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BoletoFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedjobs != nil {
		edges = append(edges, boletofile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BoletoFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case boletofile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BoletoFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcompany {
		edges = append(edges, boletofile.EdgeCompany)
	}
	if m.clearedboleto {
		edges = append(edges, boletofile.EdgeBoleto)
	}
	if m.clearedjobs {
		edges = append(edges, boletofile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BoletoFileMutation) EdgeCleared(name string) bool {
	switch name {
	case boletofile.EdgeCompany:
		return m.clearedcompany
	case boletofile.EdgeBoleto:
		return m.clearedboleto
	case boletofile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BoletoFileMutation) ClearEdge(name string) error {
	switch name {
	case boletofile.EdgeCompany:
		m.ClearCompany()
		return nil
	case boletofile.EdgeBoleto:
		m.ClearBoleto()
		return nil
	}
	return fmt.Errorf("unknown BoletoFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BoletoFileMutation) ResetEdge(name string) error {
	switch name {
	case boletofile.EdgeCompany:
		m.ResetCompany()
		return nil
	case boletofile.EdgeBoleto:
		m.ResetBoleto()
		return nil
	case boletofile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown BoletoFile edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	boletos        map[uuid.UUID]struct{}
	removedboletos map[uuid.UUID]struct{}
	clearedboletos bool
	files          map[uuid.UUID]struct{}
	removedfiles   map[uuid.UUID]struct{}
	clearedfiles   bool
	jobs           map[uuid.UUID]struct{}
	removedjobs    map[uuid.UUID]struct{}
	clearedjobs    bool
	done           bool
	oldValue       func(context.Context) (*Company, error)
	predicates     []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id uuid.UUID) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBoletoIDs adds the "boletos" edge to the Boleto entity by ids.
func (m *CompanyMutation) AddBoletoIDs(ids ...uuid.UUID) {
	if m.boletos == nil {
		m.boletos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.boletos[ids[i]] = struct{}{}
	}
}

// ClearBoletos clears the "boletos" edge to the Boleto entity.
func (m *CompanyMutation) ClearBoletos() {
	m.clearedboletos = true
}

// BoletosCleared reports if the "boletos" edge to the Boleto entity was cleared.
func (m *CompanyMutation) BoletosCleared() bool {
	return m.clearedboletos
}

// RemoveBoletoIDs removes the "boletos" edge to the Boleto entity by IDs.
func (m *CompanyMutation) RemoveBoletoIDs(ids ...uuid.UUID) {
	if m.removedboletos == nil {
		m.removedboletos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.boletos, ids[i])
		m.removedboletos[ids[i]] = struct{}{}
	}
}

// RemovedBoletos returns the removed IDs of the "boletos" edge to the Boleto entity.
func (m *CompanyMutation) RemovedBoletosIDs() (ids []uuid.UUID) {
	for id := range m.removedboletos {
		ids = append(ids, id)
	}
	return
}

// BoletosIDs returns the "boletos" edge IDs in the mutation.
func (m *CompanyMutation) BoletosIDs() (ids []uuid.UUID) {
	for id := range m.boletos {
		ids = append(ids, id)
	}
	return
}

// ResetBoletos resets all changes to the "boletos" edge.
func (m *CompanyMutation) ResetBoletos() {
	m.boletos = nil
	m.clearedboletos = false
	m.removedboletos = nil
}

// AddFileIDs adds the "files" edge to the BoletoFile entity by ids.
func (m *CompanyMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the BoletoFile entity.
func (m *CompanyMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the BoletoFile entity was cleared.
func (m *CompanyMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the BoletoFile entity by IDs.
func (m *CompanyMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the BoletoFile entity.
func (m *CompanyMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *CompanyMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *CompanyMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *CompanyMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *CompanyMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *CompanyMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *CompanyMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *CompanyMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *CompanyMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *CompanyMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.boletos != nil {
		edges = append(edges, company.EdgeBoletos)
	}
	if m.files != nil {
		edges = append(edges, company.EdgeFiles)
	}
	if m.jobs != nil {
		edges = append(edges, company.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeBoletos:
		ids := make([]ent.Value, 0, len(m.boletos))
		for id := range m.boletos {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedboletos != nil {
		edges = append(edges, company.EdgeBoletos)
	}
	if m.removedfiles != nil {
		edges = append(edges, company.EdgeFiles)
	}
	if m.removedjobs != nil {
		edges = append(edges, company.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeBoletos:
		ids := make([]ent.Value, 0, len(m.removedboletos))
		for id := range m.removedboletos {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedboletos {
		edges = append(edges, company.EdgeBoletos)
	}
	if m.clearedfiles {
		edges = append(edges, company.EdgeFiles)
	}
	if m.clearedjobs {
		edges = append(edges, company.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeBoletos:
		return m.clearedboletos
	case company.EdgeFiles:
		return m.clearedfiles
	case company.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeBoletos:
		m.ResetBoletos()
		return nil
	case company.EdgeFiles:
		m.ResetFiles()
		return nil
	case company.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	format                   *string
	strategy                 *string
	started_at               *time.Time
	finished_at              *time.Time
	status                   *string
	error_message            *string
	extraction_confidence    *float32
	addextraction_confidence *float32
	source_text              *string
	extracted_json           *[]uint8
	appendextracted_json     []uint8
	clearedFields            map[string]struct{}
	company                  *uuid.UUID
	clearedcompany           bool
	file                     *uuid.UUID
	clearedfile              bool
	boleto                   *uuid.UUID
	clearedboleto            bool
	done                     bool
	oldValue                 func(context.Context) (*ExtractJob, error)
	predicates               []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ExtractJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ExtractJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ExtractJobMutation) ResetFileID() {
	m.file = nil
}

// SetCompanyID sets the "company_id" field.
func (m *ExtractJobMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *ExtractJobMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *ExtractJobMutation) ResetCompanyID() {
	m.company = nil
}

// SetBoletoID sets the "boleto_id" field.
func (m *ExtractJobMutation) SetBoletoID(u uuid.UUID) {
	m.boleto = &u
}

// BoletoID returns the value of the "boleto_id" field in the mutation.
func (m *ExtractJobMutation) BoletoID() (r uuid.UUID, exists bool) {
	v := m.boleto
	if v == nil {
		return
	}
	return *v, true
}

// OldBoletoID returns the old "boleto_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldBoletoID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoletoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoletoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoletoID: %w", err)
	}
	return oldValue.BoletoID, nil
}

// ClearBoletoID clears the value of the "boleto_id" field.
func (m *ExtractJobMutation) ClearBoletoID() {
	m.boleto = nil
	m.clearedFields[extractjob.FieldBoletoID] = struct{}{}
}

// BoletoIDCleared returns if the "boleto_id" field was cleared in this mutation.
func (m *ExtractJobMutation) BoletoIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldBoletoID]
	return ok
}

// ResetBoletoID resets all changes to the "boleto_id" field.
func (m *ExtractJobMutation) ResetBoletoID() {
	m.boleto = nil
	delete(m.clearedFields, extractjob.FieldBoletoID)
}

// SetFormat sets the "format" field.
func (m *ExtractJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractJobMutation) ResetFormat() {
	m.format = nil
}

// SetStrategy sets the "strategy" field.
func (m *ExtractJobMutation) SetStrategy(s string) {
	m.strategy = &s
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *ExtractJobMutation) Strategy() (r string, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *ExtractJobMutation) ResetStrategy() {
	m.strategy = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *ExtractJobMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *ExtractJobMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *ExtractJobMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *ExtractJobMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *ExtractJobMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[extractjob.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *ExtractJobMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, extractjob.FieldExtractionConfidence)
}

// SetSourceText sets the "source_text" field.
func (m *ExtractJobMutation) SetSourceText(s string) {
	m.source_text = &s
}

// SourceText returns the value of the "source_text" field in the mutation.
func (m *ExtractJobMutation) SourceText() (r string, exists bool) {
	v := m.source_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceText returns the old "source_text" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldSourceText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceText: %w", err)
	}
	return oldValue.SourceText, nil
}

// ClearSourceText clears the value of the "source_text" field.
func (m *ExtractJobMutation) ClearSourceText() {
	m.source_text = nil
	m.clearedFields[extractjob.FieldSourceText] = struct{}{}
}

// SourceTextCleared returns if the "source_text" field was cleared in this mutation.
func (m *ExtractJobMutation) SourceTextCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldSourceText]
	return ok
}

// ResetSourceText resets all changes to the "source_text" field.
func (m *ExtractJobMutation) ResetSourceText() {
	m.source_text = nil
	delete(m.clearedFields, extractjob.FieldSourceText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ExtractJobMutation) SetExtractedJSON(u []uint8) {
	m.extracted_json = &u
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ExtractJobMutation) ExtractedJSON() (r []uint8, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractedJSON(ctx context.Context) (v []uint8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds u to the "extracted_json" field.
func (m *ExtractJobMutation) AppendExtractedJSON(u []uint8) {
	m.appendextracted_json = append(m.appendextracted_json, u...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ExtractJobMutation) AppendedExtractedJSON() ([]uint8, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ExtractJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[extractjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ExtractJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, extractjob.FieldExtractedJSON)
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *ExtractJobMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[extractjob.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *ExtractJobMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *ExtractJobMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// ClearFile clears the "file" edge to the BoletoFile entity.
func (m *ExtractJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extractjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the BoletoFile entity was cleared.
func (m *ExtractJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearBoleto clears the "boleto" edge to the Boleto entity.
func (m *ExtractJobMutation) ClearBoleto() {
	m.clearedboleto = true
	m.clearedFields[extractjob.FieldBoletoID] = struct{}{}
}

// BoletoCleared reports if the "boleto" edge to the Boleto entity was cleared.
func (m *ExtractJobMutation) BoletoCleared() bool {
	return m.BoletoIDCleared() || m.clearedboleto
}

// BoletoIDs returns the "boleto" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BoletoID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) BoletoIDs() (ids []uuid.UUID) {
	if id := m.boleto; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBoleto resets all changes to the "boleto" edge.
func (m *ExtractJobMutation) ResetBoleto() {
	m.boleto = nil
	m.clearedboleto = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.file != nil {
		fields = append(fields, extractjob.FieldFileID)
	}
	if m.company != nil {
		fields = append(fields, extractjob.FieldCompanyID)
	}
	if m.boleto != nil {
		fields = append(fields, extractjob.FieldBoletoID)
	}
	if m.format != nil {
		fields = append(fields, extractjob.FieldFormat)
	}
	if m.strategy != nil {
		fields = append(fields, extractjob.FieldStrategy)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	if m.source_text != nil {
		fields = append(fields, extractjob.FieldSourceText)
	}
	if m.extracted_json != nil {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldFileID:
		return m.FileID()
	case extractjob.FieldCompanyID:
		return m.CompanyID()
	case extractjob.FieldBoletoID:
		return m.BoletoID()
	case extractjob.FieldFormat:
		return m.Format()
	case extractjob.FieldStrategy:
		return m.Strategy()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case extractjob.FieldSourceText:
		return m.SourceText()
	case extractjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldFileID:
		return m.OldFileID(ctx)
	case extractjob.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case extractjob.FieldBoletoID:
		return m.OldBoletoID(ctx)
	case extractjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractjob.FieldStrategy:
		return m.OldStrategy(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case extractjob.FieldSourceText:
		return m.OldSourceText(ctx)
	case extractjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case extractjob.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case extractjob.FieldBoletoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoletoID(v)
		return nil
	case extractjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractjob.FieldStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case extractjob.FieldSourceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceText(v)
		return nil
	case extractjob.FieldExtractedJSON:
		v, ok := value.([]uint8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldBoletoID) {
		fields = append(fields, extractjob.FieldBoletoID)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldExtractionConfidence) {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	if m.FieldCleared(extractjob.FieldSourceText) {
		fields = append(fields, extractjob.FieldSourceText)
	}
	if m.FieldCleared(extractjob.FieldExtractedJSON) {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldBoletoID:
		m.ClearBoletoID()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case extractjob.FieldSourceText:
		m.ClearSourceText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldFileID:
		m.ResetFileID()
		return nil
	case extractjob.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case extractjob.FieldBoletoID:
		m.ResetBoletoID()
		return nil
	case extractjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractjob.FieldStrategy:
		m.ResetStrategy()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case extractjob.FieldSourceText:
		m.ResetSourceText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.company != nil {
		edges = append(edges, extractjob.EdgeCompany)
	}
	if m.file != nil {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.boleto != nil {
		edges = append(edges, extractjob.EdgeBoleto)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeBoleto:
		if id := m.boleto; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcompany {
		edges = append(edges, extractjob.EdgeCompany)
	}
	if m.clearedfile {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.clearedboleto {
		edges = append(edges, extractjob.EdgeBoleto)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeCompany:
		return m.clearedcompany
	case extractjob.EdgeFile:
		return m.clearedfile
	case extractjob.EdgeBoleto:
		return m.clearedboleto
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeCompany:
		m.ClearCompany()
		return nil
	case extractjob.EdgeFile:
		m.ClearFile()
		return nil
	case extractjob.EdgeBoleto:
		m.ClearBoleto()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeCompany:
		m.ResetCompany()
		return nil
	case extractjob.EdgeFile:
		m.ResetFile()
		return nil
	case extractjob.EdgeBoleto:
		m.ResetBoleto()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}
