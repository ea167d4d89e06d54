// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brpayflow/boleto-tracker/gen/ent/boleto"
	"github.com/brpayflow/boleto-tracker/gen/ent/company"
	"github.com/google/uuid"
)

// Boleto is the model entity for the Boleto schema.
type Boleto struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// Recipient holds the value of the "recipient" field.
	Recipient *string `json:"recipient,omitempty"`
	// Drawee holds the value of the "drawee" field.
	Drawee *string `json:"drawee,omitempty"`
	// DocumentDate holds the value of the "document_date" field.
	DocumentDate *time.Time `json:"document_date,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// DocumentAmount holds the value of the "document_amount" field.
	DocumentAmount *float64 `json:"document_amount,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Discount holds the value of the "discount" field.
	Discount *float64 `json:"discount,omitempty"`
	// InterestAndFines holds the value of the "interest_and_fines" field.
	InterestAndFines *float64 `json:"interest_and_fines,omitempty"`
	// Barcode holds the value of the "barcode" field.
	Barcode string `json:"barcode,omitempty"`
	// GuideNumber holds the value of the "guide_number" field.
	GuideNumber *string `json:"guide_number,omitempty"`
	// PixQrCodeText holds the value of the "pix_qr_code_text" field.
	PixQrCodeText *string `json:"pix_qr_code_text,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// Comments holds the value of the "comments" field.
	Comments *string `json:"comments,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BoletoQuery when eager-loading is set.
	Edges        BoletoEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BoletoEdges holds the relations/edges for other nodes in the graph.
type BoletoEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// Files holds the value of the files edge.
	Files []*BoletoFile `json:"files,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BoletoEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e BoletoEdges) FilesOrErr() ([]*BoletoFile, error) {
	if e.loadedTypes[1] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e BoletoEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Boleto) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case boleto.FieldDocumentAmount, boleto.FieldAmount, boleto.FieldDiscount, boleto.FieldInterestAndFines:
			values[i] = new(sql.NullFloat64)
		case boleto.FieldRecipient, boleto.FieldDrawee, boleto.FieldBarcode, boleto.FieldGuideNumber, boleto.FieldPixQrCodeText, boleto.FieldStatus, boleto.FieldFileName, boleto.FieldComments:
			values[i] = new(sql.NullString)
		case boleto.FieldDocumentDate, boleto.FieldDueDate, boleto.FieldCreatedAt, boleto.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case boleto.FieldID, boleto.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Boleto fields.
func (_m *Boleto) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case boleto.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case boleto.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case boleto.FieldRecipient:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient", values[i])
			} else if value.Valid {
				_m.Recipient = new(string)
				*_m.Recipient = value.String
			}
		case boleto.FieldDrawee:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field drawee", values[i])
			} else if value.Valid {
				_m.Drawee = new(string)
				*_m.Drawee = value.String
			}
		case boleto.FieldDocumentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field document_date", values[i])
			} else if value.Valid {
				_m.DocumentDate = new(time.Time)
				*_m.DocumentDate = value.Time
			}
		case boleto.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case boleto.FieldDocumentAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field document_amount", values[i])
			} else if value.Valid {
				_m.DocumentAmount = new(float64)
				*_m.DocumentAmount = value.Float64
			}
		case boleto.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case boleto.FieldDiscount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discount", values[i])
			} else if value.Valid {
				_m.Discount = new(float64)
				*_m.Discount = value.Float64
			}
		case boleto.FieldInterestAndFines:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field interest_and_fines", values[i])
			} else if value.Valid {
				_m.InterestAndFines = new(float64)
				*_m.InterestAndFines = value.Float64
			}
		case boleto.FieldBarcode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field barcode", values[i])
			} else if value.Valid {
				_m.Barcode = value.String
			}
		case boleto.FieldGuideNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guide_number", values[i])
			} else if value.Valid {
				_m.GuideNumber = new(string)
				*_m.GuideNumber = value.String
			}
		case boleto.FieldPixQrCodeText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pix_qr_code_text", values[i])
			} else if value.Valid {
				_m.PixQrCodeText = new(string)
				*_m.PixQrCodeText = value.String
			}
		case boleto.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case boleto.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case boleto.FieldComments:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comments", values[i])
			} else if value.Valid {
				_m.Comments = new(string)
				*_m.Comments = value.String
			}
		case boleto.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case boleto.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Boleto.
// This includes values selected through modifiers, order, etc.
func (_m *Boleto) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the Boleto entity.
func (_m *Boleto) QueryCompany() *CompanyQuery {
	return NewBoletoClient(_m.config).QueryCompany(_m)
}

// QueryFiles queries the "files" edge of the Boleto entity.
func (_m *Boleto) QueryFiles() *BoletoFileQuery {
	return NewBoletoClient(_m.config).QueryFiles(_m)
}

// QueryJobs queries the "jobs" edge of the Boleto entity.
func (_m *Boleto) QueryJobs() *ExtractJobQuery {
	return NewBoletoClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Boleto.
// Note that you need to call Boleto.Unwrap() before calling this method if this Boleto
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Boleto) Update() *BoletoUpdateOne {
	return NewBoletoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Boleto entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Boleto) Unwrap() *Boleto {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Boleto is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Boleto) String() string {
	var builder strings.Builder
	builder.WriteString("Boleto(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	if v := _m.Recipient; v != nil {
		builder.WriteString("recipient=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Drawee; v != nil {
		builder.WriteString("drawee=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DocumentDate; v != nil {
		builder.WriteString("document_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DocumentAmount; v != nil {
		builder.WriteString("document_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	if v := _m.Discount; v != nil {
		builder.WriteString("discount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.InterestAndFines; v != nil {
		builder.WriteString("interest_and_fines=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("barcode=")
	builder.WriteString(_m.Barcode)
	builder.WriteString(", ")
	if v := _m.GuideNumber; v != nil {
		builder.WriteString("guide_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PixQrCodeText; v != nil {
		builder.WriteString("pix_qr_code_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	if v := _m.Comments; v != nil {
		builder.WriteString("comments=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Boletos is a parsable slice of Boleto.
type Boletos []*Boleto
