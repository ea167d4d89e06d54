// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brpayflow/boleto-tracker/gen/ent/boleto"
	"github.com/brpayflow/boleto-tracker/gen/ent/boletofile"
	"github.com/brpayflow/boleto-tracker/gen/ent/company"
	"github.com/google/uuid"
)

// BoletoFile is the model entity for the BoletoFile schema.
type BoletoFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// BoletoID holds the value of the "boleto_id" field.
	BoletoID *uuid.UUID `json:"boleto_id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// Content holds the value of the "content" field.
	Content []byte `json:"content,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BoletoFileQuery when eager-loading is set.
	Edges        BoletoFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BoletoFileEdges holds the relations/edges for other nodes in the graph.
type BoletoFileEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// Boleto holds the value of the boleto edge.
	Boleto *Boleto `json:"boleto,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BoletoFileEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// BoletoOrErr returns the Boleto value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BoletoFileEdges) BoletoOrErr() (*Boleto, error) {
	if e.Boleto != nil {
		return e.Boleto, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: boleto.Label}
	}
	return nil, &NotLoadedError{edge: "boleto"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e BoletoFileEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BoletoFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case boletofile.FieldBoletoID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case boletofile.FieldContentHash, boletofile.FieldContent:
			values[i] = new([]byte)
		case boletofile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case boletofile.FieldSourcePath, boletofile.FieldFilename, boletofile.FieldFileExt:
			values[i] = new(sql.NullString)
		case boletofile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case boletofile.FieldID, boletofile.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BoletoFile fields.
func (_m *BoletoFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case boletofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case boletofile.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case boletofile.FieldBoletoID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field boleto_id", values[i])
			} else if value.Valid {
				_m.BoletoID = new(uuid.UUID)
				*_m.BoletoID = *value.S.(*uuid.UUID)
			}
		case boletofile.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case boletofile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case boletofile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case boletofile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case boletofile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case boletofile.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil {
				_m.Content = *value
			}
		case boletofile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BoletoFile.
// This includes values selected through modifiers, order, etc.
func (_m *BoletoFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the BoletoFile entity.
func (_m *BoletoFile) QueryCompany() *CompanyQuery {
	return NewBoletoFileClient(_m.config).QueryCompany(_m)
}

// QueryBoleto queries the "boleto" edge of the BoletoFile entity.
func (_m *BoletoFile) QueryBoleto() *BoletoQuery {
	return NewBoletoFileClient(_m.config).QueryBoleto(_m)
}

// QueryJobs queries the "jobs" edge of the BoletoFile entity.
func (_m *BoletoFile) QueryJobs() *ExtractJobQuery {
	return NewBoletoFileClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this BoletoFile.
// Note that you need to call BoletoFile.Unwrap() before calling this method if this BoletoFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BoletoFile) Update() *BoletoFileUpdateOne {
	return NewBoletoFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BoletoFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BoletoFile) Unwrap() *BoletoFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BoletoFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BoletoFile) String() string {
	var builder strings.Builder
	builder.WriteString("BoletoFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	if v := _m.BoletoID; v != nil {
		builder.WriteString("boleto_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BoletoFiles is a parsable slice of BoletoFile.
type BoletoFiles []*BoletoFile
