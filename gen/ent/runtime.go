// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/brpayflow/boleto-tracker/db/ent/schema"
	"github.com/brpayflow/boleto-tracker/gen/ent/boleto"
	"github.com/brpayflow/boleto-tracker/gen/ent/boletofile"
	"github.com/brpayflow/boleto-tracker/gen/ent/company"
	"github.com/brpayflow/boleto-tracker/gen/ent/extractjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	boletoFields := schema.Boleto{}.Fields()
	_ = boletoFields
	// boletoDescAmount is the schema descriptor for amount field.
	boletoDescAmount := boletoFields[7].Descriptor()
	// boleto.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	boleto.AmountValidator = boletoDescAmount.Validators[0].(func(float64) error)
	// boletoDescBarcode is the schema descriptor for barcode field.
	boletoDescBarcode := boletoFields[10].Descriptor()
	// boleto.BarcodeValidator is a validator for the "barcode" field. It is called by the builders before save.
	boleto.BarcodeValidator = boletoDescBarcode.Validators[0].(func(string) error)
	// boletoDescStatus is the schema descriptor for status field.
	boletoDescStatus := boletoFields[13].Descriptor()
	// boleto.DefaultStatus holds the default value on creation for the status field.
	boleto.DefaultStatus = boletoDescStatus.Default.(string)
	// boleto.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	boleto.StatusValidator = boletoDescStatus.Validators[0].(func(string) error)
	// boletoDescFileName is the schema descriptor for file_name field.
	boletoDescFileName := boletoFields[14].Descriptor()
	// boleto.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	boleto.FileNameValidator = boletoDescFileName.Validators[0].(func(string) error)
	// boletoDescCreatedAt is the schema descriptor for created_at field.
	boletoDescCreatedAt := boletoFields[16].Descriptor()
	// boleto.DefaultCreatedAt holds the default value on creation for the created_at field.
	boleto.DefaultCreatedAt = boletoDescCreatedAt.Default.(func() time.Time)
	// boletoDescUpdatedAt is the schema descriptor for updated_at field.
	boletoDescUpdatedAt := boletoFields[17].Descriptor()
	// boleto.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	boleto.DefaultUpdatedAt = boletoDescUpdatedAt.Default.(func() time.Time)
	// boleto.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	boleto.UpdateDefaultUpdatedAt = boletoDescUpdatedAt.UpdateDefault.(func() time.Time)
	// boletoDescID is the schema descriptor for id field.
	boletoDescID := boletoFields[0].Descriptor()
	// boleto.DefaultID holds the default value on creation for the id field.
	boleto.DefaultID = boletoDescID.Default.(func() uuid.UUID)
	boletofileFields := schema.BoletoFile{}.Fields()
	_ = boletofileFields
	// boletofileDescSourcePath is the schema descriptor for source_path field.
	boletofileDescSourcePath := boletofileFields[3].Descriptor()
	// boletofile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	boletofile.SourcePathValidator = boletofileDescSourcePath.Validators[0].(func(string) error)
	// boletofileDescFilename is the schema descriptor for filename field.
	boletofileDescFilename := boletofileFields[4].Descriptor()
	// boletofile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	boletofile.FilenameValidator = boletofileDescFilename.Validators[0].(func(string) error)
	// boletofileDescFileExt is the schema descriptor for file_ext field.
	boletofileDescFileExt := boletofileFields[5].Descriptor()
	// boletofile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	boletofile.FileExtValidator = boletofileDescFileExt.Validators[0].(func(string) error)
	// boletofileDescFileSize is the schema descriptor for file_size field.
	boletofileDescFileSize := boletofileFields[6].Descriptor()
	// boletofile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	boletofile.FileSizeValidator = boletofileDescFileSize.Validators[0].(func(int) error)
	// boletofileDescContentHash is the schema descriptor for content_hash field.
	boletofileDescContentHash := boletofileFields[7].Descriptor()
	// boletofile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	boletofile.ContentHashValidator = boletofileDescContentHash.Validators[0].(func([]byte) error)
	// boletofileDescUploadedAt is the schema descriptor for uploaded_at field.
	boletofileDescUploadedAt := boletofileFields[9].Descriptor()
	// boletofile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	boletofile.DefaultUploadedAt = boletofileDescUploadedAt.Default.(func() time.Time)
	// boletofileDescID is the schema descriptor for id field.
	boletofileDescID := boletofileFields[0].Descriptor()
	// boletofile.DefaultID holds the default value on creation for the id field.
	boletofile.DefaultID = boletofileDescID.Default.(func() uuid.UUID)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[2].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[3].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyFields[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = extractjobDescFormat.Validators[0].(func(string) error)
	// extractjobDescStrategy is the schema descriptor for strategy field.
	extractjobDescStrategy := extractjobFields[5].Descriptor()
	// extractjob.DefaultStrategy holds the default value on creation for the strategy field.
	extractjob.DefaultStrategy = extractjobDescStrategy.Default.(string)
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[6].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[8].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
}
