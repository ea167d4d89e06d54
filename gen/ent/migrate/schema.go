// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BoletosColumns holds the columns for the "boletos" table.
	BoletosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "recipient", Type: field.TypeString, Nullable: true},
		{Name: "drawee", Type: field.TypeString, Nullable: true},
		{Name: "document_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "document_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "discount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "interest_and_fines", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "barcode", Type: field.TypeString},
		{Name: "guide_number", Type: field.TypeString, Nullable: true},
		{Name: "pix_qr_code_text", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "TO_PAY"},
		{Name: "file_name", Type: field.TypeString},
		{Name: "comments", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// BoletosTable holds the schema information for the "boletos" table.
	BoletosTable = &schema.Table{
		Name:       "boletos",
		Columns:    BoletosColumns,
		PrimaryKey: []*schema.Column{BoletosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "boletos_companies_boletos",
				Columns:    []*schema.Column{BoletosColumns[17]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "boleto_company_id_barcode",
				Unique:  true,
				Columns: []*schema.Column{BoletosColumns[17], BoletosColumns[9]},
			},
			{
				Name:    "boleto_company_id_status",
				Unique:  false,
				Columns: []*schema.Column{BoletosColumns[17], BoletosColumns[12]},
			},
			{
				Name:    "boleto_company_id_due_date",
				Unique:  false,
				Columns: []*schema.Column{BoletosColumns[17], BoletosColumns[4]},
			},
		},
	}
	// BoletoFilesColumns holds the columns for the "boleto_files" table.
	BoletoFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "content", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "boleto_id", Type: field.TypeUUID, Nullable: true},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// BoletoFilesTable holds the schema information for the "boleto_files" table.
	BoletoFilesTable = &schema.Table{
		Name:       "boleto_files",
		Columns:    BoletoFilesColumns,
		PrimaryKey: []*schema.Column{BoletoFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "boleto_files_boletos_files",
				Columns:    []*schema.Column{BoletoFilesColumns[8]},
				RefColumns: []*schema.Column{BoletosColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "boleto_files_companies_files",
				Columns:    []*schema.Column{BoletoFilesColumns[9]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "boletofile_company_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{BoletoFilesColumns[9], BoletoFilesColumns[5]},
			},
			{
				Name:    "boletofile_company_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{BoletoFilesColumns[9], BoletoFilesColumns[7]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// ExtractJobsColumns holds the columns for the "extract_jobs" table.
	ExtractJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "strategy", Type: field.TypeString, Default: "rules"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "source_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "boleto_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// ExtractJobsTable holds the schema information for the "extract_jobs" table.
	ExtractJobsTable = &schema.Table{
		Name:       "extract_jobs",
		Columns:    ExtractJobsColumns,
		PrimaryKey: []*schema.Column{ExtractJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_jobs_boletos_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[10]},
				RefColumns: []*schema.Column{BoletosColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_jobs_boleto_files_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[11]},
				RefColumns: []*schema.Column{BoletoFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_jobs_companies_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[12]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_company_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[12], ExtractJobsColumns[3]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BoletosTable,
		BoletoFilesTable,
		CompaniesTable,
		ExtractJobsTable,
	}
)

func init() {
	BoletosTable.ForeignKeys[0].RefTable = CompaniesTable
	BoletosTable.Annotation = &entsql.Annotation{
		Table: "boletos",
	}
	BoletoFilesTable.ForeignKeys[0].RefTable = BoletosTable
	BoletoFilesTable.ForeignKeys[1].RefTable = CompaniesTable
	BoletoFilesTable.Annotation = &entsql.Annotation{
		Table: "boleto_files",
	}
	CompaniesTable.Annotation = &entsql.Annotation{
		Table: "companies",
	}
	ExtractJobsTable.ForeignKeys[0].RefTable = BoletosTable
	ExtractJobsTable.ForeignKeys[1].RefTable = BoletoFilesTable
	ExtractJobsTable.ForeignKeys[2].RefTable = CompaniesTable
	ExtractJobsTable.Annotation = &entsql.Annotation{
		Table: "extract_jobs",
	}
}
