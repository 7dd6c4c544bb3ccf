// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractionErrorsColumns holds the columns for the "extraction_errors" table.
	ExtractionErrorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_kind", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "severity", Type: field.TypeString, Default: "error"},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "resume_id", Type: field.TypeUUID},
	}
	// ExtractionErrorsTable holds the schema information for the "extraction_errors" table.
	ExtractionErrorsTable = &schema.Table{
		Name:       "extraction_errors",
		Columns:    ExtractionErrorsColumns,
		PrimaryKey: []*schema.Column{ExtractionErrorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_errors_resumes_errors",
				Columns:    []*schema.Column{ExtractionErrorsColumns[7]},
				RefColumns: []*schema.Column{ResumesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionerror_resume_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionErrorsColumns[7]},
			},
			{
				Name:    "extractionerror_severity_resolved",
				Unique:  false,
				Columns: []*schema.Column{ExtractionErrorsColumns[3], ExtractionErrorsColumns[4]},
			},
			{
				Name:    "extractionerror_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionErrorsColumns[6]},
			},
		},
	}
	// ResumesColumns holds the columns for the "resumes" table.
	ResumesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_hash", Type: field.TypeString, Unique: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "file_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "structured_data", Type: field.TypeJSON, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// ResumesTable holds the schema information for the "resumes" table.
	ResumesTable = &schema.Table{
		Name:       "resumes",
		Columns:    ResumesColumns,
		PrimaryKey: []*schema.Column{ResumesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resume_status",
				Unique:  false,
				Columns: []*schema.Column{ResumesColumns[6]},
			},
			{
				Name:    "resume_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ResumesColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractionErrorsTable,
		ResumesTable,
	}
)

func init() {
	ExtractionErrorsTable.ForeignKeys[0].RefTable = ResumesTable
	ExtractionErrorsTable.Annotation = &entsql.Annotation{
		Table: "extraction_errors",
	}
	ResumesTable.Annotation = &entsql.Annotation{
		Table: "resumes",
	}
}
