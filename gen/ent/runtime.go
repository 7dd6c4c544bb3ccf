// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirewise/resume-ingest/db/ent/schema"
	"github.com/hirewise/resume-ingest/gen/ent/extractionerror"
	"github.com/hirewise/resume-ingest/gen/ent/resume"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractionerrorFields := schema.ExtractionError{}.Fields()
	_ = extractionerrorFields
	// extractionerrorDescFieldKind is the schema descriptor for field_kind field.
	extractionerrorDescFieldKind := extractionerrorFields[2].Descriptor()
	// extractionerror.FieldKindValidator is a validator for the "field_kind" field. It is called by the builders before save.
	extractionerror.FieldKindValidator = func() func(string) error {
		validators := extractionerrorDescFieldKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(field_kind string) error {
			for _, fn := range fns {
				if err := fn(field_kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionerrorDescMessage is the schema descriptor for message field.
	extractionerrorDescMessage := extractionerrorFields[3].Descriptor()
	// extractionerror.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	extractionerror.MessageValidator = extractionerrorDescMessage.Validators[0].(func(string) error)
	// extractionerrorDescSeverity is the schema descriptor for severity field.
	extractionerrorDescSeverity := extractionerrorFields[4].Descriptor()
	// extractionerror.DefaultSeverity holds the default value on creation for the severity field.
	extractionerror.DefaultSeverity = extractionerrorDescSeverity.Default.(string)
	// extractionerror.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	extractionerror.SeverityValidator = extractionerrorDescSeverity.Validators[0].(func(string) error)
	// extractionerrorDescResolved is the schema descriptor for resolved field.
	extractionerrorDescResolved := extractionerrorFields[5].Descriptor()
	// extractionerror.DefaultResolved holds the default value on creation for the resolved field.
	extractionerror.DefaultResolved = extractionerrorDescResolved.Default.(bool)
	// extractionerrorDescOccurredAt is the schema descriptor for occurred_at field.
	extractionerrorDescOccurredAt := extractionerrorFields[7].Descriptor()
	// extractionerror.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	extractionerror.DefaultOccurredAt = extractionerrorDescOccurredAt.Default.(func() time.Time)
	// extractionerrorDescID is the schema descriptor for id field.
	extractionerrorDescID := extractionerrorFields[0].Descriptor()
	// extractionerror.DefaultID holds the default value on creation for the id field.
	extractionerror.DefaultID = extractionerrorDescID.Default.(func() uuid.UUID)
	resumeFields := schema.Resume{}.Fields()
	_ = resumeFields
	// resumeDescFileHash is the schema descriptor for file_hash field.
	resumeDescFileHash := resumeFields[1].Descriptor()
	// resume.FileHashValidator is a validator for the "file_hash" field. It is called by the builders before save.
	resume.FileHashValidator = resumeDescFileHash.Validators[0].(func(string) error)
	// resumeDescFileName is the schema descriptor for file_name field.
	resumeDescFileName := resumeFields[2].Descriptor()
	// resume.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	resume.FileNameValidator = resumeDescFileName.Validators[0].(func(string) error)
	// resumeDescFilePath is the schema descriptor for file_path field.
	resumeDescFilePath := resumeFields[3].Descriptor()
	// resume.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	resume.FilePathValidator = resumeDescFilePath.Validators[0].(func(string) error)
	// resumeDescFileSize is the schema descriptor for file_size field.
	resumeDescFileSize := resumeFields[4].Descriptor()
	// resume.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	resume.FileSizeValidator = resumeDescFileSize.Validators[0].(func(int) error)
	// resumeDescFileType is the schema descriptor for file_type field.
	resumeDescFileType := resumeFields[5].Descriptor()
	// resume.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	resume.FileTypeValidator = resumeDescFileType.Validators[0].(func(string) error)
	// resumeDescStatus is the schema descriptor for status field.
	resumeDescStatus := resumeFields[6].Descriptor()
	// resume.DefaultStatus holds the default value on creation for the status field.
	resume.DefaultStatus = resumeDescStatus.Default.(string)
	// resume.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	resume.StatusValidator = resumeDescStatus.Validators[0].(func(string) error)
	// resumeDescUploadedAt is the schema descriptor for uploaded_at field.
	resumeDescUploadedAt := resumeFields[9].Descriptor()
	// resume.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	resume.DefaultUploadedAt = resumeDescUploadedAt.Default.(func() time.Time)
	// resumeDescID is the schema descriptor for id field.
	resumeDescID := resumeFields[0].Descriptor()
	// resume.DefaultID holds the default value on creation for the id field.
	resume.DefaultID = resumeDescID.Default.(func() uuid.UUID)
}
