package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hirewise/resume-ingest/gen/ent"
)

// Resume represents an ingestion record for data transfer between layers.
type Resume struct {
	ID             uuid.UUID                  `json:"id"`
	FileHash       string                     `json:"file_hash"`
	FileName       string                     `json:"file_name"`
	FilePath       string                     `json:"file_path,omitempty"`
	FileSize       int                        `json:"file_size"`
	FileType       string                     `json:"file_type"`
	Status         string                     `json:"status"`
	RawText        *string                    `json:"raw_text,omitempty"`
	StructuredData map[string]json.RawMessage `json:"structured_data,omitempty"`
	UploadedAt     time.Time                  `json:"uploaded_at"`
	ProcessedAt    *time.Time                 `json:"processed_at,omitempty"`
}

// ResumeFromEnt maps a persisted row to the transfer shape.
func ResumeFromEnt(row *ent.Resume) *Resume {
	return &Resume{
		ID:             row.ID,
		FileHash:       row.FileHash,
		FileName:       row.FileName,
		FilePath:       row.FilePath,
		FileSize:       row.FileSize,
		FileType:       row.FileType,
		Status:         row.Status,
		RawText:        row.RawText,
		StructuredData: row.StructuredData,
		UploadedAt:     row.UploadedAt,
		ProcessedAt:    row.ProcessedAt,
	}
}
