package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/hirewise/resume-ingest/gen/ent"
)

// ExtractionError represents a ledger entry for data transfer between layers.
type ExtractionError struct {
	ID         uuid.UUID  `json:"id"`
	ResumeID   uuid.UUID  `json:"resume_id"`
	FieldKind  string     `json:"field_kind"`
	Message    string     `json:"message"`
	Severity   string     `json:"severity"`
	Resolved   bool       `json:"resolved"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// ExtractionErrorFromEnt maps a persisted row to the transfer shape.
func ExtractionErrorFromEnt(row *ent.ExtractionError) *ExtractionError {
	return &ExtractionError{
		ID:         row.ID,
		ResumeID:   row.ResumeID,
		FieldKind:  row.FieldKind,
		Message:    row.Message,
		Severity:   row.Severity,
		Resolved:   row.Resolved,
		ResolvedAt: row.ResolvedAt,
		OccurredAt: row.OccurredAt,
	}
}
