package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit: one ingestion run keyed by record id.
type Job struct {
	ResumeID    uuid.UUID
	SubmittedAt time.Time
}

// Queue decouples upload handling from processing. Enqueue never blocks the
// request path on extraction work.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
