package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/gen/ent"
	enterr "github.com/hirewise/resume-ingest/gen/ent/extractionerror"
	"github.com/hirewise/resume-ingest/internal/common"
)

// ErrorFilter narrows List results. Nil members mean "any".
type ErrorFilter struct {
	Severity *constants.Severity
	Resolved *bool
	Limit    int
}

// ErrorStats summarizes the ledger for operators.
type ErrorStats struct {
	Total      int            `json:"total"`
	Unresolved int            `json:"unresolved"`
	ByKind     map[string]int `json:"by_field_kind"`
}

type ExtractionErrorRepository interface {
	// Record appends one ledger entry. The ledger is append-only; nothing in
	// the pipeline ever updates or removes entries.
	Record(ctx context.Context, resumeID uuid.UUID, kind constants.FieldKind, message string, severity constants.Severity) (*ent.ExtractionError, error)
	ListForResume(ctx context.Context, resumeID uuid.UUID) ([]*ent.ExtractionError, error)
	List(ctx context.Context, f ErrorFilter) ([]*ent.ExtractionError, error)
	// MarkResolved flips the resolved flag. Operator action only.
	MarkResolved(ctx context.Context, errorID uuid.UUID) (*ent.ExtractionError, error)
	Stats(ctx context.Context) (ErrorStats, error)
	// Cleanup prunes entries older than cutoff, optionally only resolved ones.
	Cleanup(ctx context.Context, cutoff time.Time, resolvedOnly bool) (int, error)
}

type extractionErrorRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractionErrorRepository(entc *ent.Client, log *slog.Logger) ExtractionErrorRepository {
	if log == nil {
		log = slog.Default()
	}
	return &extractionErrorRepo{ent: entc, log: log}
}

func (r *extractionErrorRepo) Record(ctx context.Context, resumeID uuid.UUID, kind constants.FieldKind, message string, severity constants.Severity) (*ent.ExtractionError, error) {
	row, err := r.ent.ExtractionError.Create().
		SetResumeID(resumeID).
		SetFieldKind(string(kind)).
		SetMessage(message).
		SetSeverity(string(severity)).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction error record failed", "resume_id", resumeID, "field_kind", kind, "error", err)
		return nil, err
	}
	r.log.Info("extraction error recorded",
		"error_id", row.ID, "resume_id", resumeID, "field_kind", kind, "severity", severity)
	return row, nil
}

func (r *extractionErrorRepo) ListForResume(ctx context.Context, resumeID uuid.UUID) ([]*ent.ExtractionError, error) {
	rows, err := r.ent.ExtractionError.Query().
		Where(enterr.ResumeID(resumeID)).
		Order(ent.Desc(enterr.FieldOccurredAt)).
		All(ctx)
	if err != nil {
		r.log.Error("extraction error list failed", "resume_id", resumeID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *extractionErrorRepo) List(ctx context.Context, f ErrorFilter) ([]*ent.ExtractionError, error) {
	q := r.ent.ExtractionError.Query()
	if f.Severity != nil {
		q.Where(enterr.Severity(string(*f.Severity)))
	}
	if f.Resolved != nil {
		q.Where(enterr.Resolved(*f.Resolved))
	}
	q.Order(ent.Desc(enterr.FieldOccurredAt))
	if f.Limit > 0 {
		q.Limit(f.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.log.Error("extraction error list failed", "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *extractionErrorRepo) MarkResolved(ctx context.Context, errorID uuid.UUID) (*ent.ExtractionError, error) {
	row, err := r.ent.ExtractionError.UpdateOneID(errorID).
		SetResolved(true).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("error log %s", errorID)
		}
		r.log.Error("extraction error resolve failed", "error_id", errorID, "error", err)
		return nil, err
	}
	r.log.Info("extraction error resolved", "error_id", errorID)
	return row, nil
}

func (r *extractionErrorRepo) Stats(ctx context.Context) (ErrorStats, error) {
	stats := ErrorStats{ByKind: map[string]int{}}

	total, err := r.ent.ExtractionError.Query().Count(ctx)
	if err != nil {
		return stats, err
	}
	stats.Total = total

	unresolved, err := r.ent.ExtractionError.Query().
		Where(enterr.Resolved(false)).
		Count(ctx)
	if err != nil {
		return stats, err
	}
	stats.Unresolved = unresolved

	var byKind []struct {
		FieldKind string `json:"field_kind"`
		Count     int    `json:"count"`
	}
	err = r.ent.ExtractionError.Query().
		GroupBy(enterr.FieldFieldKind).
		Aggregate(ent.Count()).
		Scan(ctx, &byKind)
	if err != nil {
		return stats, err
	}
	for _, kc := range byKind {
		stats.ByKind[kc.FieldKind] = kc.Count
	}
	return stats, nil
}

func (r *extractionErrorRepo) Cleanup(ctx context.Context, cutoff time.Time, resolvedOnly bool) (int, error) {
	del := r.ent.ExtractionError.Delete().
		Where(enterr.OccurredAtLT(cutoff))
	if resolvedOnly {
		del.Where(enterr.Resolved(true))
	}
	n, err := del.Exec(ctx)
	if err != nil {
		r.log.Error("extraction error cleanup failed", "error", err)
		return 0, err
	}
	r.log.Info("extraction error cleanup done", "deleted", n, "cutoff", cutoff, "resolved_only", resolvedOnly)
	return n, nil
}
