package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/gen/ent"
	entresume "github.com/hirewise/resume-ingest/gen/ent/resume"
	"github.com/hirewise/resume-ingest/internal/common"
)

// CreateResumeParams captures the immutable upload metadata for a new record.
type CreateResumeParams struct {
	ID       uuid.UUID
	FileHash string
	FileName string
	FilePath string
	FileSize int
	FileType string
}

type ResumeRepository interface {
	Create(ctx context.Context, p CreateResumeParams) (*ent.Resume, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Resume, error)
	GetByHash(ctx context.Context, hash string) (*ent.Resume, error)
	// UpdateStatus advances the lifecycle. Transitions that would regress, or
	// leave a terminal status, fail with common.ErrStatusRegression. Terminal
	// transitions stamp processed_at.
	UpdateStatus(ctx context.Context, id uuid.UUID, next constants.ResumeStatus) error
	SetRawText(ctx context.Context, id uuid.UUID, text string) error
	// MergeFragment writes one field-kind key into structured_data without
	// disturbing sibling keys. Safe under concurrent calls for different
	// field kinds of the same record; last write wins per key.
	MergeFragment(ctx context.Context, id uuid.UUID, kind constants.FieldKind, fragment json.RawMessage) error
	// ReplaceStructuredData overwrites the whole structured result. Operator
	// action only; the pipeline merges per key.
	ReplaceStructuredData(ctx context.Context, id uuid.UUID, data map[string]json.RawMessage) (*ent.Resume, error)
	List(ctx context.Context, status *constants.ResumeStatus) ([]*ent.Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resumeRepo struct {
	ent    *ent.Client
	logger *slog.Logger

	// serializes read-modify-write of the structured_data JSON column so
	// concurrent per-field merges cannot drop each other's keys
	mergeMu sync.Mutex
}

func NewResumeRepository(entc *ent.Client, logger *slog.Logger) ResumeRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &resumeRepo{ent: entc, logger: logger}
}

func (r *resumeRepo) Create(ctx context.Context, p CreateResumeParams) (*ent.Resume, error) {
	create := r.ent.Resume.Create().
		SetFileHash(p.FileHash).
		SetFileName(p.FileName).
		SetFilePath(p.FilePath).
		SetFileSize(p.FileSize).
		SetFileType(p.FileType).
		SetStatus(string(constants.StatusPending))
	if p.ID != uuid.Nil {
		create.SetID(p.ID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("resume create failed", "file_name", p.FileName, "error", err)
		return nil, err
	}
	r.logger.Info("resume created", "resume_id", row.ID, "file_name", p.FileName, "file_hash", p.FileHash)
	return row, nil
}

func (r *resumeRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Resume, error) {
	row, err := r.ent.Resume.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("resume %s", id)
		}
		return nil, err
	}
	return row, nil
}

func (r *resumeRepo) GetByHash(ctx context.Context, hash string) (*ent.Resume, error) {
	row, err := r.ent.Resume.Query().
		Where(entresume.FileHash(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("resume with hash %s", hash)
		}
		r.logger.Error("resume lookup by hash failed", "file_hash", hash, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *resumeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, next constants.ResumeStatus) error {
	// restrict the update to rows whose current status may legally move to next
	var from []string
	for _, s := range constants.Statuses {
		cur, _ := constants.ParseStatus(s)
		if cur.CanTransition(next) {
			from = append(from, s)
		}
	}

	update := r.ent.Resume.Update().
		Where(entresume.ID(id), entresume.StatusIn(from...)).
		SetStatus(string(next))
	if next.IsTerminal() {
		update.SetProcessedAt(time.Now().UTC())
	}
	n, err := update.Save(ctx)
	if err != nil {
		r.logger.Error("resume status update failed", "resume_id", id, "next", next, "error", err)
		return err
	}
	if n == 0 {
		row, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		r.logger.Warn("resume status transition rejected",
			"resume_id", id, "current", row.Status, "next", next)
		return common.ErrStatusRegression
	}
	r.logger.Info("resume status updated", "resume_id", id, "status", next)
	return nil
}

func (r *resumeRepo) SetRawText(ctx context.Context, id uuid.UUID, text string) error {
	_, err := r.ent.Resume.UpdateOneID(id).
		SetRawText(text).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NotFoundError("resume %s", id)
		}
		r.logger.Error("resume raw text update failed", "resume_id", id, "error", err)
	}
	return err
}

func (r *resumeRepo) MergeFragment(ctx context.Context, id uuid.UUID, kind constants.FieldKind, fragment json.RawMessage) error {
	r.mergeMu.Lock()
	defer r.mergeMu.Unlock()

	row, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	data := row.StructuredData
	if data == nil {
		data = make(map[string]json.RawMessage, 1)
	}
	data[string(kind)] = fragment

	if _, err := r.ent.Resume.UpdateOneID(id).SetStructuredData(data).Save(ctx); err != nil {
		r.logger.Error("resume fragment merge failed", "resume_id", id, "field_kind", kind, "error", err)
		return err
	}
	r.logger.Debug("resume fragment merged", "resume_id", id, "field_kind", kind, "bytes", len(fragment))
	return nil
}

func (r *resumeRepo) ReplaceStructuredData(ctx context.Context, id uuid.UUID, data map[string]json.RawMessage) (*ent.Resume, error) {
	r.mergeMu.Lock()
	defer r.mergeMu.Unlock()

	row, err := r.ent.Resume.UpdateOneID(id).
		SetStructuredData(data).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("resume %s", id)
		}
		r.logger.Error("resume structured data replace failed", "resume_id", id, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *resumeRepo) List(ctx context.Context, status *constants.ResumeStatus) ([]*ent.Resume, error) {
	q := r.ent.Resume.Query().
		Order(ent.Desc(entresume.FieldUploadedAt))
	if status != nil {
		q.Where(entresume.Status(string(*status)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("resume list failed", "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *resumeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// ledger rows go with the record via the FK's ON DELETE CASCADE
	if err := r.ent.Resume.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NotFoundError("resume %s", id)
		}
		r.logger.Error("resume delete failed", "resume_id", id, "error", err)
		return err
	}
	r.logger.Info("resume deleted", "resume_id", id)
	return nil
}
