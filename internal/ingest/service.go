// Package ingest is the entry point of the pipeline: it validates uploads,
// deduplicates by content fingerprint, persists the pending record, and
// schedules the background run.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/gen/ent"
	"github.com/hirewise/resume-ingest/internal/async"
	"github.com/hirewise/resume-ingest/internal/common"
	"github.com/hirewise/resume-ingest/internal/repository"
)

// SubmitInput is one uploaded document.
type SubmitInput struct {
	FileName  string
	MediaKind string // file extension; normalized and checked against the allow-list
	Data      []byte
}

// SubmitResult reports where the upload landed. Duplicated means an existing
// record with the same fingerprint was returned and no new run was scheduled.
type SubmitResult struct {
	Resume     *ent.Resume
	Duplicated bool
}

type Service struct {
	logger    *slog.Logger
	resumes   repository.ResumeRepository
	queue     async.Queue
	uploadDir string
	maxSize   int64
}

func NewService(logger *slog.Logger, resumes repository.ResumeRepository, queue async.Queue, uploadDir string, maxSize int64) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	return &Service{
		logger:    logger,
		resumes:   resumes,
		queue:     queue,
		uploadDir: uploadDir,
		maxSize:   maxSize,
	}
}

// Fingerprint computes the dedupe key for upload bytes. It is a lookup key
// only, never a security boundary.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Submit validates the upload, short-circuits on a known fingerprint, and
// otherwise stores the bytes, inserts a PENDING record, and enqueues the
// background run. It returns as soon as the record exists; callers poll for
// progress.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	ext := constants.NormalizeExt(in.MediaKind)
	if ext == "" {
		ext = constants.NormalizeExt(filepath.Ext(in.FileName))
	}
	if !constants.AllowedExt(ext) {
		return nil, common.ValidationError("unsupported file type %q", ext)
	}
	if len(in.Data) == 0 {
		return nil, common.ValidationError("empty upload")
	}
	if int64(len(in.Data)) > s.maxSize {
		return nil, common.ValidationError("file size %d exceeds maximum of %d bytes", len(in.Data), s.maxSize)
	}

	hash := Fingerprint(in.Data)
	existing, err := s.resumes.GetByHash(ctx, hash)
	if err == nil {
		s.logger.Info("duplicate upload short-circuited",
			"resume_id", existing.ID, "file_name", in.FileName, "status", existing.Status)
		return &SubmitResult{Resume: existing, Duplicated: true}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	id := uuid.New()
	path := filepath.Join(s.uploadDir, id.String()+"."+ext)
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, common.WrapError(err, "create upload dir")
	}
	if err := os.WriteFile(path, in.Data, 0o644); err != nil {
		return nil, common.WrapError(err, "store upload")
	}

	row, err := s.resumes.Create(ctx, repository.CreateResumeParams{
		ID:       id,
		FileHash: hash,
		FileName: in.FileName,
		FilePath: path,
		FileSize: len(in.Data),
		FileType: ext,
	})
	if err != nil {
		_ = os.Remove(path)
		// lost a race against an identical concurrent upload: the unique
		// fingerprint constraint is the arbiter
		if ent.IsConstraintError(err) {
			if winner, gerr := s.resumes.GetByHash(ctx, hash); gerr == nil {
				s.logger.Info("duplicate upload lost insert race", "resume_id", winner.ID, "file_name", in.FileName)
				return &SubmitResult{Resume: winner, Duplicated: true}, nil
			}
		}
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, async.Job{ResumeID: row.ID, SubmittedAt: time.Now().UTC()}); err != nil {
		// an unscheduled PENDING record would squat on the fingerprint with
		// nothing ever coming to process it; undo the insert so the caller
		// can retry the upload from scratch
		s.logger.Error("enqueue failed", "resume_id", row.ID, "error", err)
		// the enqueue may have failed because ctx died; the rollback must
		// still go through
		if derr := s.resumes.Delete(context.WithoutCancel(ctx), row.ID); derr != nil {
			s.logger.Error("orphaned record not removed", "resume_id", row.ID, "error", derr)
		}
		_ = os.Remove(path)
		return nil, common.WrapError(err, "schedule processing")
	}
	return &SubmitResult{Resume: row, Duplicated: false}, nil
}

// GetStatus returns the record's lifecycle status.
func (s *Service) GetStatus(ctx context.Context, id uuid.UUID) (constants.ResumeStatus, error) {
	row, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return constants.ResumeStatus(row.Status), nil
}

// GetResult returns the record with its current, possibly partial,
// structured result. Callers needing completeness must check status first.
func (s *Service) GetResult(ctx context.Context, id uuid.UUID) (*ent.Resume, error) {
	return s.resumes.GetByID(ctx, id)
}

// Delete removes the record (the ledger cascades with it) and the stored
// upload bytes. This is also the operator's retry path: with the record gone
// the fingerprint is free again.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	row, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.resumes.Delete(ctx, id); err != nil {
		return err
	}
	if err := os.Remove(row.FilePath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("stored upload not removed", "resume_id", id, "path", row.FilePath, "error", err)
	}
	return nil
}
