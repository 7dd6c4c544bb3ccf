// Package repotest provides in-memory implementations of the repository
// interfaces for tests that do not need a database.
package repotest

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/gen/ent"
	"github.com/hirewise/resume-ingest/internal/common"
	"github.com/hirewise/resume-ingest/internal/repository"
)

// Store couples the two fakes so Delete can cascade like the real schema.
type Store struct {
	Resumes *Resumes
	Ledger  *Ledger
}

func NewStore() *Store {
	ledger := &Ledger{}
	resumes := &Resumes{
		rows:   map[uuid.UUID]*ent.Resume{},
		byHash: map[string]uuid.UUID{},
		ledger: ledger,
	}
	return &Store{Resumes: resumes, Ledger: ledger}
}

// Resumes is an in-memory repository.ResumeRepository.
type Resumes struct {
	mu     sync.Mutex
	rows   map[uuid.UUID]*ent.Resume
	byHash map[string]uuid.UUID
	ledger *Ledger

	// CreateErr, when set, is returned by Create. Tests use it to simulate
	// storage failures.
	CreateErr error
}

var _ repository.ResumeRepository = (*Resumes)(nil)

func cloneResume(r *ent.Resume) *ent.Resume {
	cp := *r
	if r.StructuredData != nil {
		cp.StructuredData = make(map[string]json.RawMessage, len(r.StructuredData))
		for k, v := range r.StructuredData {
			cp.StructuredData[k] = v
		}
	}
	return &cp
}

func (f *Resumes) Create(ctx context.Context, p repository.CreateResumeParams) (*ent.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	if _, dup := f.byHash[p.FileHash]; dup {
		return nil, errors.New("unique constraint violation: file_hash")
	}
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	row := &ent.Resume{
		ID:         id,
		FileHash:   p.FileHash,
		FileName:   p.FileName,
		FilePath:   p.FilePath,
		FileSize:   p.FileSize,
		FileType:   p.FileType,
		Status:     string(constants.StatusPending),
		UploadedAt: time.Now().UTC(),
	}
	f.rows[id] = row
	f.byHash[p.FileHash] = id
	return cloneResume(row), nil
}

func (f *Resumes) GetByID(ctx context.Context, id uuid.UUID) (*ent.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, common.NotFoundError("resume %s", id)
	}
	return cloneResume(row), nil
}

func (f *Resumes) GetByHash(ctx context.Context, hash string) (*ent.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byHash[hash]
	if !ok {
		return nil, common.NotFoundError("resume with hash %s", hash)
	}
	return cloneResume(f.rows[id]), nil
}

func (f *Resumes) UpdateStatus(ctx context.Context, id uuid.UUID, next constants.ResumeStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return common.NotFoundError("resume %s", id)
	}
	cur, _ := constants.ParseStatus(row.Status)
	if !cur.CanTransition(next) {
		return common.ErrStatusRegression
	}
	row.Status = string(next)
	if next.IsTerminal() {
		now := time.Now().UTC()
		row.ProcessedAt = &now
	}
	return nil
}

func (f *Resumes) SetRawText(ctx context.Context, id uuid.UUID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return common.NotFoundError("resume %s", id)
	}
	row.RawText = &text
	return nil
}

func (f *Resumes) MergeFragment(ctx context.Context, id uuid.UUID, kind constants.FieldKind, fragment json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return common.NotFoundError("resume %s", id)
	}
	if row.StructuredData == nil {
		row.StructuredData = map[string]json.RawMessage{}
	}
	row.StructuredData[string(kind)] = fragment
	return nil
}

func (f *Resumes) ReplaceStructuredData(ctx context.Context, id uuid.UUID, data map[string]json.RawMessage) (*ent.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, common.NotFoundError("resume %s", id)
	}
	row.StructuredData = data
	return cloneResume(row), nil
}

func (f *Resumes) List(ctx context.Context, status *constants.ResumeStatus) ([]*ent.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.Resume
	for _, row := range f.rows {
		if status != nil && row.Status != string(*status) {
			continue
		}
		out = append(out, cloneResume(row))
	}
	return out, nil
}

func (f *Resumes) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	row, ok := f.rows[id]
	if !ok {
		f.mu.Unlock()
		return common.NotFoundError("resume %s", id)
	}
	delete(f.rows, id)
	delete(f.byHash, row.FileHash)
	f.mu.Unlock()

	f.ledger.removeForResume(id)
	return nil
}

// Ledger is an in-memory repository.ExtractionErrorRepository.
type Ledger struct {
	mu   sync.Mutex
	rows []*ent.ExtractionError
}

var _ repository.ExtractionErrorRepository = (*Ledger)(nil)

func (f *Ledger) Record(ctx context.Context, resumeID uuid.UUID, kind constants.FieldKind, message string, severity constants.Severity) (*ent.ExtractionError, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row := &ent.ExtractionError{
		ID:         uuid.New(),
		ResumeID:   resumeID,
		FieldKind:  string(kind),
		Message:    message,
		Severity:   string(severity),
		OccurredAt: time.Now().UTC(),
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *Ledger) ListForResume(ctx context.Context, resumeID uuid.UUID) ([]*ent.ExtractionError, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.ExtractionError
	for _, row := range f.rows {
		if row.ResumeID == resumeID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *Ledger) List(ctx context.Context, filter repository.ErrorFilter) ([]*ent.ExtractionError, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.ExtractionError
	for _, row := range f.rows {
		if filter.Severity != nil && row.Severity != string(*filter.Severity) {
			continue
		}
		if filter.Resolved != nil && row.Resolved != *filter.Resolved {
			continue
		}
		cp := *row
		out = append(out, &cp)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *Ledger) MarkResolved(ctx context.Context, errorID uuid.UUID) (*ent.ExtractionError, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.ID == errorID {
			row.Resolved = true
			now := time.Now().UTC()
			row.ResolvedAt = &now
			cp := *row
			return &cp, nil
		}
	}
	return nil, common.NotFoundError("error log %s", errorID)
}

func (f *Ledger) Stats(ctx context.Context) (repository.ErrorStats, error) {
	if err := ctx.Err(); err != nil {
		return repository.ErrorStats{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := repository.ErrorStats{ByKind: map[string]int{}}
	for _, row := range f.rows {
		stats.Total++
		if !row.Resolved {
			stats.Unresolved++
		}
		stats.ByKind[row.FieldKind]++
	}
	return stats, nil
}

func (f *Ledger) Cleanup(ctx context.Context, cutoff time.Time, resolvedOnly bool) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []*ent.ExtractionError
	removed := 0
	for _, row := range f.rows {
		old := row.OccurredAt.Before(cutoff) && (!resolvedOnly || row.Resolved)
		if old {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	f.rows = kept
	return removed, nil
}

func (f *Ledger) removeForResume(resumeID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []*ent.ExtractionError
	for _, row := range f.rows {
		if row.ResumeID != resumeID {
			kept = append(kept, row)
		}
	}
	f.rows = kept
}
