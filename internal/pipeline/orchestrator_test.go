package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/repository"
	"github.com/hirewise/resume-ingest/internal/repository/repotest"
)

// scriptedExtractor answers per field kind. A nil entry means success with a
// canned fragment; a non-nil entry is returned as the call's error. A block
// duration simulates a slow provider.
type scriptedExtractor struct {
	fail  map[constants.FieldKind]error
	block map[constants.FieldKind]time.Duration
}

func (s *scriptedExtractor) Extract(ctx context.Context, _ string, kind constants.FieldKind) (json.RawMessage, error) {
	if d, ok := s.block[kind]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err, ok := s.fail[kind]; ok && err != nil {
		return nil, err
	}
	return json.RawMessage(fmt.Sprintf(`{"kind":%q}`, kind)), nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRunMergesEveryKind(t *testing.T) {
	store := repotest.NewStore()
	row, err := store.Resumes.Create(context.Background(), repository.CreateResumeParams{
		FileHash: "h1", FileName: "a.pdf", FilePath: "/tmp/a.pdf", FileSize: 1, FileType: "pdf",
	})
	require.NoError(t, err)

	orch := NewOrchestrator(testLogger(), &scriptedExtractor{}, store.Resumes, store.Ledger, time.Second)
	summary := orch.Run(context.Background(), row.ID, "resume text")

	assert.Equal(t, RunSummary{Succeeded: 6, Failed: 0}, summary)

	got, err := store.Resumes.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	require.Len(t, got.StructuredData, 6)
	for _, kind := range constants.FieldKinds {
		assert.Contains(t, got.StructuredData, string(kind))
	}

	entries, err := store.Ledger.ListForResume(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunOneFailureDoesNotTouchSiblings(t *testing.T) {
	store := repotest.NewStore()
	row, err := store.Resumes.Create(context.Background(), repository.CreateResumeParams{
		FileHash: "h2", FileName: "b.pdf", FilePath: "/tmp/b.pdf", FileSize: 1, FileType: "pdf",
	})
	require.NoError(t, err)

	ext := &scriptedExtractor{fail: map[constants.FieldKind]error{
		constants.FieldCertifications: fmt.Errorf("provider returned 500"),
	}}
	orch := NewOrchestrator(testLogger(), ext, store.Resumes, store.Ledger, time.Second)
	summary := orch.Run(context.Background(), row.ID, "resume text")

	assert.Equal(t, RunSummary{Succeeded: 5, Failed: 1}, summary)

	got, err := store.Resumes.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Len(t, got.StructuredData, 5)
	assert.NotContains(t, got.StructuredData, string(constants.FieldCertifications))

	entries, err := store.Ledger.ListForResume(context.Background(), row.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, string(constants.FieldCertifications), entries[0].FieldKind)
	assert.Equal(t, string(constants.SeverityError), entries[0].Severity)
	assert.Contains(t, entries[0].Message, "provider returned 500")
	assert.False(t, entries[0].Resolved)
}

func TestRunSlowKindTimesOutAlone(t *testing.T) {
	store := repotest.NewStore()
	row, err := store.Resumes.Create(context.Background(), repository.CreateResumeParams{
		FileHash: "h3", FileName: "c.pdf", FilePath: "/tmp/c.pdf", FileSize: 1, FileType: "pdf",
	})
	require.NoError(t, err)

	ext := &scriptedExtractor{block: map[constants.FieldKind]time.Duration{
		constants.FieldSummary: time.Second,
	}}
	orch := NewOrchestrator(testLogger(), ext, store.Resumes, store.Ledger, 25*time.Millisecond)

	start := time.Now()
	summary := orch.Run(context.Background(), row.ID, "resume text")
	elapsed := time.Since(start)

	assert.Equal(t, RunSummary{Succeeded: 5, Failed: 1}, summary)
	assert.Less(t, elapsed, 500*time.Millisecond, "run must settle at the per-kind deadline, not the provider's pace")

	entries, err := store.Ledger.ListForResume(context.Background(), row.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, string(constants.FieldSummary), entries[0].FieldKind)
	assert.Contains(t, entries[0].Message, context.DeadlineExceeded.Error())
}

func TestRunLedgerSurvivesSpentRunContext(t *testing.T) {
	store := repotest.NewStore()
	row, err := store.Resumes.Create(context.Background(), repository.CreateResumeParams{
		FileHash: "h5", FileName: "e.pdf", FilePath: "/tmp/e.pdf", FileSize: 1, FileType: "pdf",
	})
	require.NoError(t, err)

	block := map[constants.FieldKind]time.Duration{}
	for _, kind := range constants.FieldKinds {
		block[kind] = time.Second
	}
	orch := NewOrchestrator(testLogger(), &scriptedExtractor{block: block}, store.Resumes, store.Ledger, time.Second)

	// the run context dies before any branch finishes; every failure must
	// still be recorded even though the context that carried the run is spent
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()
	summary := orch.Run(ctx, row.ID, "resume text")

	assert.Equal(t, RunSummary{Succeeded: 0, Failed: 6}, summary)
	entries, err := store.Ledger.ListForResume(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}

func TestRunAllKindsFail(t *testing.T) {
	store := repotest.NewStore()
	row, err := store.Resumes.Create(context.Background(), repository.CreateResumeParams{
		FileHash: "h4", FileName: "d.pdf", FilePath: "/tmp/d.pdf", FileSize: 1, FileType: "pdf",
	})
	require.NoError(t, err)

	fail := map[constants.FieldKind]error{}
	for _, kind := range constants.FieldKinds {
		fail[kind] = fmt.Errorf("boom")
	}
	orch := NewOrchestrator(testLogger(), &scriptedExtractor{fail: fail}, store.Resumes, store.Ledger, time.Second)
	summary := orch.Run(context.Background(), row.ID, "resume text")

	assert.Equal(t, RunSummary{Succeeded: 0, Failed: 6}, summary)
	entries, err := store.Ledger.ListForResume(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}
