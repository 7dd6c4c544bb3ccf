package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/gen/ent"
	"github.com/hirewise/resume-ingest/internal/repository"
	"github.com/hirewise/resume-ingest/internal/repository/repotest"
)

type stubDocText struct {
	text  string
	err   error
	calls atomic.Int32
}

func (s *stubDocText) ExtractText(_ context.Context, _ []byte, _ string) (string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func stageUpload(t *testing.T, store *repotest.Store, name string) *ent.Resume {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("raw upload bytes"), 0o644))
	row, err := store.Resumes.Create(context.Background(), repository.CreateResumeParams{
		FileHash: "hash-" + name,
		FileName: name,
		FilePath: path,
		FileSize: 16,
		FileType: constants.NormalizeExt(filepath.Ext(name)),
	})
	require.NoError(t, err)
	return row
}

func TestProcessCompletesWithPartialSuccess(t *testing.T) {
	store := repotest.NewStore()
	row := stageUpload(t, store, "jane.pdf")

	ext := &scriptedExtractor{fail: map[constants.FieldKind]error{
		constants.FieldCertifications: fmt.Errorf("deadline exceeded"),
	}}
	docText := &stubDocText{text: "Jane Doe\nSoftware Engineer"}
	orch := NewOrchestrator(testLogger(), ext, store.Resumes, store.Ledger, time.Second)
	proc := NewProcessor(testLogger(), docText, orch, store.Resumes, store.Ledger)

	require.NoError(t, proc.Process(context.Background(), row.ID))

	got, err := store.Resumes.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusCompleted), got.Status)
	require.NotNil(t, got.RawText)
	assert.Equal(t, "Jane Doe\nSoftware Engineer", *got.RawText)
	assert.NotNil(t, got.ProcessedAt)
	assert.Len(t, got.StructuredData, 5)

	entries, err := store.Ledger.ListForResume(context.Background(), row.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, string(constants.FieldCertifications), entries[0].FieldKind)
}

func TestProcessFailsWhenEveryKindFails(t *testing.T) {
	store := repotest.NewStore()
	row := stageUpload(t, store, "bad.pdf")

	fail := map[constants.FieldKind]error{}
	for _, kind := range constants.FieldKinds {
		fail[kind] = fmt.Errorf("provider down")
	}
	orch := NewOrchestrator(testLogger(), &scriptedExtractor{fail: fail}, store.Resumes, store.Ledger, time.Second)
	proc := NewProcessor(testLogger(), &stubDocText{text: "some text"}, orch, store.Resumes, store.Ledger)

	require.NoError(t, proc.Process(context.Background(), row.ID))

	got, err := store.Resumes.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusFailed), got.Status)
	assert.Empty(t, got.StructuredData)

	entries, err := store.Ledger.ListForResume(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}

func TestProcessTextExtractionFailureShortCircuits(t *testing.T) {
	store := repotest.NewStore()
	row := stageUpload(t, store, "garbled.pdf")

	docText := &stubDocText{err: fmt.Errorf("unreadable document")}
	// extractor that would fail loudly if any field kind were attempted
	fail := map[constants.FieldKind]error{}
	for _, kind := range constants.FieldKinds {
		fail[kind] = fmt.Errorf("must not be called")
	}
	orch := NewOrchestrator(testLogger(), &scriptedExtractor{fail: fail}, store.Resumes, store.Ledger, time.Second)
	proc := NewProcessor(testLogger(), docText, orch, store.Resumes, store.Ledger)

	err := proc.Process(context.Background(), row.ID)
	require.Error(t, err)

	got, gerr := store.Resumes.GetByID(context.Background(), row.ID)
	require.NoError(t, gerr)
	assert.Equal(t, string(constants.StatusFailed), got.Status)
	assert.Nil(t, got.RawText)

	// exactly one ledger entry, under the document sentinel kind
	entries, lerr := store.Ledger.ListForResume(context.Background(), row.ID)
	require.NoError(t, lerr)
	require.Len(t, entries, 1)
	assert.Equal(t, string(constants.FieldDocument), entries[0].FieldKind)
	assert.Contains(t, entries[0].Message, "unreadable document")
}

// blockingDocText holds until the caller's context dies, like a hung parser.
type blockingDocText struct{}

func (blockingDocText) ExtractText(ctx context.Context, _ []byte, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestProcessDeadlineStillSettlesRecord(t *testing.T) {
	store := repotest.NewStore()
	row := stageUpload(t, store, "slow.pdf")

	orch := NewOrchestrator(testLogger(), &scriptedExtractor{}, store.Resumes, store.Ledger, time.Second)
	proc := NewProcessor(testLogger(), blockingDocText{}, orch, store.Resumes, store.Ledger)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := proc.Process(ctx, row.ID)
	require.Error(t, err)

	// the run deadline is spent, yet the record must not wedge at PROCESSING
	// with an empty ledger; that would block the fingerprint forever
	got, gerr := store.Resumes.GetByID(context.Background(), row.ID)
	require.NoError(t, gerr)
	assert.Equal(t, string(constants.StatusFailed), got.Status)

	entries, lerr := store.Ledger.ListForResume(context.Background(), row.ID)
	require.NoError(t, lerr)
	require.Len(t, entries, 1)
	assert.Equal(t, string(constants.FieldDocument), entries[0].FieldKind)
	assert.Contains(t, entries[0].Message, context.DeadlineExceeded.Error())
}

func TestProcessSkipsSettledRecord(t *testing.T) {
	store := repotest.NewStore()
	row := stageUpload(t, store, "done.pdf")
	require.NoError(t, store.Resumes.UpdateStatus(context.Background(), row.ID, constants.StatusCompleted))

	docText := &stubDocText{text: "text"}
	orch := NewOrchestrator(testLogger(), &scriptedExtractor{}, store.Resumes, store.Ledger, time.Second)
	proc := NewProcessor(testLogger(), docText, orch, store.Resumes, store.Ledger)

	require.NoError(t, proc.Process(context.Background(), row.ID))
	assert.Zero(t, docText.calls.Load(), "settled records must not be reprocessed")
}
