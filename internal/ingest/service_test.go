package ingest

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/async"
	"github.com/hirewise/resume-ingest/internal/common"
	"github.com/hirewise/resume-ingest/internal/repository/repotest"
)

type recordingQueue struct {
	mu   sync.Mutex
	jobs []async.Job
}

func (q *recordingQueue) Enqueue(_ context.Context, job async.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(context.Context) {}

func (q *recordingQueue) count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

type failingQueue struct{ err error }

func (q *failingQueue) Enqueue(context.Context, async.Job) error { return q.err }

func (q *failingQueue) Shutdown(context.Context) {}

// cancelingQueue kills the caller's context mid-enqueue, like a client that
// disconnects while waiting out backpressure.
type cancelingQueue struct{ cancel context.CancelFunc }

func (q *cancelingQueue) Enqueue(context.Context, async.Job) error {
	q.cancel()
	return context.Canceled
}

func (q *cancelingQueue) Shutdown(context.Context) {}

func newTestService(t *testing.T) (*Service, *repotest.Store, *recordingQueue) {
	t.Helper()
	store := repotest.NewStore()
	queue := &recordingQueue{}
	svc := NewService(slog.New(slog.NewTextHandler(os.Stderr, nil)), store.Resumes, queue, t.TempDir(), 1<<20)
	return svc, store, queue
}

func TestSubmitStoresAndEnqueues(t *testing.T) {
	svc, _, queue := newTestService(t)

	res, err := svc.Submit(context.Background(), SubmitInput{
		FileName:  "jane-doe.pdf",
		MediaKind: "pdf",
		Data:      []byte("%PDF-1.4 fake resume"),
	})
	require.NoError(t, err)
	assert.False(t, res.Duplicated)
	assert.Equal(t, string(constants.StatusPending), res.Resume.Status)
	assert.Equal(t, Fingerprint([]byte("%PDF-1.4 fake resume")), res.Resume.FileHash)

	// stored bytes are keyed by record id, not by the upload name
	assert.Equal(t, res.Resume.ID.String()+".pdf", filepath.Base(res.Resume.FilePath))
	stored, err := os.ReadFile(res.Resume.FilePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake resume"), stored)

	require.Equal(t, 1, queue.count())
	assert.Equal(t, res.Resume.ID, queue.jobs[0].ResumeID)
}

func TestSubmitDuplicateShortCircuits(t *testing.T) {
	svc, _, queue := newTestService(t)
	data := []byte("identical bytes")

	first, err := svc.Submit(context.Background(), SubmitInput{FileName: "a.txt", MediaKind: "txt", Data: data})
	require.NoError(t, err)

	// same bytes under a different name: same record, no new run
	second, err := svc.Submit(context.Background(), SubmitInput{FileName: "b.txt", MediaKind: "txt", Data: data})
	require.NoError(t, err)
	assert.True(t, second.Duplicated)
	assert.Equal(t, first.Resume.ID, second.Resume.ID)
	assert.Equal(t, 1, queue.count())
}

func TestSubmitRejectsDisallowedType(t *testing.T) {
	svc, _, queue := newTestService(t)

	cases := []SubmitInput{
		{FileName: "malware.exe", MediaKind: "exe", Data: []byte("MZ")},
		{FileName: "noext", MediaKind: "", Data: []byte("text")},
		{FileName: "photo.png", MediaKind: "png", Data: []byte{0x89, 0x50}},
	}
	for _, in := range cases {
		_, err := svc.Submit(context.Background(), in)
		assert.ErrorIsf(t, err, common.ErrValidation, "input %q", in.FileName)
	}
	assert.Zero(t, queue.count())
}

func TestSubmitFallsBackToFileNameExt(t *testing.T) {
	svc, _, _ := newTestService(t)

	res, err := svc.Submit(context.Background(), SubmitInput{
		FileName: "resume.TXT",
		Data:     []byte("plain text resume"),
	})
	require.NoError(t, err)
	assert.Equal(t, "txt", res.Resume.FileType)
}

func TestSubmitRejectsEmptyAndOversized(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), SubmitInput{FileName: "a.txt", MediaKind: "txt"})
	assert.ErrorIs(t, err, common.ErrValidation)

	big := make([]byte, (1<<20)+1)
	_, err = svc.Submit(context.Background(), SubmitInput{FileName: "a.txt", MediaKind: "txt", Data: big})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestDeleteFreesFingerprint(t *testing.T) {
	svc, _, queue := newTestService(t)
	data := []byte("retry me")

	first, err := svc.Submit(context.Background(), SubmitInput{FileName: "r.txt", MediaKind: "txt", Data: data})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), first.Resume.ID))
	_, err = svc.GetStatus(context.Background(), first.Resume.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = os.Stat(first.Resume.FilePath)
	assert.True(t, os.IsNotExist(err), "stored upload should be removed")

	// the same bytes now ingest as a brand new record
	again, err := svc.Submit(context.Background(), SubmitInput{FileName: "r.txt", MediaKind: "txt", Data: data})
	require.NoError(t, err)
	assert.False(t, again.Duplicated)
	assert.NotEqual(t, first.Resume.ID, again.Resume.ID)
	assert.Equal(t, 2, queue.count())
}

func TestSubmitEnqueueFailureUndoesInsert(t *testing.T) {
	store := repotest.NewStore()
	svc := NewService(slog.New(slog.NewTextHandler(os.Stderr, nil)),
		store.Resumes, &failingQueue{err: errors.New("queue unavailable")}, t.TempDir(), 1<<20)
	data := []byte("never scheduled")

	_, err := svc.Submit(context.Background(), SubmitInput{FileName: "s.txt", MediaKind: "txt", Data: data})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule processing")

	// the insert must be rolled back: a PENDING record nobody will ever
	// process would hold the fingerprint hostage
	_, err = store.Resumes.GetByHash(context.Background(), Fingerprint(data))
	assert.ErrorIs(t, err, common.ErrNotFound)

	// with a working queue the same bytes go through as a fresh upload
	queue := &recordingQueue{}
	svc = NewService(slog.New(slog.NewTextHandler(os.Stderr, nil)), store.Resumes, queue, t.TempDir(), 1<<20)
	res, err := svc.Submit(context.Background(), SubmitInput{FileName: "s.txt", MediaKind: "txt", Data: data})
	require.NoError(t, err)
	assert.False(t, res.Duplicated)
	assert.Equal(t, 1, queue.count())
}

func TestSubmitRollbackSurvivesDeadCallerContext(t *testing.T) {
	store := repotest.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc := NewService(slog.New(slog.NewTextHandler(os.Stderr, nil)),
		store.Resumes, &cancelingQueue{cancel: cancel}, t.TempDir(), 1<<20)
	data := []byte("caller gave up")

	_, err := svc.Submit(ctx, SubmitInput{FileName: "c.txt", MediaKind: "txt", Data: data})
	require.Error(t, err)

	// the context that carried the upload is dead, but the rollback must
	// still have removed the record
	_, err = store.Resumes.GetByHash(context.Background(), Fingerprint(data))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFingerprintIsStable(t *testing.T) {
	a := Fingerprint([]byte("same"))
	b := Fingerprint([]byte("same"))
	c := Fingerprint([]byte("different"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
