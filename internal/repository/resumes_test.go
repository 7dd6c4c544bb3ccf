package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/gen/ent"
	"github.com/hirewise/resume-ingest/gen/ent/enttest"
	"github.com/hirewise/resume-ingest/internal/common"
	_ "github.com/hirewise/resume-ingest/internal/sqlite3"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func repoLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func mustCreate(t *testing.T, repo ResumeRepository, hash string) *ent.Resume {
	t.Helper()
	row, err := repo.Create(context.Background(), CreateResumeParams{
		FileHash: hash,
		FileName: hash + ".pdf",
		FilePath: "/uploads/" + hash + ".pdf",
		FileSize: 1024,
		FileType: "pdf",
	})
	require.NoError(t, err)
	return row
}

func TestResumeCreateDefaults(t *testing.T) {
	repo := NewResumeRepository(openTestClient(t), repoLogger())

	row := mustCreate(t, repo, "abc123")
	assert.NotEqual(t, uuid.Nil, row.ID)
	assert.Equal(t, string(constants.StatusPending), row.Status)
	assert.False(t, row.UploadedAt.IsZero())
	assert.Nil(t, row.ProcessedAt)
	assert.Nil(t, row.RawText)

	byHash, err := repo.GetByHash(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, row.ID, byHash.ID)
}

func TestResumeCreateHonorsCallerID(t *testing.T) {
	repo := NewResumeRepository(openTestClient(t), repoLogger())
	id := uuid.New()

	row, err := repo.Create(context.Background(), CreateResumeParams{
		ID: id, FileHash: "h", FileName: "a.pdf", FilePath: "/u/a.pdf", FileSize: 1, FileType: "pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, id, row.ID)
}

func TestResumeFingerprintIsUnique(t *testing.T) {
	repo := NewResumeRepository(openTestClient(t), repoLogger())
	mustCreate(t, repo, "samehash")

	_, err := repo.Create(context.Background(), CreateResumeParams{
		FileHash: "samehash", FileName: "other.pdf", FilePath: "/u/other.pdf", FileSize: 2, FileType: "pdf",
	})
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestResumeGetByIDNotFound(t *testing.T) {
	repo := NewResumeRepository(openTestClient(t), repoLogger())

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestResumeStatusLifecycle(t *testing.T) {
	repo := NewResumeRepository(openTestClient(t), repoLogger())
	row := mustCreate(t, repo, "lifecycle")
	ctx := context.Background()

	require.NoError(t, repo.UpdateStatus(ctx, row.ID, constants.StatusProcessing))
	require.NoError(t, repo.UpdateStatus(ctx, row.ID, constants.StatusCompleted))

	got, err := repo.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusCompleted), got.Status)
	require.NotNil(t, got.ProcessedAt, "terminal transition stamps processed_at")

	// terminal records never move again
	err = repo.UpdateStatus(ctx, row.ID, constants.StatusFailed)
	assert.ErrorIs(t, err, common.ErrStatusRegression)
	err = repo.UpdateStatus(ctx, row.ID, constants.StatusProcessing)
	assert.ErrorIs(t, err, common.ErrStatusRegression)

	got, err = repo.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusCompleted), got.Status)
}

func TestResumeStatusRegressionRejected(t *testing.T) {
	repo := NewResumeRepository(openTestClient(t), repoLogger())
	row := mustCreate(t, repo, "regress")
	ctx := context.Background()

	require.NoError(t, repo.UpdateStatus(ctx, row.ID, constants.StatusProcessing))
	err := repo.UpdateStatus(ctx, row.ID, constants.StatusPending)
	assert.ErrorIs(t, err, common.ErrStatusRegression)
}

func TestResumeMergeFragmentConcurrent(t *testing.T) {
	repo := NewResumeRepository(openTestClient(t), repoLogger())
	row := mustCreate(t, repo, "merge")
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, kind := range constants.FieldKinds {
		wg.Add(1)
		go func(kind constants.FieldKind) {
			defer wg.Done()
			fragment := json.RawMessage(fmt.Sprintf(`{"kind":%q}`, kind))
			assert.NoError(t, repo.MergeFragment(ctx, row.ID, kind, fragment))
		}(kind)
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, row.ID)
	require.NoError(t, err)
	require.Len(t, got.StructuredData, len(constants.FieldKinds), "no merge may drop a sibling's key")
	for _, kind := range constants.FieldKinds {
		assert.Contains(t, got.StructuredData, string(kind))
	}
}

func TestResumeReplaceStructuredData(t *testing.T) {
	repo := NewResumeRepository(openTestClient(t), repoLogger())
	row := mustCreate(t, repo, "replace")
	ctx := context.Background()

	require.NoError(t, repo.MergeFragment(ctx, row.ID, constants.FieldSkills, json.RawMessage(`{"soft":[]}`)))

	got, err := repo.ReplaceStructuredData(ctx, row.ID, map[string]json.RawMessage{
		"contact": json.RawMessage(`{"full_name":"Edited"}`),
	})
	require.NoError(t, err)
	assert.Len(t, got.StructuredData, 1)
	assert.Contains(t, got.StructuredData, "contact")
}

func TestResumeListFilter(t *testing.T) {
	repo := NewResumeRepository(openTestClient(t), repoLogger())
	ctx := context.Background()

	a := mustCreate(t, repo, "list-a")
	mustCreate(t, repo, "list-b")
	require.NoError(t, repo.UpdateStatus(ctx, a.ID, constants.StatusProcessing))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	status := constants.StatusProcessing
	some, err := repo.List(ctx, &status)
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, a.ID, some[0].ID)
}

func TestResumeDeleteCascadesLedger(t *testing.T) {
	client := openTestClient(t)
	resumes := NewResumeRepository(client, repoLogger())
	ledger := NewExtractionErrorRepository(client, repoLogger())
	ctx := context.Background()

	row := mustCreate(t, resumes, "cascade")
	_, err := ledger.Record(ctx, row.ID, constants.FieldSkills, "timed out", constants.SeverityError)
	require.NoError(t, err)
	_, err = ledger.Record(ctx, row.ID, constants.FieldDocument, "unreadable", constants.SeverityError)
	require.NoError(t, err)

	require.NoError(t, resumes.Delete(ctx, row.ID))

	_, err = resumes.GetByID(ctx, row.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	left, err := ledger.List(ctx, ErrorFilter{})
	require.NoError(t, err)
	assert.Empty(t, left, "ledger rows must go with the record")
}
