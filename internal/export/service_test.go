package export

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/repository"
	"github.com/hirewise/resume-ingest/internal/repository/repotest"
)

func TestExportResumesXLSX(t *testing.T) {
	store := repotest.NewStore()
	ctx := context.Background()

	row, err := store.Resumes.Create(ctx, repository.CreateResumeParams{
		FileHash: "h1", FileName: "jane.pdf", FilePath: "/u/jane.pdf", FileSize: 2048, FileType: "pdf",
	})
	require.NoError(t, err)
	require.NoError(t, store.Resumes.MergeFragment(ctx, row.ID, constants.FieldContact, json.RawMessage(`{}`)))
	require.NoError(t, store.Resumes.MergeFragment(ctx, row.ID, constants.FieldSkills, json.RawMessage(`{}`)))
	_, err = store.Ledger.Record(ctx, row.ID, constants.FieldSummary, "timed out", constants.SeverityError)
	require.NoError(t, err)
	require.NoError(t, store.Resumes.UpdateStatus(ctx, row.ID, constants.StatusCompleted))

	svc := NewService(store.Resumes, store.Ledger, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	data, err := svc.ExportResumesXLSX(ctx, nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	get := func(cell string) string {
		v, err := wb.GetCellValue("Resumes", cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "File Name", get("A1"))
	assert.Equal(t, "jane.pdf", get("A2"))
	assert.Equal(t, "pdf", get("B2"))
	assert.Equal(t, "2048", get("C2"))
	assert.Equal(t, string(constants.StatusCompleted), get("D2"))
	assert.Equal(t, "contact, skills", get("G2"))
	assert.Equal(t, "1", get("H2"))
}

func TestExportResumesXLSXStatusFilter(t *testing.T) {
	store := repotest.NewStore()
	ctx := context.Background()

	_, err := store.Resumes.Create(ctx, repository.CreateResumeParams{
		FileHash: "h1", FileName: "pending.pdf", FilePath: "/u/p.pdf", FileSize: 1, FileType: "pdf",
	})
	require.NoError(t, err)

	svc := NewService(store.Resumes, store.Ledger, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	status := constants.StatusCompleted
	data, err := svc.ExportResumesXLSX(ctx, &status)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	v, err := wb.GetCellValue("Resumes", "A2")
	require.NoError(t, err)
	assert.Empty(t, v, "no rows match the filter")
}
