package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/common"
)

func TestLedgerRecordAndListForResume(t *testing.T) {
	client := openTestClient(t)
	resumes := NewResumeRepository(client, repoLogger())
	ledger := NewExtractionErrorRepository(client, repoLogger())
	ctx := context.Background()

	row := mustCreate(t, resumes, "ledger-1")

	entry, err := ledger.Record(ctx, row.ID, constants.FieldSkills, "context deadline exceeded", constants.SeverityError)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.False(t, entry.Resolved)
	assert.Nil(t, entry.ResolvedAt)
	assert.False(t, entry.OccurredAt.IsZero())

	_, err = ledger.Record(ctx, row.ID, constants.FieldContact, "bad response", constants.SeverityWarning)
	require.NoError(t, err)

	entries, err := ledger.ListForResume(ctx, row.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLedgerRecordRejectsUnknownResume(t *testing.T) {
	ledger := NewExtractionErrorRepository(openTestClient(t), repoLogger())

	_, err := ledger.Record(context.Background(), uuid.New(), constants.FieldSkills, "orphan", constants.SeverityError)
	assert.Error(t, err, "the FK must reject entries for missing records")
}

func TestLedgerListFilters(t *testing.T) {
	client := openTestClient(t)
	resumes := NewResumeRepository(client, repoLogger())
	ledger := NewExtractionErrorRepository(client, repoLogger())
	ctx := context.Background()

	row := mustCreate(t, resumes, "ledger-filter")
	e1, err := ledger.Record(ctx, row.ID, constants.FieldSkills, "a", constants.SeverityError)
	require.NoError(t, err)
	_, err = ledger.Record(ctx, row.ID, constants.FieldContact, "b", constants.SeverityWarning)
	require.NoError(t, err)
	_, err = ledger.MarkResolved(ctx, e1.ID)
	require.NoError(t, err)

	sev := constants.SeverityWarning
	warnings, err := ledger.List(ctx, ErrorFilter{Severity: &sev})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "b", warnings[0].Message)

	unresolved := false
	open, err := ledger.List(ctx, ErrorFilter{Resolved: &unresolved})
	require.NoError(t, err)
	require.Len(t, open, 1)

	limited, err := ledger.List(ctx, ErrorFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestLedgerMarkResolved(t *testing.T) {
	client := openTestClient(t)
	resumes := NewResumeRepository(client, repoLogger())
	ledger := NewExtractionErrorRepository(client, repoLogger())
	ctx := context.Background()

	row := mustCreate(t, resumes, "ledger-resolve")
	entry, err := ledger.Record(ctx, row.ID, constants.FieldEducation, "flaky", constants.SeverityError)
	require.NoError(t, err)

	resolved, err := ledger.MarkResolved(ctx, entry.ID)
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)
	require.NotNil(t, resolved.ResolvedAt)

	_, err = ledger.MarkResolved(ctx, uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestLedgerStats(t *testing.T) {
	client := openTestClient(t)
	resumes := NewResumeRepository(client, repoLogger())
	ledger := NewExtractionErrorRepository(client, repoLogger())
	ctx := context.Background()

	row := mustCreate(t, resumes, "ledger-stats")
	_, err := ledger.Record(ctx, row.ID, constants.FieldSkills, "a", constants.SeverityError)
	require.NoError(t, err)
	_, err = ledger.Record(ctx, row.ID, constants.FieldSkills, "b", constants.SeverityError)
	require.NoError(t, err)
	e3, err := ledger.Record(ctx, row.ID, constants.FieldDocument, "c", constants.SeverityError)
	require.NoError(t, err)
	_, err = ledger.MarkResolved(ctx, e3.ID)
	require.NoError(t, err)

	stats, err := ledger.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Unresolved)
	assert.Equal(t, map[string]int{"skills": 2, "document": 1}, stats.ByKind)
}

func TestLedgerCleanup(t *testing.T) {
	client := openTestClient(t)
	resumes := NewResumeRepository(client, repoLogger())
	ledger := NewExtractionErrorRepository(client, repoLogger())
	ctx := context.Background()

	row := mustCreate(t, resumes, "ledger-cleanup")
	e1, err := ledger.Record(ctx, row.ID, constants.FieldSkills, "old resolved", constants.SeverityError)
	require.NoError(t, err)
	_, err = ledger.Record(ctx, row.ID, constants.FieldContact, "old open", constants.SeverityError)
	require.NoError(t, err)
	_, err = ledger.MarkResolved(ctx, e1.ID)
	require.NoError(t, err)

	// cutoff in the future makes both entries "old"
	cutoff := time.Now().UTC().Add(time.Hour)

	n, err := ledger.Cleanup(ctx, cutoff, true)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "resolved_only keeps the open entry")

	n, err = ledger.Cleanup(ctx, cutoff, false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	left, err := ledger.List(ctx, ErrorFilter{})
	require.NoError(t, err)
	assert.Empty(t, left)
}
