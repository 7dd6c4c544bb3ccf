package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/async"
	"github.com/hirewise/resume-ingest/internal/export"
	"github.com/hirewise/resume-ingest/internal/ingest"
	"github.com/hirewise/resume-ingest/internal/repository/repotest"
)

type nopQueue struct{}

func (nopQueue) Enqueue(context.Context, async.Job) error { return nil }
func (nopQueue) Shutdown(context.Context)                 {}

type testEnv struct {
	store  *repotest.Store
	router http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	store := repotest.NewStore()
	ingestor := ingest.NewService(logger, store.Resumes, nopQueue{}, t.TempDir(), 1<<20)
	exporter := export.NewService(store.Resumes, store.Ledger, logger)
	srv := New(logger, ingestor, store.Resumes, store.Ledger, exporter, 1<<20)
	return &testEnv{store: store, router: srv.Router()}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func multipartUpload(t *testing.T, fileName string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func (e *testEnv) upload(t *testing.T, fileName string, data []byte) map[string]any {
	t.Helper()
	body, ctype := multipartUpload(t, fileName, data)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/upload", body)
	req.Header.Set("Content-Type", ctype)
	rec := e.do(t, req)
	require.Contains(t, []int{http.StatusAccepted, http.StatusOK}, rec.Code, rec.Body.String())
	return e.decode(t, rec)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "ok"}, env.decode(t, rec))
}

func TestUploadAccepted(t *testing.T) {
	env := newTestEnv(t)
	body, ctype := multipartUpload(t, "jane.txt", []byte("Jane Doe, Engineer"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/upload", body)
	req.Header.Set("Content-Type", ctype)

	rec := env.do(t, req)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	resp := env.decode(t, rec)
	assert.Equal(t, "jane.txt", resp["filename"])
	assert.Equal(t, string(constants.StatusPending), resp["status"])
	assert.Equal(t, false, resp["duplicated"])
	_, err := uuid.Parse(resp["id"].(string))
	assert.NoError(t, err)
}

func TestUploadDuplicateReturns200(t *testing.T) {
	env := newTestEnv(t)
	first := env.upload(t, "a.txt", []byte("same bytes"))

	body, ctype := multipartUpload(t, "b.txt", []byte("same bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/upload", body)
	req.Header.Set("Content-Type", ctype)
	rec := env.do(t, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := env.decode(t, rec)
	assert.Equal(t, true, resp["duplicated"])
	assert.Equal(t, first["id"], resp["id"])
}

func TestUploadRejectsBadType(t *testing.T) {
	env := newTestEnv(t)
	body, ctype := multipartUpload(t, "malware.exe", []byte("MZ"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/upload", body)
	req.Header.Set("Content-Type", ctype)

	rec := env.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.decode(t, rec)["error"], "unsupported file type")
}

func TestUploadMissingFileField(t *testing.T) {
	env := newTestEnv(t)
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := env.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStatusAndNotFound(t *testing.T) {
	env := newTestEnv(t)
	up := env.upload(t, "r.txt", []byte("text"))

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+up["id"].(string)+"/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := env.decode(t, rec)
	assert.Equal(t, string(constants.StatusPending), resp["status"])
	assert.NotContains(t, resp, "processed_at")

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+uuid.NewString()+"/status", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/not-a-uuid/status", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetResultPartial(t *testing.T) {
	env := newTestEnv(t)
	up := env.upload(t, "r.txt", []byte("text"))
	id := uuid.MustParse(up["id"].(string))

	// empty map, never null, before anything merged
	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+id.String()+"/result", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"structured_data":{}`)

	require.NoError(t, env.store.Resumes.MergeFragment(context.Background(), id,
		constants.FieldContact, json.RawMessage(`{"full_name":"Jane"}`)))

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+id.String()+"/result", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := env.decode(t, rec)
	data := resp["structured_data"].(map[string]any)
	require.Contains(t, data, "contact")
}

func TestListResumesFilter(t *testing.T) {
	env := newTestEnv(t)
	env.upload(t, "a.txt", []byte("aaa"))
	up := env.upload(t, "b.txt", []byte("bbb"))
	id := uuid.MustParse(up["id"].(string))
	require.NoError(t, env.store.Resumes.UpdateStatus(context.Background(), id, constants.StatusProcessing))

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, env.decode(t, rec)["count"])

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/?status=PROCESSING", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, env.decode(t, rec)["count"])

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/?status=bogus", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateResumeStructuredData(t *testing.T) {
	env := newTestEnv(t)
	up := env.upload(t, "r.txt", []byte("text"))
	id := up["id"].(string)

	payload := `{"structured_data":{"contact":{"full_name":"Edited Name"}}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/"+id+"/", bytes.NewBufferString(payload))
	rec := env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got, err := env.store.Resumes.GetByID(context.Background(), uuid.MustParse(id))
	require.NoError(t, err)
	assert.Contains(t, got.StructuredData, "contact")

	req = httptest.NewRequest(http.MethodPut, "/api/v1/resumes/"+id+"/", bytes.NewBufferString(`{}`))
	rec = env.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteResume(t *testing.T) {
	env := newTestEnv(t)
	up := env.upload(t, "r.txt", []byte("delete me"))
	id := up["id"].(string)

	rec := env.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/resumes/"+id+"/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+id+"/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResumeErrorLogs(t *testing.T) {
	env := newTestEnv(t)
	up := env.upload(t, "r.txt", []byte("text"))
	id := uuid.MustParse(up["id"].(string))

	_, err := env.store.Ledger.Record(context.Background(), id, constants.FieldSkills, "timed out", constants.SeverityError)
	require.NoError(t, err)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+id.String()+"/error-logs", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := env.decode(t, rec)
	assert.EqualValues(t, 1, resp["count"])

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+uuid.NewString()+"/error-logs", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorLogEndpoints(t *testing.T) {
	env := newTestEnv(t)
	up := env.upload(t, "r.txt", []byte("text"))
	id := uuid.MustParse(up["id"].(string))

	e1, err := env.store.Ledger.Record(context.Background(), id, constants.FieldSkills, "a", constants.SeverityError)
	require.NoError(t, err)
	_, err = env.store.Ledger.Record(context.Background(), id, constants.FieldContact, "b", constants.SeverityWarning)
	require.NoError(t, err)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/error-logs/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, env.decode(t, rec)["count"])

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/error-logs/?severity=warning", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, env.decode(t, rec)["count"])

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/error-logs/?severity=fatal", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/v1/error-logs/%s/resolve", e1.ID), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/error-logs/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	stats := env.decode(t, rec)
	assert.EqualValues(t, 2, stats["total"])
	assert.EqualValues(t, 1, stats["unresolved"])

	rec = env.do(t, httptest.NewRequest(http.MethodDelete, "/api/v1/error-logs/cleanup?days_old=-1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportXLSX(t *testing.T) {
	env := newTestEnv(t)
	env.upload(t, "a.txt", []byte("export me"))

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/export", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))

	data, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "xlsx is a zip container")
}
