package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewise/resume-ingest/constants"
	"github.com/hirewise/resume-ingest/internal/llm"
)

func chatResponse(content string) string {
	bs, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(bs)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4o-mini",
	}, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
}

func TestExtractHappyPath(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatResponse(`{"headline":"Platform Engineer","summary":"Ten years of infra work."}`)))
	})

	fragment, err := client.Extract(context.Background(), "resume text", constants.FieldSummary)
	require.NoError(t, err)
	assert.JSONEq(t, `{"headline":"Platform Engineer","summary":"Ten years of infra work."}`, string(fragment))

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	msgs := gotBody["messages"].([]any)
	require.Len(t, msgs, 1)
	content := msgs[0].(map[string]any)["content"].(string)
	assert.Contains(t, content, "resume text")
	assert.Contains(t, content, "Return ONLY valid JSON")
}

func TestExtractStripsCodeFences(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse("```json\n{\"headline\":null,\"summary\":null}\n```")))
	})

	fragment, err := client.Extract(context.Background(), "text", constants.FieldSummary)
	require.NoError(t, err)
	assert.JSONEq(t, `{"headline":null,"summary":null}`, string(fragment))
}

func TestExtractRejectsSchemaViolation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"headline":"x","confidence":0.99}`)))
	})

	_, err := client.Extract(context.Background(), "text", constants.FieldSummary)
	assert.ErrorIs(t, err, llm.ErrMalformedResponse)
}

func TestExtractRejectsNonJSONAnswer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse("Sure! Here is the JSON you asked for:")))
	})

	_, err := client.Extract(context.Background(), "text", constants.FieldSummary)
	assert.ErrorIs(t, err, llm.ErrMalformedResponse)
}

func TestExtractNoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Extract(context.Background(), "text", constants.FieldContact)
	assert.ErrorIs(t, err, llm.ErrMalformedResponse)
}

func TestExtractHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	})

	_, err := client.Extract(context.Background(), "text", constants.FieldContact)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                      `{"a":1}`,
		"```json\n{\"a\":1}\n```":        `{"a":1}`,
		"```\n{\"a\":1}\n```":            `{"a":1}`,
		"  \n```json\n{\"a\":1}\n```\n ": `{"a":1}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, stripFences(in))
	}
}
