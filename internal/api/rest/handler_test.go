package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/repository/memory"
	"github.com/daybook-app/daybook/internal/usecase/diary"
	"github.com/daybook-app/daybook/internal/usecase/memo"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	repo := memory.New()

	diaryUC, err := diary.New(diary.NewOptions(repo))
	require.NoError(t, err)

	memoUC, err := memo.New(memo.NewOptions(repo))
	require.NoError(t, err)

	return NewHandler(diaryUC, memoUC)
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))

	return payload
}

func TestDiaryEntryLifecycle(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/api/diary-entries", map[string]any{
		"title":   "Day 1",
		"content": "Good day",
		"emotion": "😊",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	created := decodeBody(t, resp)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Day 1", created["title"])
	assert.Equal(t, "Good day", created["content"])
	assert.Equal(t, "😊", created["emotion"])
	assert.NotEmpty(t, created["createdAt"])

	resp = doRequest(t, h, http.MethodGet, "/api/diary-entries/"+id, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, created, decodeBody(t, resp))

	resp = doRequest(t, h, http.MethodDelete, "/api/diary-entries/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doRequest(t, h, http.MethodGet, "/api/diary-entries/"+id, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Diary entry not found", decodeBody(t, resp)["message"])

	resp = doRequest(t, h, http.MethodDelete, "/api/diary-entries/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListDiaryEntriesNewestFirst(t *testing.T) {
	h := newTestHandler(t)

	for _, title := range []string{"first", "second", "third"} {
		resp := doRequest(t, h, http.MethodPost, "/api/diary-entries", map[string]any{
			"title":   title,
			"content": "text",
			"emotion": "😊",
		})
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	resp := doRequest(t, h, http.MethodGet, "/api/diary-entries", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0]["title"])
	assert.Equal(t, "second", entries[1]["title"])
	assert.Equal(t, "first", entries[2]["title"])
}

func TestCreateDiaryEntryValidation(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/api/diary-entries", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	payload := decodeBody(t, resp)
	assert.Equal(t, "Invalid data", payload["message"])

	violated, ok := payload["errors"].([]any)
	require.True(t, ok)
	require.Len(t, violated, 3)

	fields := make([]string, 0, len(violated))
	for _, v := range violated {
		fields = append(fields, v.(map[string]any)["field"].(string))
	}
	assert.ElementsMatch(t, []string{"title", "content", "emotion"}, fields)

	// whitespace-only title is rejected too
	resp = doRequest(t, h, http.MethodPost, "/api/diary-entries", map[string]any{
		"title":   "   ",
		"content": "Good day",
		"emotion": "😊",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// nothing reached storage
	resp = doRequest(t, h, http.MethodGet, "/api/diary-entries", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", strings.TrimSpace(resp.Body.String()))
}

func TestCreateDiaryEntryInvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/diary-entries", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateDiaryEntry(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/api/diary-entries", map[string]any{
		"title":   "Day 1",
		"content": "Good day",
		"emotion": "😊",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	created := decodeBody(t, resp)
	id := created["id"].(string)

	resp = doRequest(t, h, http.MethodPatch, "/api/diary-entries/"+id, map[string]any{
		"emotion": "😢",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	updated := decodeBody(t, resp)
	assert.Equal(t, "😢", updated["emotion"])
	assert.Equal(t, created["title"], updated["title"])
	assert.Equal(t, created["content"], updated["content"])
	assert.Equal(t, created["createdAt"], updated["createdAt"])

	// empty patch body changes nothing
	resp = doRequest(t, h, http.MethodPatch, "/api/diary-entries/"+id, map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, updated, decodeBody(t, resp))

	// whitespace-only value is a validation failure
	resp = doRequest(t, h, http.MethodPatch, "/api/diary-entries/"+id, map[string]any{
		"title": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doRequest(t, h, http.MethodPatch, "/api/diary-entries/missing", map[string]any{
		"title": "whatever",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSearchDiaryEntries(t *testing.T) {
	h := newTestHandler(t)

	for _, entry := range []map[string]any{
		{"title": "Hello World", "content": "nothing here", "emotion": "😊"},
		{"title": "Another day", "content": "hello there", "emotion": "😐"},
		{"title": "Untitled", "content": "unrelated", "emotion": "😴"},
	} {
		resp := doRequest(t, h, http.MethodPost, "/api/diary-entries", entry)
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	resp := doRequest(t, h, http.MethodGet, "/api/diary-entries/search?q=HELLO", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Another day", entries[0]["title"])
	assert.Equal(t, "Hello World", entries[1]["title"])

	resp = doRequest(t, h, http.MethodGet, "/api/diary-entries/search", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Search query is required", decodeBody(t, resp)["message"])
}

func TestMemoLifecycle(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/api/memos", map[string]any{
		"content": "buy milk",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	created := decodeBody(t, resp)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "buy milk", created["content"])

	resp = doRequest(t, h, http.MethodGet, "/api/memos/"+id, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, created, decodeBody(t, resp))

	resp = doRequest(t, h, http.MethodPatch, "/api/memos/"+id, map[string]any{
		"content": "buy oat milk",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "buy oat milk", decodeBody(t, resp)["content"])

	resp = doRequest(t, h, http.MethodDelete, "/api/memos/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doRequest(t, h, http.MethodGet, "/api/memos/"+id, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Memo not found", decodeBody(t, resp)["message"])
}

func TestCreateMemoMissingContent(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/api/memos", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	payload := decodeBody(t, resp)
	assert.Equal(t, "Invalid data", payload["message"])

	violated, ok := payload["errors"].([]any)
	require.True(t, ok)
	require.Len(t, violated, 1)
	assert.Equal(t, "content", violated[0].(map[string]any)["field"])

	// storage was never invoked
	resp = doRequest(t, h, http.MethodGet, "/api/memos", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", strings.TrimSpace(resp.Body.String()))
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}
