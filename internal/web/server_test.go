package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/cardq/cardq/internal/config"
	"github.com/cardq/cardq/internal/domain"
	"github.com/cardq/cardq/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	questions := []struct{ q, a, folder string }{
		{"信頼性のある通信を提供するプロトコルは？", "TCP", "transport"},
		{"コネクションレスのプロトコルは？", "UDP", "transport"},
		{"名前解決を行うプロトコルは？", "DNS", "application"},
		{"メール送信のプロトコルは？", "SMTP", "application"},
		{"アドレス自動設定のプロトコルは？", "DHCP", "application"},
	}
	for i, q := range questions {
		card := domain.NewCard(q.q, q.a, q.folder)
		require.NoError(t, db.InsertCard(card, fmt.Sprintf("hash-%d", i), 0))
	}

	cfg := config.Default()
	cfg.ReposDir = t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := NewServer(db, cfg, logger)
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded),
			"body: %s", rec.Body.String())
	}
	return rec, decoded
}

func TestGetCards(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var cards []*domain.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	assert.Len(t, cards, 5)
}

func TestGetStats(t *testing.T) {
	s := newTestServer(t)
	rec, body := do(t, s, http.MethodGet, "/api/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(5), summary["total"])
	assert.Equal(t, float64(5), summary["due"])
}

func TestStudyFlow(t *testing.T) {
	s := newTestServer(t)

	rec, body := do(t, s, http.MethodPost, "/api/study/queue", map[string]any{"folder": "transport"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["total"])
	require.NotNil(t, body["current"])

	rec, body = do(t, s, http.MethodPost, "/api/study/rate", map[string]any{"grade": 4})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["done"])
	card := body["card"].(map[string]any)
	assert.Equal(t, float64(1), card["reviewCount"])

	rec, body = do(t, s, http.MethodPost, "/api/study/rate", map[string]any{"grade": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["done"])
}

func TestStudyRateRejectsBadGrade(t *testing.T) {
	s := newTestServer(t)
	rec, _ := do(t, s, http.MethodPost, "/api/study/queue", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, s, http.MethodPost, "/api/study/rate", map[string]any{"grade": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudyQueueEmptyFilter(t *testing.T) {
	s := newTestServer(t)

	rec, _ := do(t, s, http.MethodPost, "/api/study/queue", map[string]any{"folder": "nope"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, body := do(t, s, http.MethodPost, "/api/study/queue",
		map[string]any{"folder": "nope", "fallbackToAll": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), body["total"])
}

func TestQuizFlow(t *testing.T) {
	s := newTestServer(t)

	rec, body := do(t, s, http.MethodPost, "/api/quiz/start",
		map[string]any{"size": 2, "mode": "typed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["total"])

	for i := 1; i <= 2; i++ {
		assert.Equal(t, float64(i), body["index"])
		card := body["card"].(map[string]any)
		answer := card["answer"].(string)

		rec, body = do(t, s, http.MethodPost, "/api/quiz/answer", map[string]any{"response": answer})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["correct"])

		rec, body = do(t, s, http.MethodPost, "/api/quiz/next", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// The final next returned the summary.
	assert.Equal(t, float64(2), body["score"])
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, float64(100), body["percentage"])
}

func TestQuizStartInsufficientPool(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.InsertCard(domain.NewCard("q", "a", "f"), "h", 0))

	s, err := NewServer(db, config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	rec, _ := do(t, s, http.MethodPost, "/api/quiz/start", map[string]any{})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestQuizResume(t *testing.T) {
	s := newTestServer(t)

	rec, body := do(t, s, http.MethodPost, "/api/quiz/start",
		map[string]any{"size": 3, "mode": "multipleChoice"})
	require.Equal(t, http.StatusOK, rec.Code)
	started := body["card"].(map[string]any)["id"]

	// Simulate a fresh process picking up the saved session.
	s.session = nil
	rec, body = do(t, s, http.MethodPost, "/api/quiz/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, started, body["card"].(map[string]any)["id"])

	// The save was consumed.
	s.session = nil
	rec, _ = do(t, s, http.MethodPost, "/api/quiz/resume", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuizTickAndAbort(t *testing.T) {
	s := newTestServer(t)

	rec, _ := do(t, s, http.MethodPost, "/api/quiz/start", map[string]any{"size": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := do(t, s, http.MethodPost, "/api/quiz/tick", map[string]any{"seconds": 12})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(12), body["elapsed"])

	rec, _ = do(t, s, http.MethodPost, "/api/quiz/abort", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, s, http.MethodGet, "/api/quiz/question", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSourcesAPI(t *testing.T) {
	s := newTestServer(t)
	deckDir := t.TempDir()

	rec, body := do(t, s, http.MethodPost, "/api/sources", map[string]any{"path": deckDir})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "local", body["type"])
	id := int64(body["id"].(float64))

	// Re-registering the same path conflicts.
	rec, _ = do(t, s, http.MethodPost, "/api/sources", map[string]any{"path": deckDir})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = do(t, s, http.MethodDelete, fmt.Sprintf("/api/sources/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
