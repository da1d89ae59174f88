// Package web is the HTTP shell over the review core. It owns all I/O:
// loading the corpus, persisting scheduling updates, and keeping the
// single in-flight quiz session. Handlers serialize access with one
// mutex; the core packages themselves do no locking.
package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/cardq/cardq/internal/config"
	"github.com/cardq/cardq/internal/deck"
	"github.com/cardq/cardq/internal/domain"
	"github.com/cardq/cardq/internal/quiz"
	"github.com/cardq/cardq/internal/srs"
	"github.com/cardq/cardq/internal/stats"
	"github.com/cardq/cardq/internal/storage"
)

// Server holds the dependencies for the HTTP API.
type Server struct {
	db     *storage.DB
	cfg    config.Config
	router *http.ServeMux
	logger *slog.Logger
	rng    *rand.Rand

	mu      sync.Mutex
	cards   []*domain.Card
	tracker *stats.Tracker
	queue   *deck.Queue
	session *quiz.Session
}

// NewServer loads the corpus and study tracker and configures routes.
func NewServer(db *storage.DB, cfg config.Config, logger *slog.Logger) (*Server, error) {
	cards, err := db.GetAllCards()
	if err != nil {
		return nil, err
	}
	tracker, err := db.LoadTracker()
	if err != nil {
		return nil, err
	}
	tracker.CheckStreak(time.Now())

	s := &Server{
		db:      db,
		cfg:     cfg,
		router:  http.NewServeMux(),
		logger:  logger,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		cards:   cards,
		tracker: tracker,
	}
	s.routes()
	return s, nil
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.HandleFunc("GET /api/cards", s.handleGetCards)
	s.router.HandleFunc("GET /api/stats", s.handleGetStats)

	s.router.HandleFunc("POST /api/study/queue", s.handleBuildQueue)
	s.router.HandleFunc("GET /api/study/current", s.handleStudyCurrent)
	s.router.HandleFunc("POST /api/study/rate", s.handleStudyRate)

	s.router.HandleFunc("POST /api/quiz/start", s.handleQuizStart)
	s.router.HandleFunc("GET /api/quiz/question", s.handleQuizQuestion)
	s.router.HandleFunc("POST /api/quiz/answer", s.handleQuizAnswer)
	s.router.HandleFunc("POST /api/quiz/next", s.handleQuizNext)
	s.router.HandleFunc("POST /api/quiz/tick", s.handleQuizTick)
	s.router.HandleFunc("POST /api/quiz/abort", s.handleQuizAbort)
	s.router.HandleFunc("POST /api/quiz/resume", s.handleQuizResume)
	s.router.HandleFunc("GET /api/quiz/result", s.handleQuizResult)
	s.router.HandleFunc("POST /api/quiz/review-wrong", s.handleQuizReviewWrong)

	s.router.HandleFunc("GET /api/sources", s.handleGetSources)
	s.router.HandleFunc("POST /api/sources", s.handlePostSource)
	s.router.HandleFunc("DELETE /api/sources/{id}", s.handleDeleteSource)
}

// Reload swaps in a freshly loaded corpus, e.g. after a deck import.
// Any study queue or quiz session over the old corpus is dropped.
func (s *Server) Reload() error {
	cards, err := s.db.GetAllCards()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = cards
	s.queue = nil
	s.session = nil
	return nil
}

func (s *Server) handleGetCards(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, s.cards)
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"summary":  stats.Summarize(s.cards, s.tracker, now),
		"activity": s.tracker.Activity(now, 90),
	})
}

type buildQueueRequest struct {
	Folder        string `json:"folder"`
	DueOnly       bool   `json:"dueOnly"`
	Shuffle       bool   `json:"shuffle"`
	FallbackToAll bool   `json:"fallbackToAll"`
}

func (s *Server) handleBuildQueue(w http.ResponseWriter, r *http.Request) {
	var req buildQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Folder == "" {
		req.Folder = deck.FolderAll
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := deck.Build(s.cards, deck.Options{
		Folder:        req.Folder,
		DueOnly:       req.DueOnly,
		Shuffle:       req.Shuffle,
		FallbackToAll: req.FallbackToAll,
	}, s.rng, time.Now())
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.queue = q
	s.writeJSON(w, http.StatusOK, map[string]any{
		"total":   q.Len(),
		"current": q.Current(),
	})
}

func (s *Server) handleStudyCurrent(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queue == nil {
		s.writeError(w, http.StatusConflict, errors.New("no study queue built"))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"total":   s.queue.Len(),
		"pos":     s.queue.Pos(),
		"current": s.queue.Current(),
	})
}

type rateRequest struct {
	Grade int `json:"grade"`
}

func (s *Server) handleStudyRate(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queue == nil || s.queue.Current() == nil {
		s.writeError(w, http.StatusConflict, errors.New("no card to rate"))
		return
	}
	card := s.queue.Current()
	if err := srs.Review(card, srs.Grade(req.Grade), time.Now()); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.recordStudy(card)

	next, done := s.queue.Advance()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"card": card,
		"done": done,
		"next": next,
	})
}

func (s *Server) handleGetSources(w http.ResponseWriter, r *http.Request) {
	sources, err := s.db.GetAllSources()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sources)
}

// recordStudy persists a reviewed card and bumps the study tracker.
// Persistence failures are logged, not bounced back to the client: the
// in-memory review already happened.
func (s *Server) recordStudy(card *domain.Card) {
	if err := s.db.UpdateScheduling(card); err != nil {
		s.logger.Error("failed to persist review", "card", card.ID, "error", err)
	}
	s.tracker.MarkStudied(time.Now())
	if err := s.db.SaveTracker(s.tracker); err != nil {
		s.logger.Error("failed to persist study tracker", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps the core error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, srs.ErrInvalidGrade),
		errors.Is(err, quiz.ErrCorruptResume):
		return http.StatusBadRequest
	case errors.Is(err, deck.ErrEmptyFilter),
		errors.Is(err, quiz.ErrInsufficientPool),
		errors.Is(err, quiz.ErrNotActive),
		errors.Is(err, quiz.ErrNotFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
