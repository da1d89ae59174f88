package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cardq/cardq/internal/deck"
	"github.com/cardq/cardq/internal/quiz"
)

type quizStartRequest struct {
	Folder string `json:"folder"`
	Size   int    `json:"size"`
	Mode   string `json:"mode"`
}

func (s *Server) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	var req quizStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Folder == "" {
		req.Folder = deck.FolderAll
	}
	if req.Size <= 0 {
		req.Size = s.cfg.Quiz.Size
	}
	mode := quiz.Mode(req.Mode)
	if mode != quiz.ModeMultipleChoice && mode != quiz.ModeTyped {
		mode = quiz.Mode(s.cfg.Quiz.Mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pool := s.cards
	if req.Folder != deck.FolderAll {
		q, err := deck.Build(s.cards, deck.Options{Folder: req.Folder}, nil, time.Now())
		if err != nil {
			s.writeError(w, statusFor(err), err)
			return
		}
		pool = q.Cards()
	}

	session, err := quiz.Start(pool, s.cards, req.Size, mode, s.rng)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.session = session
	s.saveQuiz()
	s.presentQuestion(w)
}

func (s *Server) handleQuizQuestion(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		s.writeError(w, http.StatusConflict, errors.New("no quiz in progress"))
		return
	}
	s.presentQuestion(w)
}

type quizAnswerRequest struct {
	Response string `json:"response"`
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var req quizAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		s.writeError(w, http.StatusConflict, errors.New("no quiz in progress"))
		return
	}
	q, err := s.session.Present()
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	answer, err := s.session.Submit(req.Response, time.Now())
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.recordStudy(q.Card)
	s.saveQuiz()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"correct":       answer.Correct,
		"correctAnswer": answer.CorrectAnswer,
		"explanation":   q.Card.Explanation,
		"score":         s.session.Score(),
	})
}

func (s *Server) handleQuizNext(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		s.writeError(w, http.StatusConflict, errors.New("no quiz in progress"))
		return
	}
	if done := s.session.Next(); done {
		s.finishQuiz(w)
		return
	}
	s.saveQuiz()
	s.presentQuestion(w)
}

type quizTickRequest struct {
	Seconds int `json:"seconds"`
}

func (s *Server) handleQuizTick(w http.ResponseWriter, r *http.Request) {
	var req quizTickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		s.writeError(w, http.StatusConflict, errors.New("no quiz in progress"))
		return
	}
	s.session.Tick(req.Seconds)
	s.writeJSON(w, http.StatusOK, map[string]int{"elapsed": s.session.Elapsed()})
}

func (s *Server) handleQuizAbort(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.session.Abort()
		s.session = nil
	}
	if err := s.db.DeleteQuizBlob(); err != nil {
		s.logger.Error("failed to discard quiz save", "error", err)
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"aborted": true})
}

func (s *Server) handleQuizResume(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, err := s.db.LoadQuizBlob()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if blob == nil {
		s.writeError(w, http.StatusNotFound, errors.New("no saved quiz"))
		return
	}
	session, err := quiz.Resume(blob, s.cards, s.rng)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.session = session
	if err := s.db.DeleteQuizBlob(); err != nil {
		s.logger.Error("failed to clear quiz save", "error", err)
	}
	s.presentQuestion(w)
}

func (s *Server) handleQuizResult(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		s.writeError(w, http.StatusConflict, errors.New("no quiz in progress"))
		return
	}
	summary, err := s.session.Result()
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleQuizReviewWrong(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		s.writeError(w, http.StatusConflict, errors.New("no quiz in progress"))
		return
	}
	session, err := s.session.ReviewWrong()
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.session = session
	s.saveQuiz()
	s.presentQuestion(w)
}

// presentQuestion writes the current question. Callers hold the lock.
func (s *Server) presentQuestion(w http.ResponseWriter) {
	q, err := s.session.Present()
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"index":   s.session.Pos() + 1,
		"total":   s.session.Len(),
		"score":   s.session.Score(),
		"card":    q.Card,
		"choices": q.Choices,
		"mode":    s.session.Mode(),
	})
}

// saveQuiz persists the resume blob for the in-flight session. Callers
// hold the lock.
func (s *Server) saveQuiz() {
	blob, err := s.session.Serialize()
	if err != nil {
		s.logger.Error("failed to serialize quiz session", "error", err)
		return
	}
	if err := s.db.SaveQuizBlob(blob); err != nil {
		s.logger.Error("failed to save quiz session", "error", err)
	}
}

// finishQuiz writes the final summary and drops the save. Callers hold
// the lock.
func (s *Server) finishQuiz(w http.ResponseWriter) {
	summary, err := s.session.Result()
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	if err := s.db.DeleteQuizBlob(); err != nil {
		s.logger.Error("failed to clear quiz save", "error", err)
	}
	s.writeJSON(w, http.StatusOK, summary)
}
