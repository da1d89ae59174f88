package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cardq/cardq/internal/deckimport"
)

type sourceRequest struct {
	Path string `json:"path"`
}

func (s *Server) handlePostSource(w http.ResponseWriter, r *http.Request) {
	var req sourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Path == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("path is required"))
		return
	}

	existing, err := s.db.FindSourceByPath(req.Path)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if existing != nil {
		s.writeError(w, http.StatusConflict, errors.New("source already registered"))
		return
	}

	sourceType := deckimport.DetectType(req.Path)
	id, err := s.db.InsertSource(req.Path, sourceType)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := deckimport.Run(s.db, s.cfg.ReposDir); err != nil {
		s.logger.Error("deck import failed", "error", err)
	}
	if err := s.Reload(); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"id":   id,
		"path": req.Path,
		"type": sourceType,
	})
}

func (s *Server) handleDeleteSource(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid source id"))
		return
	}
	if err := s.db.DeleteSource(id); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.Reload(); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
