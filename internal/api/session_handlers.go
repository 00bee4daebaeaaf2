package api

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Humam-hub/network-log-translator/internal/auth"
	"github.com/Humam-hub/network-log-translator/internal/classifier"
	"github.com/Humam-hub/network-log-translator/internal/language"
	"github.com/Humam-hub/network-log-translator/internal/session"
)

// handleListLanguages returns the supported output languages.
func (s *Server) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"languages": language.Supported(),
	})
}

// handleListCommonErrors returns the predefined common network errors.
func (s *Server) handleListCommonErrors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"errors": classifier.CommonErrors(),
	})
}

// handleCreateSession starts a new analysis session for an output language
// and returns a signed session token.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Language == "" {
		req.Language = "English"
	}
	if !language.IsSupported(req.Language) {
		writeError(w, http.StatusBadRequest, "unsupported language: "+req.Language)
		return
	}

	sess := s.sessions.Create(req.Language)

	token, err := s.issuer.Issue(sess.ID.String(), sess.Language)
	if err != nil {
		s.sessions.Delete(sess.ID)
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	s.logger.Info("session created",
		zap.String("session_id", sess.ID.String()),
		zap.String("language", sess.Language))

	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id": sess.ID,
		"token":      token,
		"language":   sess.Language,
		"locale":     language.Locale(sess.Language),
	})
}

// handleDeleteSession tears down a session and its history.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	s.sessions.Delete(sess.ID)
	s.logger.Info("session deleted", zap.String("session_id", sess.ID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// requireSession validates the token against the {sessionID} path parameter
// and returns the live session.
func (s *Server) requireSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(r.PathValue("sessionID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session ID")
		return nil, false
	}

	if auth.SessionID(r.Context()) != id.String() {
		writeError(w, http.StatusForbidden, "token does not match session")
		return nil, false
	}

	sess := s.sessions.Get(id)
	if sess == nil {
		writeError(w, http.StatusNotFound, "session not found or expired")
		return nil, false
	}

	sess.Touch()
	return sess, true
}
