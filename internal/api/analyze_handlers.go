package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Humam-hub/network-log-translator/internal/classifier"
	"github.com/Humam-hub/network-log-translator/internal/explain"
	"github.com/Humam-hub/network-log-translator/internal/language"
	"github.com/Humam-hub/network-log-translator/internal/session"
)

const defaultHistoryLimit = 3

// handleAnalyze runs one analysis: explanation request, classification,
// history record. A failed explanation records nothing.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := s.analyze(r.Context(), sess, req.Text)
	if err != nil {
		s.writeAnalyzeError(w, sess, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// analyze performs the full analysis pipeline for a session.
func (s *Server) analyze(ctx context.Context, sess *session.Session, text string) (*session.ErrorReport, error) {
	if s.requester == nil {
		return nil, errMissingConfiguration
	}

	langCode := language.FallbackCode(sess.Language)
	explanation, err := s.requester.Explain(ctx, text, langCode)
	if err != nil {
		return nil, err
	}

	category := classifier.Classify(explanation)
	report := session.ErrorReport{
		ID:          uuid.New(),
		RawText:     text,
		Explanation: explanation,
		Category:    category,
		Severity:    classifier.DetectSeverity(explanation),
		QuickFix:    classifier.QuickFixFor(category),
		CreatedAt:   time.Now(),
	}
	sess.Record(report)

	s.logger.Info("analysis complete",
		zap.String("session_id", sess.ID.String()),
		zap.String("category", string(report.Category)),
		zap.String("severity", string(report.Severity)))

	return &report, nil
}

var errMissingConfiguration = errors.New("GROQ_API_KEY not found, analysis unavailable")

func (s *Server) writeAnalyzeError(w http.ResponseWriter, sess *session.Session, err error) {
	switch {
	case errors.Is(err, explain.ErrEmptyInput):
		writeError(w, http.StatusBadRequest, "Please enter error details")
	case errors.Is(err, explain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, errMissingConfiguration):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		s.logger.Warn("explanation request failed",
			zap.String("session_id", sess.ID.String()),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, "Failed to generate explanation")
	}
}

// handleAnalyzeStream runs an analysis while streaming progress as
// server-sent events: status, then the final report or an error.
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	text := r.URL.Query().Get("text")

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	emitter := NewSSEEmitter(w)
	if emitter == nil {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	emitter.Emit(ProgressEvent{Type: "status", Message: "Analyzing error..."})

	report, err := s.analyze(r.Context(), sess, text)
	if err != nil {
		emitter.Emit(ProgressEvent{Type: "error", Message: userMessage(err)})
		return
	}

	emitter.Emit(ProgressEvent{Type: "explanation", Message: report.Explanation})
	emitter.Emit(ProgressEvent{Type: "classified",
		Message: string(report.Severity) + " " + string(report.Category) + " issue"})
	emitter.Emit(ProgressEvent{Type: "done", Report: report})
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, explain.ErrEmptyInput):
		return "Please enter error details"
	case errors.Is(err, explain.ErrRateLimited), errors.Is(err, errMissingConfiguration):
		return err.Error()
	default:
		return "Failed to generate explanation"
	}
}

// handleHistory returns the most recent analyses, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	limit := defaultHistoryLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"history": sess.Recent(limit),
		"total":   sess.Len(),
	})
}

// handleFeedback records a thumbs up/down for the session's last analysis.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Helpful bool `json:"helpful"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Helpful {
		s.feedbackUp.Add(1)
	} else {
		s.feedbackDown.Add(1)
	}

	s.logger.Info("feedback received",
		zap.String("session_id", sess.ID.String()),
		zap.Bool("helpful", req.Helpful))

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Thank you for your feedback!",
	})
}
