// Package api provides the HTTP API for the network log translator.
package api

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Humam-hub/network-log-translator/internal/auth"
	"github.com/Humam-hub/network-log-translator/internal/explain"
	"github.com/Humam-hub/network-log-translator/internal/session"
	"github.com/Humam-hub/network-log-translator/internal/speech"
)

// Server is the API server.
type Server struct {
	sessions    *session.Manager
	requester   *explain.Requester
	synthesizer *speech.Synthesizer
	transcriber *speech.Transcriber
	issuer      *auth.Issuer
	logger      *zap.Logger
	mux         *http.ServeMux

	feedbackUp   atomic.Int64
	feedbackDown atomic.Int64
}

// Config holds API server dependencies. Requester and Transcriber may be nil
// when the API key is missing; the affected endpoints then report the
// configuration problem instead of crashing the process.
type Config struct {
	Sessions    *session.Manager
	Requester   *explain.Requester
	Synthesizer *speech.Synthesizer
	Transcriber *speech.Transcriber
	Issuer      *auth.Issuer
	Logger      *zap.Logger
}

// NewServer creates a new API server.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		sessions:    cfg.Sessions,
		requester:   cfg.Requester,
		synthesizer: cfg.Synthesizer,
		transcriber: cfg.Transcriber,
		issuer:      cfg.Issuer,
		logger:      logger,
		mux:         http.NewServeMux(),
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	authMiddleware := auth.Middleware(s.issuer)

	// Public endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /api/languages", s.handleListLanguages)
	s.mux.HandleFunc("GET /api/errors/common", s.handleListCommonErrors)
	s.mux.HandleFunc("POST /api/sessions", s.handleCreateSession)

	// Session-scoped endpoints (require a session token)
	s.mux.HandleFunc("DELETE /api/sessions/{sessionID}", s.withAuth(authMiddleware, s.handleDeleteSession))
	s.mux.HandleFunc("POST /api/sessions/{sessionID}/analyze", s.withAuth(authMiddleware, s.handleAnalyze))
	s.mux.HandleFunc("GET /api/sessions/{sessionID}/analyze/stream", s.withAuth(authMiddleware, s.handleAnalyzeStream))
	s.mux.HandleFunc("GET /api/sessions/{sessionID}/history", s.withAuth(authMiddleware, s.handleHistory))
	s.mux.HandleFunc("POST /api/sessions/{sessionID}/speech", s.withAuth(authMiddleware, s.handleSpeech))
	s.mux.HandleFunc("POST /api/sessions/{sessionID}/transcribe", s.withAuth(authMiddleware, s.handleTranscribe))
	s.mux.HandleFunc("POST /api/sessions/{sessionID}/feedback", s.withAuth(authMiddleware, s.handleFeedback))
}

func (s *Server) withAuth(middleware func(http.Handler) http.Handler, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware(http.HandlerFunc(handler)).ServeHTTP(w, r)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
