package api

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Humam-hub/network-log-translator/internal/language"
	"github.com/Humam-hub/network-log-translator/internal/speech"
)

// Bound uploaded audio to 10 MB.
const maxAudioBytes = 10 << 20

// handleSpeech synthesizes the given text in the session's language and
// streams the MP3 back. The temporary audio file is removed as soon as the
// response is written, not on a later user action.
func (s *Server) handleSpeech(w http.ResponseWriter, r *http.Request) {
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
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text required")
		return
	}

	langCode := language.FallbackCode(sess.Language)
	audio, err := s.synthesizer.Synthesize(r.Context(), req.Text, langCode)
	if err != nil {
		s.logger.Warn("speech synthesis failed",
			zap.String("session_id", sess.ID.String()),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, "Error generating speech")
		return
	}
	defer audio.Close()

	f, err := audio.Open()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error generating speech")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	_, _ = io.Copy(w, f)
}

// handleTranscribe converts uploaded voice audio to text. A capture timeout
// is not an error to the client: the transcript comes back empty with a
// warning, matching the no-speech-detected experience.
func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	if s.transcriber == nil {
		writeError(w, http.StatusServiceUnavailable, "GROQ_API_KEY not found, transcription unavailable")
		return
	}

	if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "audio file required")
		return
	}
	defer file.Close()

	locale := language.Locale(sess.Language)
	transcript, err := s.transcriber.Transcribe(r.Context(), file, header.Filename, locale)
	if err != nil {
		if errors.Is(err, speech.ErrCaptureTimeout) {
			writeJSON(w, http.StatusOK, map[string]string{
				"transcript": "",
				"warning":    err.Error(),
			})
			return
		}
		s.logger.Warn("transcription failed",
			zap.String("session_id", sess.ID.String()),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, "Could not recognize speech")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"transcript": transcript})
}
