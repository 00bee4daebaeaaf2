package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"
)

var (
	// ErrCaptureTimeout indicates the transcription did not finish within
	// the capture window. Callers surface a warning and treat the
	// transcript as empty.
	ErrCaptureTimeout = errors.New("listening timed out, no speech detected")

	// ErrRecognitionFailed indicates any other transcription failure.
	ErrRecognitionFailed = errors.New("could not recognize speech")
)

const (
	transcribeBaseURL = "https://api.groq.com/openai/v1"
	transcribeModel   = "whisper-large-v3"

	// Fixed capture window for voice input.
	captureTimeout = 5 * time.Second
)

// Transcriber converts captured audio to text via a hosted Whisper endpoint.
type Transcriber struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewTranscriber creates a Transcriber for the given API key.
func NewTranscriber(apiKey string) *Transcriber {
	return &Transcriber{
		apiKey:     apiKey,
		baseURL:    transcribeBaseURL,
		timeout:    captureTimeout,
		httpClient: &http.Client{},
	}
}

// NewTranscriberFromEnv creates a Transcriber using GROQ_API_KEY.
func NewTranscriberFromEnv() (*Transcriber, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GROQ_API_KEY environment variable required")
	}
	return NewTranscriber(apiKey), nil
}

// SetBaseURL points the transcriber at a fake endpoint for tests.
func (t *Transcriber) SetBaseURL(baseURL string) {
	t.baseURL = baseURL
}

// Transcribe uploads audio and returns the recognized transcript. locale is a
// BCP-47 tag; its language part selects the recognition language. On timeout
// the transcript is empty and the error wraps ErrCaptureTimeout. There is no
// retry and no partial-result handling.
func (t *Transcriber) Transcribe(ctx context.Context, audio io.Reader, filename, locale string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}
	_ = mw.WriteField("model", transcribeModel)
	if locale != "" {
		lang, _, _ := strings.Cut(locale, "-")
		_ = mw.WriteField("language", lang)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}

	url := fmt.Sprintf("%s/audio/transcriptions", t.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", ErrCaptureTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// The deadline can also expire mid-read, after Do succeeded.
		if ctx.Err() == context.DeadlineExceeded {
			return "", ErrCaptureTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrRecognitionFailed, resp.StatusCode, string(body))
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}

	return result.Text, nil
}
