// Package speech provides text-to-speech synthesis and audio transcription
// as thin pass-throughs to external services.
package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
	"unicode"
)

// ErrSynthesisFailed indicates the synthesis call could not produce audio.
var ErrSynthesisFailed = errors.New("failed to generate speech")

const ttsBaseURL = "https://translate.google.com/translate_tts"

// The TTS endpoint rejects oversized queries, so longer text is split into
// chunks and the resulting MP3 segments concatenated into one artifact.
const maxTTSChars = 200

// Audio is a synthesized speech artifact backed by a temporary file. Callers
// must Close it after playback; Close removes the file.
type Audio struct {
	path string
}

// Path returns the location of the MP3 file.
func (a *Audio) Path() string {
	return a.path
}

// Open returns a reader over the audio bytes.
func (a *Audio) Open() (io.ReadCloser, error) {
	return os.Open(a.path)
}

// Close removes the backing file. Safe to call more than once.
func (a *Audio) Close() error {
	if a.path == "" {
		return nil
	}
	path := a.path
	a.path = ""
	return os.Remove(path)
}

// Synthesizer converts text to spoken audio.
type Synthesizer struct {
	baseURL    string
	httpClient *http.Client
}

// NewSynthesizer creates a Synthesizer with an explicit request timeout.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		baseURL:    ttsBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewSynthesizerWithBaseURL is used by tests to point at a fake endpoint.
func NewSynthesizerWithBaseURL(baseURL string) *Synthesizer {
	s := NewSynthesizer()
	s.baseURL = baseURL
	return s
}

// Synthesize converts the full text to an MP3 in the given two-letter
// language and writes it to a temporary file. Text beyond the per-request
// limit is synthesized in chunks split on whitespace, never mid-rune. The
// returned Audio owns the file; the caller must Close it once playback
// completes or fails.
func (s *Synthesizer) Synthesize(ctx context.Context, text, langCode string) (*Audio, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrSynthesisFailed)
	}

	tmp, err := os.CreateTemp("", "netlog-tts-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	for _, chunk := range splitChunks(text, maxTTSChars) {
		if err := s.fetchChunk(ctx, chunk, langCode, tmp); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return nil, err
		}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	return &Audio{path: tmp.Name()}, nil
}

// fetchChunk synthesizes one chunk and appends the MP3 bytes to w.
func (s *Synthesizer) fetchChunk(ctx context.Context, chunk, langCode string, w io.Writer) error {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", langCode)
	q.Set("q", chunk)

	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %s", ErrSynthesisFailed, resp.Status)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	return nil
}

// splitChunks breaks text into pieces of at most max runes, preferring to
// break at whitespace so words are not cut in half. Operating on runes keeps
// multibyte scripts intact regardless of byte length.
func splitChunks(text string, max int) []string {
	var chunks []string
	runes := []rune(text)
	for len(runes) > 0 {
		if len(runes) <= max {
			if chunk := strings.TrimSpace(string(runes)); chunk != "" {
				chunks = append(chunks, chunk)
			}
			break
		}

		cut := max
		for i := max; i > max/2; i-- {
			if unicode.IsSpace(runes[i-1]) {
				cut = i
				break
			}
		}

		if chunk := strings.TrimSpace(string(runes[:cut])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		runes = runes[cut:]
	}
	return chunks
}
