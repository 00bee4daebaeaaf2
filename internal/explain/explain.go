// Package explain turns raw network-error text into a human explanation by
// issuing a single chat-completion request per analysis.
package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"github.com/Humam-hub/network-log-translator/internal/llm"
)

var (
	// ErrEmptyInput indicates the caller submitted blank error text. No
	// API call is made in this case.
	ErrEmptyInput = errors.New("error details required")

	// ErrRateLimited indicates the per-process request budget is exhausted.
	ErrRateLimited = errors.New("too many analysis requests, slow down")
)

// Requester builds prompts and performs explanation requests. Every request
// re-sends the full prompt; there is no batching, caching, or deduplication.
type Requester struct {
	client  llm.Client
	limiter *rate.Limiter
}

// NewRequester creates a Requester. reqsPerMinute bounds how often the
// upstream API is called; zero disables limiting.
func NewRequester(client llm.Client, reqsPerMinute int) *Requester {
	var limiter *rate.Limiter
	if reqsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(reqsPerMinute)/60.0), reqsPerMinute)
	}
	return &Requester{client: client, limiter: limiter}
}

// Explain requests an explanation of errorText in the language identified by
// the two-letter langCode. The upstream failure is terminal for this request;
// callers must not retry.
func (r *Requester) Explain(ctx context.Context, errorText, langCode string) (string, error) {
	if strings.TrimSpace(errorText) == "" {
		return "", ErrEmptyInput
	}

	if r.limiter != nil && !r.limiter.Allow() {
		return "", ErrRateLimited
	}

	messages := []llm.Message{
		{Role: "system", Content: SystemPrompt(langCode)},
		{Role: "user", Content: UserPrompt(errorText)},
	}

	resp, err := r.client.Complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("explanation request failed: %w", err)
	}

	return resp.Content, nil
}
