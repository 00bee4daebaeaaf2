// Package llm provides chat-completion clients for hosted language models.
package llm

import "context"

// Message is a single chat message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response holds the completion text and token accounting.
type Response struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
}

// Client sends chat-completion requests to a hosted model.
type Client interface {
	Complete(ctx context.Context, messages []Message) (*Response, error)
	Model() string
}
