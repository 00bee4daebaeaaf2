package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrMissingAPIKey indicates the required API key is absent from the
// environment. The session surfaces this to the user; it is not fatal to the
// process.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY environment variable required")

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama3-70b-8192"

	// Completion parameters fixed by the product: low temperature for
	// deterministic troubleshooting advice, bounded output size.
	temperature = 0.3
	maxTokens   = 1200
)

// GroqClient implements Client against the Groq OpenAI-compatible API.
type GroqClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a GroqClient.
type Option func(*GroqClient)

// WithBaseURL overrides the API base URL (used by tests and self-hosted gateways).
func WithBaseURL(url string) Option {
	return func(c *GroqClient) { c.baseURL = url }
}

// WithModel overrides the model identifier.
func WithModel(model string) Option {
	return func(c *GroqClient) { c.model = model }
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *GroqClient) { c.httpClient.Timeout = d }
}

// NewGroqClient creates a client for the given API key.
func NewGroqClient(apiKey string, opts ...Option) *GroqClient {
	c := &GroqClient{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		// Explicit timeout so a stalled upstream cannot hold a request
		// open indefinitely.
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewGroqClientFromEnv creates a client using GROQ_API_KEY.
func NewGroqClientFromEnv(opts ...Option) (*GroqClient, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewGroqClient(apiKey, opts...), nil
}

// Groq API request/response types (OpenAI chat-completions wire format)
type groqRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type groqResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []groqChoice `json:"choices"`
	Usage   groqUsage    `json:"usage"`
}

type groqChoice struct {
	Message Message `json:"message"`
}

type groqUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Complete sends one chat-completion request and returns the first choice.
func (c *GroqClient) Complete(ctx context.Context, messages []Message) (*Response, error) {
	reqBody := groqRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	var groqResp groqResponse
	if err := json.Unmarshal(body, &groqResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(groqResp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices")
	}

	return &Response{
		Content:      groqResp.Choices[0].Message.Content,
		InputTokens:  groqResp.Usage.PromptTokens,
		OutputTokens: groqResp.Usage.CompletionTokens,
		Model:        groqResp.Model,
	}, nil
}

// Model returns the configured model identifier.
func (c *GroqClient) Model() string {
	return c.model
}
