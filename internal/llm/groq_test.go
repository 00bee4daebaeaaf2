package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSendsFixedParameters(t *testing.T) {
	var captured groqRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		resp := groqResponse{
			Model: "llama3-70b-8192",
			Choices: []groqChoice{
				{Message: Message{Role: "assistant", Content: "Here is the analysis."}},
			},
			Usage: groqUsage{PromptTokens: 42, CompletionTokens: 100},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewGroqClient("test-key", WithBaseURL(srv.URL))

	messages := []Message{
		{Role: "system", Content: "You are a network troubleshooting assistant."},
		{Role: "user", Content: "Analyze this network error: Connection Refused"},
	}
	resp, err := client.Complete(context.Background(), messages)
	require.NoError(t, err)

	assert.Equal(t, "Here is the analysis.", resp.Content)
	assert.Equal(t, 42, resp.InputTokens)
	assert.Equal(t, 100, resp.OutputTokens)

	assert.Equal(t, "llama3-70b-8192", captured.Model)
	assert.Equal(t, messages, captured.Messages)
	assert.Equal(t, 0.3, captured.Temperature)
	assert.Equal(t, 1200, captured.MaxTokens)
}

func TestCompleteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limit exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGroqClient("test-key", WithBaseURL(srv.URL))

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (429)")
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(groqResponse{})
	}))
	defer srv.Close()

	client := NewGroqClient("test-key", WithBaseURL(srv.URL))

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response choices")
}

func TestNewGroqClientFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	_, err := NewGroqClientFromEnv()
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	t.Setenv("GROQ_API_KEY", "gsk_test")
	client, err := NewGroqClientFromEnv(WithModel("llama3-8b-8192"))
	require.NoError(t, err)
	assert.Equal(t, "llama3-8b-8192", client.Model())
}
