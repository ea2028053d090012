package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/itamar11/portfolio-chat/internal/config"
)

// fakeProvider serves /chat/completions and records the last request body.
func fakeProvider(t *testing.T, status int, body string, got *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer gsk_test", r.Header.Get("Authorization"))
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string) *OpenAIClient {
	return NewOpenAIClient(config.LLM{
		APIKey:  "gsk_test",
		BaseURL: baseURL,
		Model:   "llama-3.3-70b-versatile",
	})
}

func TestOpenAIClient_Complete(t *testing.T) {
	req := require.New(t)
	var got openai.ChatCompletionRequest
	srv := fakeProvider(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "llama-3.3-70b-versatile",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "I build backends."}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
	}`, &got)

	reply, err := newTestClient(srv.URL).Complete(context.Background(), []Message{
		{Role: RoleSystem, Text: "persona"},
		{Role: RoleUser, Text: "What do you do?"},
	})

	req.NoError(err)
	req.Equal("I build backends.", reply)
	req.Equal("llama-3.3-70b-versatile", got.Model)
	req.False(got.Stream)
	req.Len(got.Messages, 2)
	req.Equal(RoleSystem, got.Messages[0].Role)
	req.Equal("persona", got.Messages[0].Content)
	req.Equal(RoleUser, got.Messages[1].Role)
	req.Equal("What do you do?", got.Messages[1].Content)
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	req := require.New(t)
	srv := fakeProvider(t, http.StatusOK, `{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`, nil)

	reply, err := newTestClient(srv.URL).Complete(context.Background(), []Message{{Role: RoleUser, Text: "hi"}})

	req.NoError(err)
	req.Equal(EmptyReply, reply)
}

func TestOpenAIClient_UpstreamError(t *testing.T) {
	req := require.New(t)
	srv := fakeProvider(t, http.StatusInternalServerError,
		`{"error": {"message": "model overloaded", "type": "server_error"}}`, nil)

	reply, err := newTestClient(srv.URL).Complete(context.Background(), []Message{{Role: RoleUser, Text: "hi"}})

	req.Error(err)
	req.Empty(reply)

	var apiErr *openai.APIError
	req.ErrorAs(err, &apiErr)
	req.Equal(http.StatusInternalServerError, apiErr.HTTPStatusCode)
}

func TestNewOpenAIClient_DefaultModel(t *testing.T) {
	c := NewOpenAIClient(config.LLM{APIKey: "gsk_test"})
	require.Equal(t, "llama-3.3-70b-versatile", c.Model())
}
