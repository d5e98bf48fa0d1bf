package chatgpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/wellness-tips/internal/domain/wellness"
)

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(" ", "", time.Second)
	require.Error(t, err)
}

func TestGeneratorMapsPromptAndChoice(t *testing.T) {
	var got ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"tips\":[]}"},"finish_reason":"stop"}],"usage":{"prompt_tokens":3,"completion_tokens":4,"total_tokens":7}}`))
	}))
	defer server.Close()

	client, err := NewClient("key", server.URL, time.Second)
	require.NoError(t, err)
	gen := NewGenerator(client, "gpt-test")

	res, err := gen.GenerateContent(context.Background(), wellness.GenerationRequest{
		Prompt:          "make tips",
		Temperature:     0.7,
		MaxOutputTokens: 5000,
	})
	require.NoError(t, err)
	require.Equal(t, "gpt-test", got.Model)
	require.Equal(t, []Message{{Role: "user", Content: "make tips"}}, got.Messages)
	require.Equal(t, 5000, got.MaxTokens)
	require.Equal(t, `{"tips":[]}`, res.Text)
	require.Equal(t, "stop", res.FinishReason)
	require.Equal(t, 7, res.Usage.TotalTokens)
}

func TestGeneratorSurfacesUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewClient("key", server.URL, time.Second)
	require.NoError(t, err)
	_, err = NewGenerator(client, "").GenerateContent(context.Background(), wellness.GenerationRequest{Prompt: "x"})
	require.True(t, wellness.IsUpstreamError(err))
}
