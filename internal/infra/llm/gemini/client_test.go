package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/wellness-tips/internal/domain/wellness"
)

func TestGenerateContentSendsPromptAndConfig(t *testing.T) {
	var (
		gotPath string
		gotKey  string
		gotBody generateRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"parts": [{"text": "{\"tips\": []}"}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 120, "candidatesTokenCount": 80, "totalTokenCount": 200}
		}`))
	}))
	defer server.Close()

	client := NewClient("secret", server.URL+"/", "", time.Second)
	res, err := client.GenerateContent(context.Background(), wellness.GenerationRequest{
		Prompt:          "hello",
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 5000,
	})
	require.NoError(t, err)

	require.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	require.Equal(t, "secret", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Equal(t, "hello", gotBody.Contents[0].Parts[0].Text)
	require.Equal(t, 40, gotBody.GenerationConfig.TopK)
	require.Equal(t, 5000, gotBody.GenerationConfig.MaxOutputTokens)
	require.InDelta(t, 0.95, gotBody.GenerationConfig.TopP, 0.0001)

	require.Equal(t, `{"tips": []}`, res.Text)
	require.Equal(t, "STOP", res.FinishReason)
	require.Equal(t, 120, res.Usage.PromptTokens)
	require.Equal(t, 80, res.Usage.CompletionTokens)
	require.Equal(t, 200, res.Usage.TotalTokens)
}

func TestGenerateContentNon2xxReturnsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"quota"}`))
	}))
	defer server.Close()

	client := NewClient("k", server.URL, "gemini-test", time.Second)
	_, err := client.GenerateContent(context.Background(), wellness.GenerationRequest{Prompt: "x"})
	require.Error(t, err)

	var upstream *wellness.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	require.Equal(t, "gemini", upstream.Service)
	require.Contains(t, upstream.Message, "quota")
}

func TestDecodeResultToleratesMissingFields(t *testing.T) {
	res := decodeResult([]byte(`{"candidates": []}`))
	require.Empty(t, res.Text)
	require.True(t, res.Usage.IsZero())

	res = decodeResult([]byte(`{"candidates": [{"content": {"parts": []}}]}`))
	require.Empty(t, res.Text)
}
