package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/yanqian/wellness-tips/internal/domain/wellness"
	"github.com/yanqian/wellness-tips/pkg/metrics"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 60 * time.Second
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float32 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateRequest is the generateContent payload.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient builds a Gemini client. Empty values fall back to the public endpoint and default model.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(base, "/"),
		model:   strings.TrimSpace(model),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GenerateContent sends one prompt and returns the first text part of the first candidate.
func (c *Client) GenerateContent(ctx context.Context, req wellness.GenerationRequest) (wellness.GenerationResult, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: req.Prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     req.Temperature,
			TopK:            req.TopK,
			TopP:            req.TopP,
			MaxOutputTokens: req.MaxOutputTokens,
		},
	})
	if err != nil {
		return wellness.GenerationResult{}, fmt.Errorf("encode gemini request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return wellness.GenerationResult{}, fmt.Errorf("build gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return wellness.GenerationResult{}, fmt.Errorf("request gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return wellness.GenerationResult{}, &wellness.UpstreamError{
			Service:    "gemini",
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return wellness.GenerationResult{}, fmt.Errorf("read gemini response: %w", err)
	}
	return decodeResult(body), nil
}

// decodeResult tolerates missing fields; absent text decodes as "".
func decodeResult(body []byte) wellness.GenerationResult {
	parsed := gjson.ParseBytes(body)
	return wellness.GenerationResult{
		Text:         parsed.Get("candidates.0.content.parts.0.text").String(),
		FinishReason: parsed.Get("candidates.0.finishReason").String(),
		Usage: metrics.TokenUsage{
			PromptTokens:     int(parsed.Get("usageMetadata.promptTokenCount").Int()),
			CompletionTokens: int(parsed.Get("usageMetadata.candidatesTokenCount").Int()),
			TotalTokens:      int(parsed.Get("usageMetadata.totalTokenCount").Int()),
		},
	}
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
}

var _ wellness.Generator = (*Client)(nil)
