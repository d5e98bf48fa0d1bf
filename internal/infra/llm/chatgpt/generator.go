package chatgpt

import (
	"context"

	"github.com/yanqian/wellness-tips/internal/domain/wellness"
	"github.com/yanqian/wellness-tips/pkg/metrics"
)

// Generator adapts the chat completions API to the tip generator contract.
// The prompt is sent as a single user message; topK has no equivalent and is dropped.
type Generator struct {
	client *Client
	model  string
}

// NewGenerator constructs the adapter.
func NewGenerator(client *Client, model string) *Generator {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Generator{client: client, model: model}
}

// GenerateContent implements wellness.Generator.
func (g *Generator) GenerateContent(ctx context.Context, req wellness.GenerationRequest) (wellness.GenerationResult, error) {
	resp, err := g.client.CreateChatCompletion(ctx, ChatCompletionRequest{
		Model:       g.model,
		Messages:    []Message{{Role: "user", Content: req.Prompt}},
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxOutputTokens,
	})
	if err != nil {
		return wellness.GenerationResult{}, err
	}
	result := wellness.GenerationResult{
		Usage: metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		result.Text = resp.Choices[0].Message.Content
		result.FinishReason = resp.Choices[0].FinishReason
	}
	return result, nil
}

var _ wellness.Generator = (*Generator)(nil)
