package metrics

// TokenUsage is the token accounting reported by a generation provider.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens,omitempty"`
	TotalTokens      int `json:"totalTokens"`
}

// IsZero reports whether the provider sent no usage block.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}

// Completion returns the output tokens, derived from the total when the provider omits them.
// Gemini drops candidatesTokenCount on truncated or thinking-only responses.
func (u TokenUsage) Completion() int {
	if u.CompletionTokens > 0 {
		return u.CompletionTokens
	}
	if rest := u.TotalTokens - u.PromptTokens; rest > 0 {
		return rest
	}
	return 0
}

// ObserveUsage adds one response's token counts to the token counter.
func (r *Recorder) ObserveUsage(usage TokenUsage) {
	if r == nil || usage.IsZero() {
		return
	}
	if usage.PromptTokens > 0 {
		r.tokens.WithLabelValues("prompt").Add(float64(usage.PromptTokens))
	}
	if completion := usage.Completion(); completion > 0 {
		r.tokens.WithLabelValues("completion").Add(float64(completion))
	}
}
