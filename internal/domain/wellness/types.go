package wellness

import (
	"time"

	"github.com/yanqian/wellness-tips/internal/domain/settings"
	"github.com/yanqian/wellness-tips/pkg/metrics"
)

// Tip is a single personalized recommendation.
type Tip struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Summary             string    `json:"summary"`
	DetailedExplanation string    `json:"detailedExplanation"`
	StepByStepGuide     []string  `json:"stepByStepGuide"`
	Category            string    `json:"category"`
	Icon                string    `json:"icon"`
	IsFavorite          bool      `json:"isFavorite"`
	IsCurrentGeneration bool      `json:"isCurrentGeneration"`
	CreatedAt           time.Time `json:"createdAt"`
}

// View selects a filtered listing of stored tips.
type View string

const (
	ViewCurrent   View = "current"
	ViewFavorites View = "favorites"
	ViewAll       View = "all"
)

// ParseView defaults to the current view.
func ParseView(raw string) (View, bool) {
	switch View(raw) {
	case "", ViewCurrent:
		return ViewCurrent, true
	case ViewFavorites:
		return ViewFavorites, true
	case ViewAll:
		return ViewAll, true
	default:
		return "", false
	}
}

// GenerationRequest is a single prompt plus sampling configuration.
type GenerationRequest struct {
	Prompt          string
	Temperature     float32
	TopK            int
	TopP            float32
	MaxOutputTokens int
}

// GenerationResult carries the first text part of the first candidate.
type GenerationResult struct {
	Text         string
	FinishReason string
	Usage        metrics.TokenUsage
}

// ToggleResult reports the effect of a favorite toggle.
type ToggleResult struct {
	TipID   string `json:"tipId"`
	Found   bool   `json:"found"`
	Deleted bool   `json:"deleted"`
	Tip     *Tip   `json:"tip,omitempty"`
}

// TranslationReport summarizes a translation pass.
type TranslationReport struct {
	Target     settings.Language `json:"target"`
	Translated []string          `json:"translated"`
	Skipped    []string          `json:"skipped"`
}

// Config holds the sampling constants sent with every generation call.
type Config struct {
	Temperature     float32
	TopK            int
	TopP            float32
	MaxOutputTokens int
}

// DefaultConfig mirrors the production sampling settings.
func DefaultConfig() Config {
	return Config{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 5000,
	}
}
