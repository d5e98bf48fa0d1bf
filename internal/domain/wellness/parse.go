package wellness

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var errNoPayload = errors.New("response does not contain a json payload")

type tipsWire struct {
	Tips []tipWire `json:"tips"`
}

type tipWire struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Summary             string          `json:"summary"`
	DetailedExplanation string          `json:"detailedExplanation"`
	StepByStepGuide     json.RawMessage `json:"stepByStepGuide"`
	Category            string          `json:"category"`
	Icon                string          `json:"icon"`
}

type expansionWire struct {
	DetailedExplanation string          `json:"detailedExplanation"`
	StepByStepGuide     json.RawMessage `json:"stepByStepGuide"`
}

// ParseTips maps a model response onto tips, or returns the fallback batch.
// The bool reports whether the fallback was used.
func ParseTips(raw string, now time.Time) ([]Tip, bool) {
	tips, err := decodeTips(raw, now)
	if err != nil || len(tips) == 0 {
		return FallbackTips(now), true
	}
	return tips, false
}

func decodeTips(raw string, now time.Time) ([]Tip, error) {
	payload, err := extractObject(raw, "tips")
	if err != nil {
		return nil, err
	}
	var wire tipsWire
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, err
	}
	tips := make([]Tip, 0, len(wire.Tips))
	for _, w := range wire.Tips {
		steps, err := coerceStringArray(w.StepByStepGuide)
		if err != nil {
			return nil, err
		}
		id := strings.TrimSpace(w.ID)
		if id == "" {
			id = "tip_" + uuid.NewString()
		}
		tips = append(tips, Tip{
			ID:                  id,
			Title:               w.Title,
			Summary:             w.Summary,
			DetailedExplanation: w.DetailedExplanation,
			StepByStepGuide:     steps,
			Category:            w.Category,
			Icon:                w.Icon,
			IsFavorite:          false,
			IsCurrentGeneration: true,
			CreatedAt:           now,
		})
	}
	return tips, nil
}

// ParseExpansion replaces the tip's explanation and steps, or applies the fallback text.
func ParseExpansion(tip Tip, raw string) (Tip, bool) {
	payload, err := extractObject(raw, "detailedExplanation")
	if err != nil {
		return fallbackExpansion(tip), true
	}
	var wire expansionWire
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return fallbackExpansion(tip), true
	}
	steps, err := coerceStringArray(wire.StepByStepGuide)
	if err != nil {
		return fallbackExpansion(tip), true
	}
	tip.DetailedExplanation = wire.DetailedExplanation
	tip.StepByStepGuide = steps
	return tip, false
}

// extractObject returns the text between the first '{' and the last '}' when both
// a brace and the marker token are present.
func extractObject(raw, marker string) (string, error) {
	if !strings.Contains(raw, "{") || !strings.Contains(raw, marker) {
		return "", errNoPayload
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if end < start {
		return "", errNoPayload
	}
	return raw[start : end+1], nil
}

func coerceStringArray(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}, nil
	}

	switch raw[0] {
	case '"':
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, err
		}
		if strings.TrimSpace(single) == "" {
			return []string{}, nil
		}
		return []string{single}, nil
	case '[':
		var many []string
		if err := json.Unmarshal(raw, &many); err != nil {
			return nil, err
		}
		return many, nil
	default:
		return nil, errors.New("unsupported step list format")
	}
}
