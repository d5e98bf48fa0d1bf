package tiprepo

import (
	"encoding/json"
	"fmt"

	"github.com/yanqian/wellness-tips/internal/domain/wellness"
)

// Columns shared by the SQL repositories, in scan order.
const tipColumns = `id, title, summary, detailed_explanation, step_by_step_guide, category, icon, is_favorite, is_current_generation, created_at`

// encodeSteps stores the guide as JSON text.
func encodeSteps(steps []string) (string, error) {
	if steps == nil {
		steps = []string{}
	}
	data, err := json.Marshal(steps)
	if err != nil {
		return "", fmt.Errorf("encode steps: %w", err)
	}
	return string(data), nil
}

func decodeSteps(raw string) ([]string, error) {
	steps := []string{}
	if raw == "" {
		return steps, nil
	}
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return nil, fmt.Errorf("decode steps: %w", err)
	}
	return steps, nil
}

func viewFilter(view wellness.View) string {
	switch view {
	case wellness.ViewCurrent:
		return " WHERE is_current_generation"
	case wellness.ViewFavorites:
		return " WHERE is_favorite"
	default:
		return ""
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}
