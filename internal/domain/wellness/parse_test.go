package wellness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTipsWellFormed(t *testing.T) {
	raw := "Here you go:\n```json\n" + `{"tips":[
		{"id":"a","title":"Walk","summary":"Walk daily","detailedExplanation":"Why walking","stepByStepGuide":["Shoes","Go"],"category":"Fitness","icon":"🚶"},
		{"id":"b","title":"Sleep","summary":"Sleep more","detailedExplanation":"Why sleep","stepByStepGuide":"Go to bed","category":"Sleep","icon":"🌙"},
		{"id":"c","title":"Water","summary":"Drink","detailedExplanation":"Why water","stepByStepGuide":[],"category":"Hydration","icon":"💧"}
	]}` + "\n```"

	tips, fallback := ParseTips(raw, fixedNow())
	require.False(t, fallback)
	require.Len(t, tips, 3)

	require.Equal(t, Tip{
		ID:                  "a",
		Title:               "Walk",
		Summary:             "Walk daily",
		DetailedExplanation: "Why walking",
		StepByStepGuide:     []string{"Shoes", "Go"},
		Category:            "Fitness",
		Icon:                "🚶",
		IsFavorite:          false,
		IsCurrentGeneration: true,
		CreatedAt:           fixedNow(),
	}, tips[0])
	require.Equal(t, []string{"Go to bed"}, tips[1].StepByStepGuide)
	require.Empty(t, tips[2].StepByStepGuide)
	for _, tip := range tips {
		require.True(t, tip.IsCurrentGeneration)
		require.False(t, tip.IsFavorite)
	}
}

func TestParseTipsFallbackCases(t *testing.T) {
	cases := map[string]string{
		"no brace":      "Sorry, I cannot help with that tips request.",
		"no marker":     `{"advice":[]}`,
		"malformed":     `{"tips":[{"id":"a","title":}]}`,
		"wrong type":    `{"tips":"nope"}`,
		"empty batch":   `{"tips":[]}`,
		"bad steps":     `{"tips":[{"id":"a","stepByStepGuide":{"x":1}}]}`,
		"reversed":      `} tips {`,
		"empty content": "",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			tips, fallback := ParseTips(raw, fixedNow())
			require.True(t, fallback)
			assertFallbackBatch(t, tips)
		})
	}
}

func TestParseTipsBlankIDGetsGenerated(t *testing.T) {
	tips, fallback := ParseTips(`{"tips":[{"id":" ","title":"A"},{"title":"B"}]}`, fixedNow())
	require.False(t, fallback)
	require.Len(t, tips, 2)
	require.True(t, strings.HasPrefix(tips[0].ID, "tip_"))
	require.True(t, strings.HasPrefix(tips[1].ID, "tip_"))
	require.NotEqual(t, tips[0].ID, tips[1].ID)
}

func TestFallbackTips(t *testing.T) {
	tips := FallbackTips(fixedNow())
	assertFallbackBatch(t, tips)
	stamp := fixedNow().UnixMilli()
	for i, tip := range tips {
		require.Equal(t, fmt.Sprintf("tip_%d_%d", stamp, i+1), tip.ID)
		require.Len(t, tip.StepByStepGuide, 3)
	}
	require.Equal(t, []string{"Hydration", "Fitness", "Nutrition", "Sleep", "Mental Health"}, categories(tips))
}

func TestParseExpansion(t *testing.T) {
	tip := storedTip("x", true, true, fixedNow())

	expanded, fallback := ParseExpansion(tip, "Sure! "+`{"detailedExplanation":"Deep dive","stepByStepGuide":["a","b","c","d"]}`)
	require.False(t, fallback)
	require.Equal(t, "Deep dive", expanded.DetailedExplanation)
	require.Equal(t, []string{"a", "b", "c", "d"}, expanded.StepByStepGuide)
	require.Equal(t, tip.ID, expanded.ID)
	require.Equal(t, tip.Title, expanded.Title)
	require.True(t, expanded.IsFavorite)

	for _, raw := range []string{"no json here", `{"steps":[]}`, `{"detailedExplanation": 12}`} {
		got, fallback := ParseExpansion(tip, raw)
		require.True(t, fallback, raw)
		require.Equal(t, "This is a detailed explanation of Title x. It provides comprehensive guidance on how to implement this wellness practice in your daily routine.", got.DetailedExplanation)
		require.Equal(t, []string{
			"Step 1: Prepare yourself mentally and physically",
			"Step 2: Follow the specific techniques outlined",
			"Step 3: Monitor your progress and adjust as needed",
		}, got.StepByStepGuide)
		require.Equal(t, tip.Summary, got.Summary)
	}
}

func assertFallbackBatch(t *testing.T, tips []Tip) {
	t.Helper()
	require.Len(t, tips, 5)
	seen := make(map[string]struct{})
	for _, tip := range tips {
		require.NotEmpty(t, tip.ID)
		_, dup := seen[tip.ID]
		require.False(t, dup)
		seen[tip.ID] = struct{}{}
		require.True(t, tip.IsCurrentGeneration)
		require.False(t, tip.IsFavorite)
	}
	require.Equal(t, "Morning Hydration Boost", tips[0].Title)
	require.Equal(t, "Daily Gratitude Practice", tips[4].Title)
}

func categories(tips []Tip) []string {
	out := make([]string, 0, len(tips))
	for _, tip := range tips {
		out = append(out, tip.Category)
	}
	return out
}
