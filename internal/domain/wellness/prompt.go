package wellness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
	"github.com/yanqian/wellness-tips/internal/domain/settings"
)

const tipsShape = `{
  "tips": [
    {
      "id": "unique_id_1",
      "title": "Tip Title",
      "summary": "One line summary",
      "detailedExplanation": "Brief explanation",
      "stepByStepGuide": ["Step 1", "Step 2", "Step 3"],
      "category": "Category name",
      "icon": "emoji_icon"
    }
  ]
}`

const expansionShape = `{
  "detailedExplanation": "Comprehensive explanation of the tip with scientific backing, tailored to their specific profile",
  "stepByStepGuide": ["Detailed step 1", "Detailed step 2", "Detailed step 3"]
}`

func languageInstruction(lang settings.Language) string {
	return fmt.Sprintf("IMPORTANT: Write all textual content in %s. Do not include any other language. Keep the JSON keys in English, but localize all values.", lang.DisplayName())
}

// BuildTipsPrompt renders the batch generation prompt. Empty optional fields are left out.
func BuildTipsPrompt(p profile.UserProfile, lang settings.Language) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate 5 highly personalized wellness tips for a %d-year-old %s%s%s\n",
		p.Age, strings.ToLower(string(p.Gender)), bodyMetrics(p), bmiInfo(p))
	fmt.Fprintf(&b, "whose primary health goal is %s.\n\n", p.PrimaryGoal.DisplayName())
	b.WriteString(languageInstruction(lang))
	b.WriteString("\n\nUser Profile Details:\n")

	lines := []string{
		"Primary Goal: " + p.PrimaryGoal.DisplayName(),
		optional("Secondary Goals", joinNames(p.SecondaryGoals)),
		"Activity Level: " + p.ActivityLevel.DisplayName(),
		"Exercise Preferences: " + orNone(joinNames(p.ExercisePreferences)),
		"Daily Wellness Time: " + p.DailyWellnessTime.DisplayName(),
		optional("Sleep", sleepInfo(p)),
		"Dietary Preference: " + p.DietaryPreference.DisplayName(),
		optional("Diet Style", enumName(p.DietStyle)),
		optional("Food Allergies", strings.Join(p.FoodAllergies, ", ")),
		"Stress Level: " + p.StressLevel.DisplayName(),
		optional("Mood Focus Areas", joinNames(p.MoodFocusAreas)),
		"Mindfulness Experience: " + p.MindfulnessExperience.DisplayName(),
		"Work Style: " + p.WorkStyle.DisplayName(),
		"Screen Time: " + p.ScreenTime.DisplayName(),
		optional("Smoking", enumName(p.SmokingHabit)),
		optional("Alcohol", enumName(p.AlcoholHabit)),
		optional("Health Conditions", strings.Join(p.HealthConditions, ", ")),
		optional("Physical Limitations", strings.Join(p.PhysicalLimitations, ", ")),
		"Motivation Style: " + p.MotivationStyle.DisplayName(),
		optional("Favorite Activities", joinNames(p.FavoriteActivities)),
		optional("Additional Info", strings.TrimSpace(p.ExtraInformation)),
	}
	writeBullets(&b, lines)

	b.WriteString("\nPlease return the response in the following JSON format:\n")
	b.WriteString(tipsShape)
	b.WriteString("\n\nMake the tips:\n")
	writeBullets(&b, []string{
		"Highly personalized based on their specific profile",
		"Practical and actionable for their lifestyle and time constraints",
		"Tailored to their activity level, dietary preferences, and work style",
		"Appropriate for their stress level and mindfulness experience",
		fmt.Sprintf("Aligned with their motivation style (%s)", p.MotivationStyle.DisplayName()),
		"Evidence-based wellness practices that are safe and effective",
		"Consider their exercise preferences and favorite activities",
		"Address their specific health goals and any secondary goals",
	})
	return strings.TrimRight(b.String(), "\n")
}

// BuildExpansionPrompt renders the detail prompt for one tip.
func BuildExpansionPrompt(tip Tip, p profile.UserProfile, lang settings.Language) string {
	var b strings.Builder

	b.WriteString("Expand this wellness tip with detailed information:\n\n")
	fmt.Fprintf(&b, "Original tip: %s\n", tip.Title)
	fmt.Fprintf(&b, "Summary: %s\n\n", tip.Summary)
	fmt.Fprintf(&b, "User profile: %d-year-old %s\n", p.Age, strings.ToLower(string(p.Gender)))
	writeBullets(&b, []string{
		"Primary Goal: " + p.PrimaryGoal.DisplayName(),
		"Activity Level: " + p.ActivityLevel.DisplayName(),
		"Exercise Preferences: " + orNone(joinNames(p.ExercisePreferences)),
		"Daily Wellness Time: " + p.DailyWellnessTime.DisplayName(),
		"Dietary Preference: " + p.DietaryPreference.DisplayName(),
		"Stress Level: " + p.StressLevel.DisplayName(),
		"Work Style: " + p.WorkStyle.DisplayName(),
		"Motivation Style: " + p.MotivationStyle.DisplayName(),
		optional("Additional Info", strings.TrimSpace(p.ExtraInformation)),
	})
	b.WriteString("\n")
	b.WriteString(languageInstruction(lang))
	b.WriteString("\n\nPlease provide a detailed explanation and step-by-step guide. Return in JSON format:\n")
	b.WriteString(expansionShape)
	b.WriteString("\n\nMake the explanation:\n")
	writeBullets(&b, []string{
		"Comprehensive and evidence-based",
		"Highly personalized for their specific profile",
		fmt.Sprintf("Actionable within their time constraints (%s)", p.DailyWellnessTime.DisplayName()),
		"Appropriate for their activity level and exercise preferences",
		"Aligned with their motivation style and work environment",
		"Consider their dietary preferences and stress level",
	})
	return strings.TrimRight(b.String(), "\n")
}

func writeBullets(b *strings.Builder, lines []string) {
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// optional drops the whole line when value is empty.
func optional(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

func orNone(value string) string {
	if value == "" {
		return "None specified"
	}
	return value
}

func bodyMetrics(p profile.UserProfile) string {
	if !p.HasBodyMetrics() {
		return ""
	}
	return fmt.Sprintf(" (%scm, %skg)", formatNumber(*p.Height), formatNumber(*p.Weight))
}

func bmiInfo(p profile.UserProfile) string {
	if p.BMI == nil {
		return ""
	}
	return fmt.Sprintf(" (BMI: %.1f)", *p.BMI)
}

func sleepInfo(p profile.UserProfile) string {
	parts := make([]string, 0, 2)
	if p.SleepHours != nil {
		parts = append(parts, fmt.Sprintf("%d hours", *p.SleepHours))
	}
	if p.SleepPattern != "" {
		parts = append(parts, p.SleepPattern.DisplayName())
	}
	return strings.Join(parts, ", ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type displayNamer interface {
	~string
	DisplayName() string
}

func enumName[T displayNamer](v T) string {
	if v == "" {
		return ""
	}
	return v.DisplayName()
}

func joinNames[T displayNamer](values []T) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, v.DisplayName())
	}
	return strings.Join(names, ", ")
}
