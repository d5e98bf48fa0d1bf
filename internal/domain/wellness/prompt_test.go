package wellness

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
	"github.com/yanqian/wellness-tips/internal/domain/settings"
)

func TestBuildTipsPromptMinimalProfile(t *testing.T) {
	p := sampleProfile()
	prompt := BuildTipsPrompt(p, settings.English)

	require.Contains(t, prompt, "Generate 5 highly personalized wellness tips for a 30-year-old female\n")
	require.Contains(t, prompt, "whose primary health goal is Weight Loss.")
	require.Contains(t, prompt, "IMPORTANT: Write all textual content in English.")
	require.Contains(t, prompt, "- Exercise Preferences: None specified")
	require.Contains(t, prompt, "- Daily Wellness Time: 15-30 minutes")
	require.Contains(t, prompt, "- Motivation Style: Short Actionable Tips")
	require.Contains(t, prompt, `"stepByStepGuide": ["Step 1", "Step 2", "Step 3"]`)
	require.Contains(t, prompt, "- Aligned with their motivation style (Short Actionable Tips)")

	for _, absent := range []string{"Secondary Goals", "Diet Style", "Favorite Activities", "Additional Info", "BMI", "cm,", "Sleep:", "Smoking", "Food Allergies", "null", "- \n"} {
		require.NotContains(t, prompt, absent)
	}
}

func TestBuildTipsPromptFullProfile(t *testing.T) {
	height, weight, hours := 170.5, 65.0, 7
	p := sampleProfile()
	p.Height = &height
	p.Weight = &weight
	p = profile.Normalize(p)
	p.SecondaryGoals = []profile.HealthGoal{profile.GoalBetterSleep, profile.GoalStressRelief}
	p.ExercisePreferences = []profile.ExercisePreference{profile.ExerciseYoga, profile.ExerciseStrengthTraining}
	p.DietStyle = profile.DietStyleLowCarb
	p.FavoriteActivities = []profile.FavoriteActivity{profile.ActivityHiking}
	p.ExtraInformation = "Night shifts twice a week"
	p.SleepHours = &hours
	p.SleepPattern = profile.SleepNightOwl
	p.SmokingHabit = profile.SmokingQuitting

	prompt := BuildTipsPrompt(p, settings.Tamil)

	require.Contains(t, prompt, "30-year-old female (170.5cm, 65kg) (BMI: 22.4)\n")
	require.Contains(t, prompt, "Write all textual content in Tamil.")
	require.Contains(t, prompt, "- Secondary Goals: Better Sleep, Stress Relief")
	require.Contains(t, prompt, "- Exercise Preferences: Yoga, Strength Training")
	require.Contains(t, prompt, "- Diet Style: Low-Carb")
	require.Contains(t, prompt, "- Favorite Activities: Hiking")
	require.Contains(t, prompt, "- Additional Info: Night shifts twice a week")
	require.Contains(t, prompt, "- Sleep: 7 hours, Night Owl (sleep late, wake late)")
	require.Contains(t, prompt, "- Smoking: Quitting")
}

func TestBuildExpansionPrompt(t *testing.T) {
	tip := storedTip("t1", true, false, fixedNow())
	prompt := BuildExpansionPrompt(tip, sampleProfile(), settings.Hindi)

	require.Contains(t, prompt, "Original tip: Title t1\nSummary: Summary t1")
	require.Contains(t, prompt, "User profile: 30-year-old female")
	require.Contains(t, prompt, "Write all textual content in Hindi.")
	require.Contains(t, prompt, `"detailedExplanation": "Comprehensive explanation`)
	require.Contains(t, prompt, "- Actionable within their time constraints (15-30 minutes)")
	require.NotContains(t, prompt, "Additional Info")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	p := sampleProfile()
	require.Equal(t, BuildTipsPrompt(p, settings.Bengali), BuildTipsPrompt(p, settings.Bengali))
	require.NotEqual(t, BuildTipsPrompt(p, settings.Bengali), BuildTipsPrompt(p, settings.Marathi))
}
