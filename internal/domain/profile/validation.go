package profile

import (
	"fmt"
	"strings"

	apperrors "github.com/yanqian/wellness-tips/pkg/errors"
)

// RequiredFieldsMessage is shown when name, age or primary goal are missing.
const RequiredFieldsMessage = "Please fill in all required fields (Name, Age, Primary Goal)"

const maxAge = 120

// Normalize fills the form defaults for omitted enums, trims free text and derives BMI.
func Normalize(p UserProfile) UserProfile {
	p.ID = SingletonID
	p.Name = strings.TrimSpace(p.Name)
	p.ExtraInformation = strings.TrimSpace(p.ExtraInformation)
	if p.Gender == "" {
		p.Gender = GenderOther
	}
	if p.PrimaryGoal == "" {
		p.PrimaryGoal = GoalGeneralWellness
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = ActivitySedentary
	}
	if p.DailyWellnessTime == "" {
		p.DailyWellnessTime = WellnessTimeFifteenToThirty
	}
	if p.DietaryPreference == "" {
		p.DietaryPreference = DietNonVegetarian
	}
	if p.StressLevel == "" {
		p.StressLevel = StressModerate
	}
	if p.MindfulnessExperience == "" {
		p.MindfulnessExperience = MindfulnessBeginner
	}
	if p.WorkStyle == "" {
		p.WorkStyle = WorkDeskJob
	}
	if p.ScreenTime == "" {
		p.ScreenTime = ScreenMedium
	}
	if p.MotivationStyle == "" {
		p.MotivationStyle = MotivationShortActionable
	}
	p.FoodAllergies = cleanList(p.FoodAllergies)
	p.HealthConditions = cleanList(p.HealthConditions)
	p.PhysicalLimitations = cleanList(p.PhysicalLimitations)
	if p.BMI == nil && p.HasBodyMetrics() {
		if bmi, ok := ComputeBMI(*p.Height, *p.Weight); ok {
			p.BMI = &bmi
		}
	}
	return p
}

// Validate enforces the save-time invariants.
func Validate(p UserProfile) error {
	if strings.TrimSpace(p.Name) == "" || p.Age <= 0 || p.Age > maxAge ||
		p.PrimaryGoal == "" || p.PrimaryGoal == GoalGeneralWellness {
		return apperrors.Wrap("invalid_input", RequiredFieldsMessage, nil)
	}
	checks := []struct {
		field string
		value string
		ok    bool
	}{
		{"gender", string(p.Gender), known(genderNames, p.Gender)},
		{"primaryGoal", string(p.PrimaryGoal), known(healthGoalNames, p.PrimaryGoal)},
		{"activityLevel", string(p.ActivityLevel), known(activityLevelNames, p.ActivityLevel)},
		{"dailyWellnessTime", string(p.DailyWellnessTime), known(wellnessTimeNames, p.DailyWellnessTime)},
		{"dietaryPreference", string(p.DietaryPreference), known(dietaryNames, p.DietaryPreference)},
		{"stressLevel", string(p.StressLevel), known(stressNames, p.StressLevel)},
		{"mindfulnessExperience", string(p.MindfulnessExperience), known(mindfulnessNames, p.MindfulnessExperience)},
		{"workStyle", string(p.WorkStyle), known(workStyleNames, p.WorkStyle)},
		{"screenTime", string(p.ScreenTime), known(screenTimeNames, p.ScreenTime)},
		{"motivationStyle", string(p.MotivationStyle), known(motivationNames, p.MotivationStyle)},
		{"sleepPattern", string(p.SleepPattern), p.SleepPattern == "" || known(sleepPatternNames, p.SleepPattern)},
		{"dietStyle", string(p.DietStyle), p.DietStyle == "" || known(dietStyleNames, p.DietStyle)},
		{"smokingHabit", string(p.SmokingHabit), p.SmokingHabit == "" || known(smokingNames, p.SmokingHabit)},
		{"alcoholHabit", string(p.AlcoholHabit), p.AlcoholHabit == "" || known(alcoholNames, p.AlcoholHabit)},
	}
	for _, c := range checks {
		if !c.ok {
			return invalidEnum(c.field, c.value)
		}
	}
	if v, ok := firstUnknown(healthGoalNames, p.SecondaryGoals); !ok {
		return invalidEnum("secondaryGoals", v)
	}
	if v, ok := firstUnknown(exerciseNames, p.ExercisePreferences); !ok {
		return invalidEnum("exercisePreferences", v)
	}
	if v, ok := firstUnknown(moodNames, p.MoodFocusAreas); !ok {
		return invalidEnum("moodFocusAreas", v)
	}
	if v, ok := firstUnknown(favoriteActivityNames, p.FavoriteActivities); !ok {
		return invalidEnum("favoriteActivities", v)
	}
	if p.SleepHours != nil && (*p.SleepHours < 0 || *p.SleepHours > 24) {
		return apperrors.Wrap("invalid_input", "sleepHours must be between 0 and 24", nil)
	}
	if (p.Height != nil && *p.Height <= 0) || (p.Weight != nil && *p.Weight <= 0) {
		return apperrors.Wrap("invalid_input", "height and weight must be positive", nil)
	}
	return nil
}

func firstUnknown[T ~string](names map[T]string, values []T) (string, bool) {
	for _, v := range values {
		if !known(names, v) {
			return string(v), false
		}
	}
	return "", true
}

func invalidEnum(field, value string) error {
	return apperrors.Wrap("invalid_input", fmt.Sprintf("unsupported %s value %q", field, value), nil)
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if clean := strings.TrimSpace(item); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
