package profilerepo

import (
	"encoding/json"
	"fmt"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
	"github.com/yanqian/wellness-tips/pkg/util"
)

const profileColumns = `id, name, age, gender, height, weight, bmi, primary_goal, secondary_goals,
	activity_level, exercise_preferences, daily_wellness_time, sleep_hours, sleep_pattern,
	dietary_preference, food_allergies, diet_style, stress_level, mood_focus_areas,
	mindfulness_experience, work_style, screen_time, smoking_habit, alcohol_habit,
	health_conditions, physical_limitations, favorite_activities, motivation_style,
	extra_information, updated_at`

// Every column except id, which the upsert statements use as the conflict target.
var updatableColumns = []string{
	"name", "age", "gender", "height", "weight", "bmi", "primary_goal", "secondary_goals",
	"activity_level", "exercise_preferences", "daily_wellness_time", "sleep_hours", "sleep_pattern",
	"dietary_preference", "food_allergies", "diet_style", "stress_level", "mood_focus_areas",
	"mindfulness_experience", "work_style", "screen_time", "smoking_habit", "alcohol_habit",
	"health_conditions", "physical_limitations", "favorite_activities", "motivation_style",
	"extra_information", "updated_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

// profileArgs returns the values for profileColumns in order.
func profileArgs(p profile.UserProfile) ([]any, error) {
	lists := make([]string, 0, 8)
	for _, v := range []any{
		p.SecondaryGoals, p.ExercisePreferences, p.FoodAllergies, p.MoodFocusAreas,
		p.HealthConditions, p.PhysicalLimitations, p.FavoriteActivities,
	} {
		encoded, err := encodeList(v)
		if err != nil {
			return nil, err
		}
		lists = append(lists, encoded)
	}
	return []any{
		profile.SingletonID, p.Name, p.Age, string(p.Gender), p.Height, p.Weight, p.BMI,
		string(p.PrimaryGoal), lists[0], string(p.ActivityLevel), lists[1],
		string(p.DailyWellnessTime), p.SleepHours, string(p.SleepPattern),
		string(p.DietaryPreference), lists[2], string(p.DietStyle), string(p.StressLevel), lists[3],
		string(p.MindfulnessExperience), string(p.WorkStyle), string(p.ScreenTime),
		string(p.SmokingHabit), string(p.AlcoholHabit), lists[4], lists[5], lists[6],
		string(p.MotivationStyle), p.ExtraInformation, util.UnixMillis(p.UpdatedAt),
	}, nil
}

func scanProfile(row rowScanner) (profile.UserProfile, error) {
	var (
		p                                                                    profile.UserProfile
		secondary, exercise, allergies, moods, conditions, limits, favorites string
		updatedAt                                                            int64
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Age, &p.Gender, &p.Height, &p.Weight, &p.BMI, &p.PrimaryGoal, &secondary,
		&p.ActivityLevel, &exercise, &p.DailyWellnessTime, &p.SleepHours, &p.SleepPattern,
		&p.DietaryPreference, &allergies, &p.DietStyle, &p.StressLevel, &moods,
		&p.MindfulnessExperience, &p.WorkStyle, &p.ScreenTime, &p.SmokingHabit, &p.AlcoholHabit,
		&conditions, &limits, &favorites, &p.MotivationStyle,
		&p.ExtraInformation, &updatedAt,
	); err != nil {
		return profile.UserProfile{}, err
	}
	var err error
	if p.SecondaryGoals, err = decodeList[profile.HealthGoal](secondary); err != nil {
		return profile.UserProfile{}, err
	}
	if p.ExercisePreferences, err = decodeList[profile.ExercisePreference](exercise); err != nil {
		return profile.UserProfile{}, err
	}
	if p.FoodAllergies, err = decodeList[string](allergies); err != nil {
		return profile.UserProfile{}, err
	}
	if p.MoodFocusAreas, err = decodeList[profile.MoodFocus](moods); err != nil {
		return profile.UserProfile{}, err
	}
	if p.HealthConditions, err = decodeList[string](conditions); err != nil {
		return profile.UserProfile{}, err
	}
	if p.PhysicalLimitations, err = decodeList[string](limits); err != nil {
		return profile.UserProfile{}, err
	}
	if p.FavoriteActivities, err = decodeList[profile.FavoriteActivity](favorites); err != nil {
		return profile.UserProfile{}, err
	}
	p.UpdatedAt = util.FromUnixMillis(updatedAt)
	return p, nil
}

func encodeList(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode profile list: %w", err)
	}
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}

func decodeList[T any](raw string) ([]T, error) {
	out := []T{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode profile list: %w", err)
	}
	return out, nil
}

func cloneProfile(p profile.UserProfile) profile.UserProfile {
	out := p
	out.Height = clonePtr(p.Height)
	out.Weight = clonePtr(p.Weight)
	out.BMI = clonePtr(p.BMI)
	out.SleepHours = clonePtr(p.SleepHours)
	out.SecondaryGoals = append([]profile.HealthGoal{}, p.SecondaryGoals...)
	out.ExercisePreferences = append([]profile.ExercisePreference{}, p.ExercisePreferences...)
	out.FoodAllergies = append([]string{}, p.FoodAllergies...)
	out.MoodFocusAreas = append([]profile.MoodFocus{}, p.MoodFocusAreas...)
	out.HealthConditions = append([]string{}, p.HealthConditions...)
	out.PhysicalLimitations = append([]string{}, p.PhysicalLimitations...)
	out.FavoriteActivities = append([]profile.FavoriteActivity{}, p.FavoriteActivities...)
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
