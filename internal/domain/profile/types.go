package profile

import (
	"math"
	"time"
)

// SingletonID is the fixed key of the only stored profile.
const SingletonID = 1

// UserProfile is the lifestyle questionnaire that drives tip generation.
type UserProfile struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Age    int      `json:"age"`
	Gender Gender   `json:"gender"`
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	BMI    *float64 `json:"bmi,omitempty"`

	PrimaryGoal    HealthGoal   `json:"primaryGoal"`
	SecondaryGoals []HealthGoal `json:"secondaryGoals"`

	ActivityLevel       ActivityLevel        `json:"activityLevel"`
	ExercisePreferences []ExercisePreference `json:"exercisePreferences"`
	DailyWellnessTime   DailyWellnessTime    `json:"dailyWellnessTime"`
	SleepHours          *int                 `json:"sleepHours,omitempty"`
	SleepPattern        SleepPattern         `json:"sleepPattern,omitempty"`

	DietaryPreference DietaryPreference `json:"dietaryPreference"`
	FoodAllergies     []string          `json:"foodAllergies"`
	DietStyle         DietStyle         `json:"dietStyle,omitempty"`

	StressLevel           StressLevel           `json:"stressLevel"`
	MoodFocusAreas        []MoodFocus           `json:"moodFocusAreas"`
	MindfulnessExperience MindfulnessExperience `json:"mindfulnessExperience"`

	WorkStyle    WorkStyle    `json:"workStyle"`
	ScreenTime   ScreenTime   `json:"screenTime"`
	SmokingHabit SmokingHabit `json:"smokingHabit,omitempty"`
	AlcoholHabit AlcoholHabit `json:"alcoholHabit,omitempty"`

	HealthConditions    []string `json:"healthConditions"`
	PhysicalLimitations []string `json:"physicalLimitations"`

	FavoriteActivities []FavoriteActivity `json:"favoriteActivities"`
	MotivationStyle    MotivationStyle    `json:"motivationStyle"`
	ExtraInformation   string             `json:"extraInformation"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// HasBodyMetrics reports whether both height and weight were provided.
func (p UserProfile) HasBodyMetrics() bool {
	return p.Height != nil && p.Weight != nil
}

// ComputeBMI returns weight / (height in m)^2 rounded to one decimal.
func ComputeBMI(heightCm, weightKg float64) (float64, bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}
	meters := heightCm / 100
	bmi := weightKg / (meters * meters)
	return math.Round(bmi*10) / 10, true
}
