package profile

type (
	Gender                string
	HealthGoal            string
	ActivityLevel         string
	ExercisePreference    string
	DailyWellnessTime     string
	SleepPattern          string
	DietaryPreference     string
	DietStyle             string
	StressLevel           string
	MoodFocus             string
	MindfulnessExperience string
	WorkStyle             string
	ScreenTime            string
	SmokingHabit          string
	AlcoholHabit          string
	FavoriteActivity      string
	MotivationStyle       string
)

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

const (
	GoalWeightLoss      HealthGoal = "WEIGHT_LOSS"
	GoalMuscleGain      HealthGoal = "MUSCLE_GAIN"
	GoalStressRelief    HealthGoal = "STRESS_RELIEF"
	GoalBetterSleep     HealthGoal = "BETTER_SLEEP"
	GoalFitness         HealthGoal = "FITNESS"
	GoalNutrition       HealthGoal = "NUTRITION"
	GoalMentalHealth    HealthGoal = "MENTAL_HEALTH"
	GoalGeneralWellness HealthGoal = "GENERAL_WELLNESS"
)

const (
	ActivitySedentary        ActivityLevel = "SEDENTARY"
	ActivityLightlyActive    ActivityLevel = "LIGHTLY_ACTIVE"
	ActivityModeratelyActive ActivityLevel = "MODERATELY_ACTIVE"
	ActivityHighlyActive     ActivityLevel = "HIGHLY_ACTIVE"
)

const (
	ExerciseYoga             ExercisePreference = "YOGA"
	ExerciseCardio           ExercisePreference = "CARDIO"
	ExerciseStrengthTraining ExercisePreference = "STRENGTH_TRAINING"
	ExerciseWalking          ExercisePreference = "WALKING"
	ExerciseMeditation       ExercisePreference = "MEDITATION"
	ExercisePilates          ExercisePreference = "PILATES"
	ExerciseSwimming         ExercisePreference = "SWIMMING"
	ExerciseRunning          ExercisePreference = "RUNNING"
	ExerciseCycling          ExercisePreference = "CYCLING"
	ExerciseDancing          ExercisePreference = "DANCING"
)

const (
	WellnessTimeFiveToTen       DailyWellnessTime = "FIVE_TO_TEN_MIN"
	WellnessTimeFifteenToThirty DailyWellnessTime = "FIFTEEN_TO_THIRTY_MIN"
	WellnessTimeThirtyPlus      DailyWellnessTime = "THIRTY_PLUS_MIN"
)

const (
	SleepEarlyBird SleepPattern = "EARLY_BIRD"
	SleepNightOwl  SleepPattern = "NIGHT_OWL"
	SleepRegular   SleepPattern = "REGULAR"
	SleepIrregular SleepPattern = "IRREGULAR"
)

const (
	DietVegetarian    DietaryPreference = "VEGETARIAN"
	DietVegan         DietaryPreference = "VEGAN"
	DietPescatarian   DietaryPreference = "PESCATARIAN"
	DietNonVegetarian DietaryPreference = "NON_VEGETARIAN"
)

const (
	DietStyleKeto                DietStyle = "KETO"
	DietStyleLowCarb             DietStyle = "LOW_CARB"
	DietStyleMediterranean       DietStyle = "MEDITERRANEAN"
	DietStyleBalanced            DietStyle = "BALANCED"
	DietStyleIntermittentFasting DietStyle = "INTERMITTENT_FASTING"
	DietStylePaleo               DietStyle = "PALEO"
)

const (
	StressLow      StressLevel = "LOW"
	StressModerate StressLevel = "MODERATE"
	StressHigh     StressLevel = "HIGH"
)

const (
	MoodAnxiety       MoodFocus = "ANXIETY"
	MoodDepression    MoodFocus = "DEPRESSION"
	MoodMindfulness   MoodFocus = "MINDFULNESS"
	MoodProductivity  MoodFocus = "PRODUCTIVITY"
	MoodConfidence    MoodFocus = "CONFIDENCE"
	MoodRelationships MoodFocus = "RELATIONSHIPS"
)

const (
	MindfulnessBeginner     MindfulnessExperience = "BEGINNER"
	MindfulnessIntermediate MindfulnessExperience = "INTERMEDIATE"
	MindfulnessAdvanced     MindfulnessExperience = "ADVANCED"
)

const (
	WorkDeskJob  WorkStyle = "DESK_JOB"
	WorkFieldJob WorkStyle = "FIELD_JOB"
	WorkRemote   WorkStyle = "REMOTE"
	WorkHybrid   WorkStyle = "HYBRID"
)

const (
	ScreenLow    ScreenTime = "LOW"
	ScreenMedium ScreenTime = "MEDIUM"
	ScreenHigh   ScreenTime = "HIGH"
)

const (
	SmokingNonSmoker  SmokingHabit = "NON_SMOKER"
	SmokingOccasional SmokingHabit = "OCCASIONAL"
	SmokingRegular    SmokingHabit = "REGULAR"
	SmokingQuitting   SmokingHabit = "QUITTING"
)

const (
	AlcoholNonDrinker AlcoholHabit = "NON_DRINKER"
	AlcoholOccasional AlcoholHabit = "OCCASIONAL"
	AlcoholModerate   AlcoholHabit = "MODERATE"
	AlcoholRegular    AlcoholHabit = "REGULAR"
)

const (
	ActivityWalking    FavoriteActivity = "WALKING"
	ActivityHiking     FavoriteActivity = "HIKING"
	ActivityGym        FavoriteActivity = "GYM"
	ActivityYoga       FavoriteActivity = "YOGA"
	ActivityMeditation FavoriteActivity = "MEDITATION"
	ActivityJournaling FavoriteActivity = "JOURNALING"
	ActivityReading    FavoriteActivity = "READING"
	ActivityCooking    FavoriteActivity = "COOKING"
	ActivityGardening  FavoriteActivity = "GARDENING"
	ActivitySports     FavoriteActivity = "SPORTS"
)

const (
	MotivationShortActionable  MotivationStyle = "SHORT_ACTIONABLE"
	MotivationLongExplanations MotivationStyle = "LONG_EXPLANATIONS"
	MotivationStepByStep       MotivationStyle = "STEP_BY_STEP"
	MotivationVisual           MotivationStyle = "VISUAL"
	MotivationAudio            MotivationStyle = "AUDIO"
)

var genderNames = map[Gender]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
	GenderOther:  "Other",
}

var healthGoalNames = map[HealthGoal]string{
	GoalWeightLoss:      "Weight Loss",
	GoalMuscleGain:      "Muscle Gain",
	GoalStressRelief:    "Stress Relief",
	GoalBetterSleep:     "Better Sleep",
	GoalFitness:         "Fitness",
	GoalNutrition:       "Nutrition",
	GoalMentalHealth:    "Mental Health",
	GoalGeneralWellness: "General Wellness",
}

var activityLevelNames = map[ActivityLevel]string{
	ActivitySedentary:        "Sedentary",
	ActivityLightlyActive:    "Lightly Active",
	ActivityModeratelyActive: "Moderately Active",
	ActivityHighlyActive:     "Highly Active",
}

var exerciseNames = map[ExercisePreference]string{
	ExerciseYoga:             "Yoga",
	ExerciseCardio:           "Cardio",
	ExerciseStrengthTraining: "Strength Training",
	ExerciseWalking:          "Walking",
	ExerciseMeditation:       "Meditation",
	ExercisePilates:          "Pilates",
	ExerciseSwimming:         "Swimming",
	ExerciseRunning:          "Running",
	ExerciseCycling:          "Cycling",
	ExerciseDancing:          "Dancing",
}

var wellnessTimeNames = map[DailyWellnessTime]string{
	WellnessTimeFiveToTen:       "5-10 minutes",
	WellnessTimeFifteenToThirty: "15-30 minutes",
	WellnessTimeThirtyPlus:      "30+ minutes",
}

var sleepPatternNames = map[SleepPattern]string{
	SleepEarlyBird: "Early Bird (sleep early, wake early)",
	SleepNightOwl:  "Night Owl (sleep late, wake late)",
	SleepRegular:   "Regular Schedule",
	SleepIrregular: "Irregular Schedule",
}

var dietaryNames = map[DietaryPreference]string{
	DietVegetarian:    "Vegetarian",
	DietVegan:         "Vegan",
	DietPescatarian:   "Pescatarian",
	DietNonVegetarian: "Non-Vegetarian",
}

var dietStyleNames = map[DietStyle]string{
	DietStyleKeto:                "Keto",
	DietStyleLowCarb:             "Low-Carb",
	DietStyleMediterranean:       "Mediterranean",
	DietStyleBalanced:            "Balanced",
	DietStyleIntermittentFasting: "Intermittent Fasting",
	DietStylePaleo:               "Paleo",
}

var stressNames = map[StressLevel]string{
	StressLow:      "Low",
	StressModerate: "Moderate",
	StressHigh:     "High",
}

var moodNames = map[MoodFocus]string{
	MoodAnxiety:       "Anxiety",
	MoodDepression:    "Depression",
	MoodMindfulness:   "Mindfulness",
	MoodProductivity:  "Productivity",
	MoodConfidence:    "Confidence",
	MoodRelationships: "Relationships",
}

var mindfulnessNames = map[MindfulnessExperience]string{
	MindfulnessBeginner:     "Beginner",
	MindfulnessIntermediate: "Intermediate",
	MindfulnessAdvanced:     "Advanced",
}

var workStyleNames = map[WorkStyle]string{
	WorkDeskJob:  "Desk Job",
	WorkFieldJob: "Field Job",
	WorkRemote:   "Remote",
	WorkHybrid:   "Hybrid",
}

var screenTimeNames = map[ScreenTime]string{
	ScreenLow:    "Low",
	ScreenMedium: "Medium",
	ScreenHigh:   "High",
}

var smokingNames = map[SmokingHabit]string{
	SmokingNonSmoker:  "Non-Smoker",
	SmokingOccasional: "Occasional",
	SmokingRegular:    "Regular",
	SmokingQuitting:   "Quitting",
}

var alcoholNames = map[AlcoholHabit]string{
	AlcoholNonDrinker: "Non-Drinker",
	AlcoholOccasional: "Occasional",
	AlcoholModerate:   "Moderate",
	AlcoholRegular:    "Regular",
}

var favoriteActivityNames = map[FavoriteActivity]string{
	ActivityWalking:    "Walking",
	ActivityHiking:     "Hiking",
	ActivityGym:        "Gym",
	ActivityYoga:       "Yoga",
	ActivityMeditation: "Meditation",
	ActivityJournaling: "Journaling",
	ActivityReading:    "Reading",
	ActivityCooking:    "Cooking",
	ActivityGardening:  "Gardening",
	ActivitySports:     "Sports",
}

var motivationNames = map[MotivationStyle]string{
	MotivationShortActionable:  "Short Actionable Tips",
	MotivationLongExplanations: "Long Explanations",
	MotivationStepByStep:       "Step-by-Step Guides",
	MotivationVisual:           "Visual Content",
	MotivationAudio:            "Audio Content",
}

// displayName falls back to the raw value so unknown enums never render empty.
func displayName[T ~string](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return string(v)
}

func known[T ~string](names map[T]string, v T) bool {
	_, ok := names[v]
	return ok
}

func (v Gender) DisplayName() string                { return displayName(genderNames, v) }
func (v HealthGoal) DisplayName() string            { return displayName(healthGoalNames, v) }
func (v ActivityLevel) DisplayName() string         { return displayName(activityLevelNames, v) }
func (v ExercisePreference) DisplayName() string    { return displayName(exerciseNames, v) }
func (v DailyWellnessTime) DisplayName() string     { return displayName(wellnessTimeNames, v) }
func (v SleepPattern) DisplayName() string          { return displayName(sleepPatternNames, v) }
func (v DietaryPreference) DisplayName() string     { return displayName(dietaryNames, v) }
func (v DietStyle) DisplayName() string             { return displayName(dietStyleNames, v) }
func (v StressLevel) DisplayName() string           { return displayName(stressNames, v) }
func (v MoodFocus) DisplayName() string             { return displayName(moodNames, v) }
func (v MindfulnessExperience) DisplayName() string { return displayName(mindfulnessNames, v) }
func (v WorkStyle) DisplayName() string             { return displayName(workStyleNames, v) }
func (v ScreenTime) DisplayName() string            { return displayName(screenTimeNames, v) }
func (v SmokingHabit) DisplayName() string          { return displayName(smokingNames, v) }
func (v AlcoholHabit) DisplayName() string          { return displayName(alcoholNames, v) }
func (v FavoriteActivity) DisplayName() string      { return displayName(favoriteActivityNames, v) }
func (v MotivationStyle) DisplayName() string       { return displayName(motivationNames, v) }
