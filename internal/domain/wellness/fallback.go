package wellness

import (
	"fmt"
	"time"
)

// FallbackTips is the fixed batch used whenever generation or parsing fails.
func FallbackTips(now time.Time) []Tip {
	stamp := now.UnixMilli()
	tips := []Tip{
		{
			Title:               "Morning Hydration Boost",
			Summary:             "Start your day with a glass of water to kickstart your metabolism",
			DetailedExplanation: "Drinking water first thing in the morning helps rehydrate your body after a night's sleep and can boost your metabolism by up to 30% for about an hour. This simple habit also helps flush out toxins and prepares your digestive system for the day ahead.",
			StepByStepGuide: []string{
				"Keep a glass of water by your bedside before sleeping",
				"Drink the entire glass within 10 minutes of waking up",
				"Wait 30 minutes before having your first meal or coffee",
			},
			Category: "Hydration",
			Icon:     "💧",
		},
		{
			Title:               "10-Minute Morning Stretch",
			Summary:             "Gentle stretching routine to improve flexibility and energy",
			DetailedExplanation: "A brief morning stretching routine can improve blood circulation, reduce muscle stiffness, and increase your energy levels throughout the day. It also helps prepare your body for daily activities and reduces the risk of injury.",
			StepByStepGuide: []string{
				"Start with neck rolls and shoulder shrugs",
				"Do gentle spinal twists while seated or standing",
				"Finish with deep breathing exercises for 2-3 minutes",
			},
			Category: "Fitness",
			Icon:     "🧘",
		},
		{
			Title:               "Mindful Eating Practice",
			Summary:             "Eat slowly and mindfully to improve digestion and satisfaction",
			DetailedExplanation: "Mindful eating involves paying full attention to the experience of eating and drinking. This practice can help you eat less, enjoy food more, and develop a healthier relationship with food. It also improves digestion and nutrient absorption.",
			StepByStepGuide: []string{
				"Remove distractions like TV or phone while eating",
				"Take small bites and chew each mouthful 20-30 times",
				"Pause between bites and check in with your hunger levels",
			},
			Category: "Nutrition",
			Icon:     "🍽️",
		},
		{
			Title:               "Evening Wind-Down Routine",
			Summary:             "Create a relaxing bedtime routine for better sleep quality",
			DetailedExplanation: "A consistent wind-down routine signals to your body that it's time to sleep, helping you fall asleep faster and enjoy deeper, more restorative sleep. This is especially important for weight management as poor sleep can disrupt hunger hormones.",
			StepByStepGuide: []string{
				"Stop using electronic devices 1 hour before bed",
				"Do a calming activity like reading or gentle stretching",
				"Keep your bedroom cool, dark, and quiet",
			},
			Category: "Sleep",
			Icon:     "🌙",
		},
		{
			Title:               "Daily Gratitude Practice",
			Summary:             "Write down three things you're grateful for each day",
			DetailedExplanation: "Practicing gratitude has been shown to improve mental health, reduce stress, and even boost physical health. It helps shift your focus from what's lacking to what's abundant in your life, creating a positive mindset that supports your wellness goals.",
			StepByStepGuide: []string{
				"Set aside 5 minutes each morning or evening",
				"Write down three specific things you're grateful for",
				"Reflect on why each item brings you joy or appreciation",
			},
			Category: "Mental Health",
			Icon:     "🙏",
		},
	}
	for i := range tips {
		tips[i].ID = fmt.Sprintf("tip_%d_%d", stamp, i+1)
		tips[i].IsCurrentGeneration = true
		tips[i].CreatedAt = now
	}
	return tips
}

// fallbackExpansion fills the tip with generic detail text that names its title.
func fallbackExpansion(tip Tip) Tip {
	tip.DetailedExplanation = fmt.Sprintf("This is a detailed explanation of %s. It provides comprehensive guidance on how to implement this wellness practice in your daily routine.", tip.Title)
	tip.StepByStepGuide = []string{
		"Step 1: Prepare yourself mentally and physically",
		"Step 2: Follow the specific techniques outlined",
		"Step 3: Monitor your progress and adjust as needed",
	}
	return tip
}
