package services

import "math"

// Calorie adjustment step and floor. The step is deliberately small so weekly
// reviews nudge targets instead of swinging them.
const (
	calorieAdjustStep = 150
	calorieFloor      = 1200
)

// Recommendation values the weekly analysis may return.
const (
	RecommendationKeep          = "keep"
	RecommendationLowerSlightly = "lower_slightly"
	RecommendationRaiseSlightly = "raise_slightly"
)

// NextCalorieTarget applies a bounded nudge to the current target. Unknown
// recommendations keep the target unchanged.
func NextCalorieTarget(current int, recommendation string) int {
	switch recommendation {
	case RecommendationLowerSlightly:
		next := current - calorieAdjustStep
		if next < calorieFloor {
			next = calorieFloor
		}
		return next
	case RecommendationRaiseSlightly:
		return current + calorieAdjustStep
	}
	return current
}

// DailyCalorieNeeds estimates maintenance calories from the Mifflin-St Jeor
// BMR scaled by an activity multiplier keyed off realistic workouts per week.
func DailyCalorieNeeds(weightKg, heightCm float64, age int, gender string, realisticWorkoutsPerWeek int) float64 {
	var bmr float64
	if gender == "male" {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	} else {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
	}

	switch {
	case realisticWorkoutsPerWeek <= 1:
		return bmr * 1.2
	case realisticWorkoutsPerWeek <= 3:
		return bmr * 1.375
	case realisticWorkoutsPerWeek <= 5:
		return bmr * 1.55
	case realisticWorkoutsPerWeek <= 6:
		return bmr * 1.725
	default:
		return bmr * 1.9
	}
}

// MacroCalorieTarget derives the onboarding calorie target: maintenance needs
// shifted for the goal, rounded to the nearest 50 kcal.
func MacroCalorieTarget(weightKg, heightCm float64, age int, gender, goalType string, realisticWorkoutsPerWeek int) int {
	tdee := DailyCalorieNeeds(weightKg, heightCm, age, gender, realisticWorkoutsPerWeek)

	target := tdee
	switch goalType {
	case "lose_weight":
		target = tdee * 0.8
	case "gain_muscle":
		target = tdee * 1.1
	default:
		target = tdee * 0.95
	}

	return int(math.Round(target/50.0)) * 50
}
