package services

import (
	"github.com/yungbote/coachie-backend/internal/types"
)

// Adherence is the flat weekly rollup the coaching flows report on. It is
// always recomputed from check-in rows; a model echo never replaces it.
type Adherence struct {
	TotalDays        int      `json:"totalDays"`
	DaysWorkedOut    int      `json:"daysWorkedOut"`
	DaysHitCalories  int      `json:"daysHitCalories"`
	AvgWorkoutRating *float64 `json:"avgWorkoutRating"`
}

func ComputeAdherence(checkins []*types.DailyCheckin) Adherence {
	out := Adherence{TotalDays: len(checkins)}

	ratingSum := 0
	ratingCount := 0
	for _, c := range checkins {
		if c.DidWorkout {
			out.DaysWorkedOut++
		}
		if c.HitCalorieGoal {
			out.DaysHitCalories++
		}
		if c.WorkoutRating != nil {
			ratingSum += *c.WorkoutRating
			ratingCount++
		}
	}
	if ratingCount > 0 {
		avg := float64(ratingSum) / float64(ratingCount)
		out.AvgWorkoutRating = &avg
	}
	return out
}
