package services

import (
	"testing"

	"github.com/yungbote/coachie-backend/internal/types"
)

func intPtr(n int) *int { return &n }

func TestComputeAdherenceEmpty(t *testing.T) {
	a := ComputeAdherence(nil)
	if a.TotalDays != 0 || a.DaysWorkedOut != 0 || a.DaysHitCalories != 0 {
		t.Fatalf("empty input should produce zero counts, got %+v", a)
	}
	if a.AvgWorkoutRating != nil {
		t.Fatalf("no ratings should mean nil average, got %v", *a.AvgWorkoutRating)
	}
}

func TestComputeAdherenceCounts(t *testing.T) {
	checkins := []*types.DailyCheckin{
		{DidWorkout: true, HitCalorieGoal: true, WorkoutRating: intPtr(8)},
		{DidWorkout: true, HitCalorieGoal: false, WorkoutRating: intPtr(6)},
		{DidWorkout: false, HitCalorieGoal: true},
		{DidWorkout: false, HitCalorieGoal: false},
	}
	a := ComputeAdherence(checkins)
	if a.TotalDays != 4 {
		t.Fatalf("TotalDays = %d, want 4", a.TotalDays)
	}
	if a.DaysWorkedOut != 2 {
		t.Fatalf("DaysWorkedOut = %d, want 2", a.DaysWorkedOut)
	}
	if a.DaysHitCalories != 2 {
		t.Fatalf("DaysHitCalories = %d, want 2", a.DaysHitCalories)
	}
	if a.AvgWorkoutRating == nil || *a.AvgWorkoutRating != 7 {
		t.Fatalf("AvgWorkoutRating = %v, want 7", a.AvgWorkoutRating)
	}
}

func TestComputeAdherenceIgnoresMissingRatings(t *testing.T) {
	checkins := []*types.DailyCheckin{
		{DidWorkout: true, WorkoutRating: intPtr(10)},
		{DidWorkout: true},
		{DidWorkout: true},
	}
	a := ComputeAdherence(checkins)
	if a.AvgWorkoutRating == nil || *a.AvgWorkoutRating != 10 {
		t.Fatalf("only present ratings should average, got %v", a.AvgWorkoutRating)
	}
}
