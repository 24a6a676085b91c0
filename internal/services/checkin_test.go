package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/coachie-backend/internal/types"
)

func newCheckinTestService(t *testing.T) (CheckinService, *fakeCheckinRepo, *fakeFoodRepo) {
	t.Helper()
	checkins := newFakeCheckinRepo()
	foods := newFakeFoodRepo()
	return NewCheckinService(checkins, foods, newTestLogger(t)), checkins, foods
}

func TestUpsertCheckinLastWriteWins(t *testing.T) {
	svc, _, _ := newCheckinTestService(t)
	ctx := context.Background()
	profileID := uuid.New()
	rating := 6

	first, err := svc.UpsertCheckin(ctx, UpsertCheckinRequest{
		ProfileID:      &profileID,
		CheckinDate:    "2025-06-02",
		DidWorkout:     true,
		HitCalorieGoal: false,
		WorkoutRating:  &rating,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !first.DidWorkout || first.WorkoutRating == nil || *first.WorkoutRating != 6 {
		t.Fatalf("first row wrong: %+v", first)
	}

	second, err := svc.UpsertCheckin(ctx, UpsertCheckinRequest{
		ProfileID:      &profileID,
		CheckinDate:    "2025-06-02",
		DidWorkout:     false,
		HitCalorieGoal: true,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.DidWorkout || !second.HitCalorieGoal {
		t.Fatalf("second write should win: %+v", second)
	}
	if second.WorkoutRating != nil {
		t.Fatalf("omitting the rating must clear it, got %d", *second.WorkoutRating)
	}
	if second.ID != first.ID {
		t.Fatalf("same day must reuse the row")
	}
}

func TestUpsertCheckinValidation(t *testing.T) {
	svc, _, _ := newCheckinTestService(t)
	ctx := context.Background()
	profileID := uuid.New()

	if _, err := svc.UpsertCheckin(ctx, UpsertCheckinRequest{}); err == nil || !errors.As(err, new(*ValidationError)) {
		t.Fatalf("missing profile_id should be rejected, got %v", err)
	}

	bad := 11
	_, err := svc.UpsertCheckin(ctx, UpsertCheckinRequest{ProfileID: &profileID, WorkoutRating: &bad})
	if err == nil || !errors.As(err, new(*ValidationError)) {
		t.Fatalf("rating 11 should be rejected, got %v", err)
	}

	_, err = svc.UpsertCheckin(ctx, UpsertCheckinRequest{ProfileID: &profileID, CheckinDate: "June 2nd"})
	if err == nil || !errors.As(err, new(*ValidationError)) {
		t.Fatalf("bad date should be rejected, got %v", err)
	}
}

func TestUpsertCheckinDefaultsToToday(t *testing.T) {
	svc, checkins, _ := newCheckinTestService(t)
	profileID := uuid.New()

	row, err := svc.UpsertCheckin(context.Background(), UpsertCheckinRequest{ProfileID: &profileID, DidWorkout: true})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if row.CheckinDate == "" {
		t.Fatalf("date should default to today")
	}
	if got, _ := checkins.GetByProfileAndDate(context.Background(), nil, profileID, row.CheckinDate); got == nil {
		t.Fatalf("row not stored under defaulted date")
	}
}

func TestListCheckinsValidatesDates(t *testing.T) {
	svc, _, _ := newCheckinTestService(t)
	_, err := svc.ListCheckins(context.Background(), uuid.New(), "2025-06-02", "soon")
	if err == nil || !errors.As(err, new(*ValidationError)) {
		t.Fatalf("bad end date should be rejected, got %v", err)
	}
}

func TestFoodEntryLifecycle(t *testing.T) {
	svc, _, _ := newCheckinTestService(t)
	ctx := context.Background()
	profileID := uuid.New()
	meal := "lunch"

	entry, err := svc.AddFoodEntry(ctx, AddFoodEntryRequest{
		ProfileID:   &profileID,
		EntryDate:   "2025-06-02",
		MealType:    &meal,
		Description: "chicken bowl",
		Calories:    650,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	rows, err := svc.ListFoodEntries(ctx, profileID, "2025-06-01", "2025-06-07")
	if err != nil || len(rows) != 1 {
		t.Fatalf("list: %v, rows=%d", err, len(rows))
	}

	if err := svc.DeleteFoodEntry(ctx, profileID, entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteFoodEntry(ctx, profileID, entry.ID); err == nil || !errors.As(err, new(*ValidationError)) {
		t.Fatalf("second delete should be not-found, got %v", err)
	}
}

func TestAddFoodEntryValidation(t *testing.T) {
	svc, _, _ := newCheckinTestService(t)
	ctx := context.Background()
	profileID := uuid.New()

	if _, err := svc.AddFoodEntry(ctx, AddFoodEntryRequest{ProfileID: &profileID, Description: "  "}); err == nil {
		t.Fatalf("blank description should be rejected")
	}
	if _, err := svc.AddFoodEntry(ctx, AddFoodEntryRequest{ProfileID: &profileID, Description: "toast", Calories: -5}); err == nil {
		t.Fatalf("negative calories should be rejected")
	}
}

func TestDeleteFoodEntryScopedToProfile(t *testing.T) {
	svc, _, foods := newCheckinTestService(t)
	ctx := context.Background()
	owner := uuid.New()

	entry := &types.FoodEntry{ProfileID: owner, EntryDate: "2025-06-02", Description: "oats", Calories: 300}
	foods.Create(ctx, nil, []*types.FoodEntry{entry})

	if err := svc.DeleteFoodEntry(ctx, uuid.New(), entry.ID); err == nil {
		t.Fatalf("a different profile must not delete the entry")
	}
	if got, _ := foods.ListByProfileInRange(ctx, nil, owner, "2025-06-01", "2025-06-07"); len(got) != 1 {
		t.Fatalf("entry should survive the scoped delete")
	}
}
