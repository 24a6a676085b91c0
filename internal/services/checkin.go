package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/coachie-backend/internal/dateutil"
	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/repos"
	"github.com/yungbote/coachie-backend/internal/types"
)

type UpsertCheckinRequest struct {
	ProfileID      *uuid.UUID `json:"profile_id"`
	CheckinDate    string     `json:"checkin_date"`
	DidWorkout     bool       `json:"did_workout"`
	HitCalorieGoal bool       `json:"hit_calorie_goal"`
	WorkoutRating  *int       `json:"workout_rating"`
	WeightKg       *float64   `json:"weight_kg"`
	Notes          *string    `json:"notes"`
}

type AddFoodEntryRequest struct {
	ProfileID   *uuid.UUID `json:"profile_id"`
	EntryDate   string     `json:"entry_date"`
	MealType    *string    `json:"meal_type"`
	Description string     `json:"description"`
	Calories    int        `json:"calories"`
}

type CheckinService interface {
	// UpsertCheckin is the web check-in path: last write for a day wins.
	UpsertCheckin(ctx context.Context, req UpsertCheckinRequest) (*types.DailyCheckin, error)

	ListCheckins(ctx context.Context, profileID uuid.UUID, startDate, endDate string) ([]*types.DailyCheckin, error)

	AddFoodEntry(ctx context.Context, req AddFoodEntryRequest) (*types.FoodEntry, error)
	ListFoodEntries(ctx context.Context, profileID uuid.UUID, startDate, endDate string) ([]*types.FoodEntry, error)
	DeleteFoodEntry(ctx context.Context, profileID, entryID uuid.UUID) error
}

type checkinService struct {
	checkinRepo repos.DailyCheckinRepo
	foodRepo    repos.FoodEntryRepo
	log         *logger.Logger
}

func NewCheckinService(checkinRepo repos.DailyCheckinRepo, foodRepo repos.FoodEntryRepo, baseLog *logger.Logger) CheckinService {
	return &checkinService{
		checkinRepo: checkinRepo,
		foodRepo:    foodRepo,
		log:         baseLog.With("service", "CheckinService"),
	}
}

func (s *checkinService) UpsertCheckin(ctx context.Context, req UpsertCheckinRequest) (*types.DailyCheckin, error) {
	if req.ProfileID == nil {
		return nil, NewValidationError("profile_id is required")
	}
	date := strings.TrimSpace(req.CheckinDate)
	if date == "" {
		date = dateutil.TodayLocal()
	} else if _, err := dateutil.ParseDate(date); err != nil {
		return nil, NewValidationError("checkin_date must be YYYY-MM-DD")
	}
	if req.WorkoutRating != nil && (*req.WorkoutRating < 1 || *req.WorkoutRating > 10) {
		return nil, NewValidationError("workout_rating must be between 1 and 10")
	}

	// The web form submits the whole day, so optional fields omitted from a
	// resubmission clear the stored values. The SMS flow writes per-answer
	// fields through UpsertFields directly and is unaffected.
	fields := map[string]interface{}{
		"did_workout":      req.DidWorkout,
		"hit_calorie_goal": req.HitCalorieGoal,
		"workout_rating":   nil,
		"weight_kg":        nil,
		"notes":            nil,
	}
	if req.WorkoutRating != nil {
		fields["workout_rating"] = *req.WorkoutRating
	}
	if req.WeightKg != nil {
		fields["weight_kg"] = *req.WeightKg
	}
	if req.Notes != nil {
		fields["notes"] = strings.TrimSpace(*req.Notes)
	}

	if err := s.checkinRepo.UpsertFields(ctx, nil, *req.ProfileID, date, fields); err != nil {
		return nil, fmt.Errorf("upsert daily checkin: %w", err)
	}

	row, err := s.checkinRepo.GetByProfileAndDate(ctx, nil, *req.ProfileID, date)
	if err != nil {
		return nil, fmt.Errorf("reload daily checkin: %w", err)
	}
	return row, nil
}

func (s *checkinService) ListCheckins(ctx context.Context, profileID uuid.UUID, startDate, endDate string) ([]*types.DailyCheckin, error) {
	if _, err := dateutil.ParseDate(startDate); err != nil {
		return nil, NewValidationError("start must be YYYY-MM-DD")
	}
	if _, err := dateutil.ParseDate(endDate); err != nil {
		return nil, NewValidationError("end must be YYYY-MM-DD")
	}
	rows, err := s.checkinRepo.ListByProfileInRange(ctx, nil, profileID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list daily checkins: %w", err)
	}
	return rows, nil
}

func (s *checkinService) AddFoodEntry(ctx context.Context, req AddFoodEntryRequest) (*types.FoodEntry, error) {
	if req.ProfileID == nil {
		return nil, NewValidationError("profile_id is required")
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, NewValidationError("description is required")
	}
	if req.Calories < 0 {
		return nil, NewValidationError("calories cannot be negative")
	}
	date := strings.TrimSpace(req.EntryDate)
	if date == "" {
		date = dateutil.TodayLocal()
	} else if _, err := dateutil.ParseDate(date); err != nil {
		return nil, NewValidationError("entry_date must be YYYY-MM-DD")
	}

	entry := &types.FoodEntry{
		ProfileID:   *req.ProfileID,
		EntryDate:   date,
		MealType:    req.MealType,
		Description: description,
		Calories:    req.Calories,
	}
	created, err := s.foodRepo.Create(ctx, nil, []*types.FoodEntry{entry})
	if err != nil {
		return nil, fmt.Errorf("create food entry: %w", err)
	}
	return created[0], nil
}

func (s *checkinService) ListFoodEntries(ctx context.Context, profileID uuid.UUID, startDate, endDate string) ([]*types.FoodEntry, error) {
	if _, err := dateutil.ParseDate(startDate); err != nil {
		return nil, NewValidationError("start must be YYYY-MM-DD")
	}
	if _, err := dateutil.ParseDate(endDate); err != nil {
		return nil, NewValidationError("end must be YYYY-MM-DD")
	}
	rows, err := s.foodRepo.ListByProfileInRange(ctx, nil, profileID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list food entries: %w", err)
	}
	return rows, nil
}

func (s *checkinService) DeleteFoodEntry(ctx context.Context, profileID, entryID uuid.UUID) error {
	deleted, err := s.foodRepo.Delete(ctx, nil, profileID, entryID)
	if err != nil {
		return fmt.Errorf("delete food entry: %w", err)
	}
	if !deleted {
		return NewValidationError("food entry not found")
	}
	return nil
}
