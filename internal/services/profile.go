package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/coachie-backend/internal/logger"
	"github.com/yungbote/coachie-backend/internal/repos"
	"github.com/yungbote/coachie-backend/internal/types"
)

var allowedGenders = map[string]struct{}{
	"male": {}, "female": {}, "other": {},
}

var allowedGoalTypes = map[string]struct{}{
	types.GoalLoseWeight: {}, types.GoalGainMuscle: {}, types.GoalRecomp: {},
}

var allowedEquipment = map[string]struct{}{
	"none": {}, "home_gym": {}, "commercial_gym": {},
}

type CreateProfileRequest struct {
	FirstName                string   `json:"first_name"`
	LastName                 string   `json:"last_name"`
	Age                      int      `json:"age"`
	Gender                   string   `json:"gender"`
	HeightCm                 float64  `json:"height_cm"`
	WeightKg                 float64  `json:"weight_kg"`
	GoalType                 string   `json:"goalType"`
	GoalWeightKg             *float64 `json:"goalWeight_kg"`
	CurrentWorkoutsPerWeek   int      `json:"currentWorkoutsPerWeek"`
	RealisticWorkoutsPerWeek int      `json:"realisticWorkoutsPerWeek"`
	WorkSchedule             string   `json:"workSchedule"`
	PreferredWorkoutTime     string   `json:"preferredWorkoutTime"`
	Equipment                string   `json:"equipment"`
	EstimatedSteps           string   `json:"estimatedSteps"`
	PhoneNumber              *string  `json:"phone_number"`
	AllowSmsCheckins         *bool    `json:"allow_sms_checkins"`
}

type UpdateSettingsRequest struct {
	PhoneNumber      *string `json:"phone_number"`
	AllowSmsCheckins *bool   `json:"allow_sms_checkins"`
}

type ProfileService interface {
	// CreateProfile saves an onboarding submission and seeds the calorie
	// target from the client's stats and goal.
	CreateProfile(ctx context.Context, req CreateProfileRequest) (*types.ClientProfile, error)

	GetProfile(ctx context.Context, profileID uuid.UUID) (*types.ClientProfile, error)

	// UpdateSettings changes the SMS contact settings only.
	UpdateSettings(ctx context.Context, profileID uuid.UUID, req UpdateSettingsRequest) (*types.ClientProfile, error)
}

type profileService struct {
	profileRepo repos.ClientProfileRepo
	log         *logger.Logger
}

func NewProfileService(profileRepo repos.ClientProfileRepo, baseLog *logger.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		log:         baseLog.With("service", "ProfileService"),
	}
}

func (s *profileService) CreateProfile(ctx context.Context, req CreateProfileRequest) (*types.ClientProfile, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Gender = strings.ToLower(strings.TrimSpace(req.Gender))
	req.GoalType = strings.ToLower(strings.TrimSpace(req.GoalType))
	req.Equipment = strings.ToLower(strings.TrimSpace(req.Equipment))

	if req.FirstName == "" || req.LastName == "" {
		return nil, NewValidationError("first_name and last_name are required")
	}
	if req.Age <= 0 {
		return nil, NewValidationError("age must be positive")
	}
	if _, ok := allowedGenders[req.Gender]; !ok {
		return nil, NewValidationError("gender must be one of male, female, other")
	}
	if req.HeightCm <= 0 || req.WeightKg <= 0 {
		return nil, NewValidationError("height_cm and weight_kg must be positive")
	}
	if _, ok := allowedGoalTypes[req.GoalType]; !ok {
		return nil, NewValidationError("goalType must be one of lose_weight, gain_muscle, recomp")
	}
	if req.Equipment != "" {
		if _, ok := allowedEquipment[req.Equipment]; !ok {
			return nil, NewValidationError("equipment must be one of none, home_gym, commercial_gym")
		}
	}
	if req.RealisticWorkoutsPerWeek < 0 || req.CurrentWorkoutsPerWeek < 0 {
		return nil, NewValidationError("workouts per week cannot be negative")
	}

	calorieTarget := MacroCalorieTarget(
		req.WeightKg,
		req.HeightCm,
		req.Age,
		req.Gender,
		req.GoalType,
		req.RealisticWorkoutsPerWeek,
	)

	allowSms := false
	if req.AllowSmsCheckins != nil {
		allowSms = *req.AllowSmsCheckins
	}

	profile := &types.ClientProfile{
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		Age:                      req.Age,
		Gender:                   req.Gender,
		HeightCm:                 req.HeightCm,
		WeightKg:                 req.WeightKg,
		GoalType:                 req.GoalType,
		GoalWeightKg:             req.GoalWeightKg,
		CalorieTarget:            &calorieTarget,
		CurrentWorkoutsPerWeek:   req.CurrentWorkoutsPerWeek,
		RealisticWorkoutsPerWeek: req.RealisticWorkoutsPerWeek,
		WorkSchedule:             strings.TrimSpace(req.WorkSchedule),
		PreferredWorkoutTime:     strings.TrimSpace(req.PreferredWorkoutTime),
		Equipment:                req.Equipment,
		EstimatedSteps:           strings.TrimSpace(req.EstimatedSteps),
		PhoneNumber:              normalizePhone(req.PhoneNumber),
		AllowSmsCheckins:         allowSms,
	}

	created, err := s.profileRepo.Create(ctx, nil, []*types.ClientProfile{profile})
	if err != nil {
		return nil, fmt.Errorf("create client profile: %w", err)
	}
	return created[0], nil
}

func (s *profileService) GetProfile(ctx context.Context, profileID uuid.UUID) (*types.ClientProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, nil, profileID)
	if err != nil {
		return nil, fmt.Errorf("load client profile: %w", err)
	}
	if profile == nil {
		return nil, NewValidationError("profile not found")
	}
	return profile, nil
}

func (s *profileService) UpdateSettings(ctx context.Context, profileID uuid.UUID, req UpdateSettingsRequest) (*types.ClientProfile, error) {
	fields := map[string]interface{}{}
	if req.PhoneNumber != nil {
		if p := normalizePhone(req.PhoneNumber); p != nil {
			fields["phone_number"] = *p
		} else {
			fields["phone_number"] = nil
		}
	}
	if req.AllowSmsCheckins != nil {
		fields["allow_sms_checkins"] = *req.AllowSmsCheckins
	}
	if len(fields) == 0 {
		return nil, NewValidationError("no settings provided")
	}

	profile, err := s.profileRepo.GetByID(ctx, nil, profileID)
	if err != nil {
		return nil, fmt.Errorf("load client profile: %w", err)
	}
	if profile == nil {
		return nil, NewValidationError("profile not found")
	}

	if err := s.profileRepo.UpdateFields(ctx, nil, profileID, fields); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	updated, err := s.profileRepo.GetByID(ctx, nil, profileID)
	if err != nil {
		return nil, fmt.Errorf("reload client profile: %w", err)
	}
	return updated, nil
}

// normalizePhone trims whitespace; Twilio already delivers E.164.
func normalizePhone(raw *string) *string {
	if raw == nil {
		return nil
	}
	p := strings.TrimSpace(*raw)
	if p == "" {
		return nil
	}
	return &p
}
