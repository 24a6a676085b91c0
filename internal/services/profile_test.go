package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func validCreateProfileRequest() CreateProfileRequest {
	phone := " +15550001 "
	optIn := true
	return CreateProfileRequest{
		FirstName:                "Sam",
		LastName:                 "Rivera",
		Age:                      30,
		Gender:                   "Male",
		HeightCm:                 180,
		WeightKg:                 80,
		GoalType:                 "lose_weight",
		CurrentWorkoutsPerWeek:   1,
		RealisticWorkoutsPerWeek: 3,
		Equipment:                "home_gym",
		PhoneNumber:              &phone,
		AllowSmsCheckins:         &optIn,
	}
}

func TestCreateProfileSeedsCalorieTarget(t *testing.T) {
	profiles := newFakeProfileRepo()
	svc := NewProfileService(profiles, newTestLogger(t))

	profile, err := svc.CreateProfile(context.Background(), validCreateProfileRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if profile.CalorieTarget == nil || *profile.CalorieTarget != 1950 {
		t.Fatalf("calorie target = %v, want 1950", profile.CalorieTarget)
	}
	if profile.Gender != "male" {
		t.Fatalf("gender should be normalized, got %q", profile.Gender)
	}
	if profile.PhoneNumber == nil || *profile.PhoneNumber != "+15550001" {
		t.Fatalf("phone should be trimmed, got %v", profile.PhoneNumber)
	}
	if !profile.AllowSmsCheckins {
		t.Fatalf("opt-in flag dropped")
	}
}

func TestCreateProfileValidation(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), newTestLogger(t))

	cases := []struct {
		name   string
		mutate func(*CreateProfileRequest)
		want   string
	}{
		{"missing name", func(r *CreateProfileRequest) { r.FirstName = " " }, "first_name"},
		{"bad age", func(r *CreateProfileRequest) { r.Age = 0 }, "age"},
		{"bad gender", func(r *CreateProfileRequest) { r.Gender = "robot" }, "gender"},
		{"bad goal", func(r *CreateProfileRequest) { r.GoalType = "get_swole" }, "goalType"},
		{"bad equipment", func(r *CreateProfileRequest) { r.Equipment = "spaceship" }, "equipment"},
		{"bad height", func(r *CreateProfileRequest) { r.HeightCm = 0 }, "height_cm"},
	}
	for _, c := range cases {
		req := validCreateProfileRequest()
		c.mutate(&req)
		_, err := svc.CreateProfile(context.Background(), req)
		if err == nil || !errors.As(err, new(*ValidationError)) || !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%s: got %v, want validation error mentioning %q", c.name, err, c.want)
		}
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), newTestLogger(t))
	_, err := svc.GetProfile(context.Background(), uuid.New())
	if err == nil || !errors.As(err, new(*ValidationError)) {
		t.Fatalf("unknown profile should be a validation error, got %v", err)
	}
}

func TestUpdateSettings(t *testing.T) {
	profiles := newFakeProfileRepo()
	svc := NewProfileService(profiles, newTestLogger(t))

	created, err := svc.CreateProfile(context.Background(), validCreateProfileRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newPhone := "+15559999"
	optOut := false
	updated, err := svc.UpdateSettings(context.Background(), created.ID, UpdateSettingsRequest{
		PhoneNumber:      &newPhone,
		AllowSmsCheckins: &optOut,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PhoneNumber == nil || *updated.PhoneNumber != newPhone {
		t.Fatalf("phone not updated: %v", updated.PhoneNumber)
	}
	if updated.AllowSmsCheckins {
		t.Fatalf("opt-out not applied")
	}
}

func TestUpdateSettingsRequiresAField(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), newTestLogger(t))
	_, err := svc.UpdateSettings(context.Background(), uuid.New(), UpdateSettingsRequest{})
	if err == nil || !strings.Contains(err.Error(), "no settings") {
		t.Fatalf("empty update should be rejected, got %v", err)
	}
}
