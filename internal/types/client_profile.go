package types

import (
	"time"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GoalType values accepted at onboarding.
const (
	GoalLoseWeight = "lose_weight"
	GoalGainMuscle = "gain_muscle"
	GoalRecomp     = "recomp"
)

type ClientProfile struct {
	ID                       uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName                string         `gorm:"not null;column:first_name" json:"first_name"`
	LastName                 string         `gorm:"not null;column:last_name" json:"last_name"`
	Age                      int            `gorm:"column:age;not null" json:"age"`
	Gender                   string         `gorm:"column:gender;not null" json:"gender"`
	HeightCm                 float64        `gorm:"column:height_cm;not null" json:"height_cm"`
	WeightKg                 float64        `gorm:"column:weight_kg;not null" json:"weight_kg"`
	GoalType                 string         `gorm:"column:goal_type;not null" json:"goal_type"`
	GoalWeightKg             *float64       `gorm:"column:goal_weight_kg" json:"goal_weight_kg,omitempty"`
	CalorieTarget            *int           `gorm:"column:calorie_target" json:"calorie_target,omitempty"`
	CurrentWorkoutsPerWeek   int            `gorm:"column:current_workouts_per_week;not null;default:0" json:"current_workouts_per_week"`
	RealisticWorkoutsPerWeek int            `gorm:"column:realistic_workouts_per_week;not null;default:0" json:"realistic_workouts_per_week"`
	WorkSchedule             string         `gorm:"column:work_schedule" json:"work_schedule"`
	PreferredWorkoutTime     string         `gorm:"column:preferred_workout_time" json:"preferred_workout_time"`
	Equipment                string         `gorm:"column:equipment" json:"equipment"`
	EstimatedSteps           string         `gorm:"column:estimated_steps" json:"estimated_steps"`
	StepTarget               *int           `gorm:"column:step_target" json:"step_target,omitempty"`
	GoalWhy                  *string        `gorm:"column:goal_why" json:"goal_why,omitempty"`
	PastStruggles            *string        `gorm:"column:past_struggles" json:"past_struggles,omitempty"`
	ToneNotes                *string        `gorm:"column:tone_notes" json:"tone_notes,omitempty"`
	WorkoutSplit             datatypes.JSON `gorm:"type:jsonb;column:workout_split" json:"workout_split,omitempty"`
	WeeklyWorkoutSchedule    datatypes.JSON `gorm:"type:jsonb;column:weekly_workout_schedule" json:"weekly_workout_schedule,omitempty"`
	PhoneNumber              *string        `gorm:"column:phone_number;index" json:"phone_number,omitempty"`
	AllowSmsCheckins         bool           `gorm:"column:allow_sms_checkins;not null;default:false" json:"allow_sms_checkins"`
	CreatedAt                time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt                time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt                gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ClientProfile) TableName() string { return "client_profiles" }
