package types

import (
	"time"
	"github.com/google/uuid"
)

type DailyCheckin struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProfileID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_profile_checkin_date,unique" json:"profile_id"`
	Profile       *ClientProfile `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProfileID;references:ID" json:"profile,omitempty"`
	CheckinDate   string         `gorm:"type:date;column:checkin_date;not null;index:idx_profile_checkin_date,unique" json:"checkin_date"`
	DidWorkout    bool           `gorm:"column:did_workout;not null;default:false" json:"did_workout"`
	HitCalorieGoal bool          `gorm:"column:hit_calorie_goal;not null;default:false" json:"hit_calorie_goal"`
	WorkoutRating *int           `gorm:"column:workout_rating" json:"workout_rating,omitempty"`
	WeightKg      *float64       `gorm:"column:weight_kg" json:"weight_kg,omitempty"`
	Notes         *string        `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (DailyCheckin) TableName() string { return "daily_checkins" }
