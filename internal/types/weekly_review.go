package types

import (
	"time"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WeeklyReview struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProfileID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_review_profile_week,unique" json:"profile_id"`
	Profile          *ClientProfile `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProfileID;references:ID" json:"profile,omitempty"`
	WeekStart        string         `gorm:"type:date;column:week_start;not null;index:idx_review_profile_week,unique" json:"week_start"`
	WeightLbs        *float64       `gorm:"column:weight_lbs" json:"weight_lbs,omitempty"`
	Effort           int            `gorm:"column:effort;not null" json:"effort"`
	WentWell         string         `gorm:"column:went_well" json:"went_well"`
	GotInTheWay      string         `gorm:"column:got_in_the_way" json:"got_in_the_way"`
	Analysis         datatypes.JSON `gorm:"type:jsonb;column:analysis" json:"analysis"`
	NewCalorieTarget *int           `gorm:"column:new_calorie_target" json:"new_calorie_target,omitempty"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (WeeklyReview) TableName() string { return "weekly_reviews" }
