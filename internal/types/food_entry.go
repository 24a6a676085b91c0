package types

import (
	"time"
	"github.com/google/uuid"
)

type FoodEntry struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProfileID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_food_profile_date" json:"profile_id"`
	Profile     *ClientProfile `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProfileID;references:ID" json:"profile,omitempty"`
	EntryDate   string         `gorm:"type:date;column:entry_date;not null;index:idx_food_profile_date" json:"entry_date"`
	MealType    *string        `gorm:"column:meal_type" json:"meal_type,omitempty"`
	Description string         `gorm:"column:description;not null" json:"description"`
	Calories    int            `gorm:"column:calories;not null" json:"calories"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (FoodEntry) TableName() string { return "food_entries" }
