package types

import (
	"time"
	"github.com/google/uuid"
)

// Conversation steps for the SMS daily check-in dialogue.
const (
	SmsStepAskDidWorkout  = "ask_did_workout"
	SmsStepAskHitCalories = "ask_hit_calories"
	SmsStepAskRating      = "ask_rating"
	SmsStepAskNotes       = "ask_notes"
	SmsStepComplete       = "complete"
)

type SmsCheckinSession struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProfileID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_sms_profile_date,unique" json:"profile_id"`
	Profile     *ClientProfile `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProfileID;references:ID" json:"profile,omitempty"`
	CheckinDate string         `gorm:"type:date;column:checkin_date;not null;index:idx_sms_profile_date,unique" json:"checkin_date"`
	PhoneNumber string         `gorm:"column:phone_number;not null;index" json:"phone_number"`
	Step        string         `gorm:"column:step;not null;default:'ask_did_workout'" json:"step"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (SmsCheckinSession) TableName() string { return "sms_checkin_sessions" }
