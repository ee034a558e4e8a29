package models

import "time"

type OTPEvent string

const (
	EventRegistration OTPEvent = "registration"
	EventLogin        OTPEvent = "login"
)

type OTPSentStatus string

const (
	SentUnset    OTPSentStatus = "unset"
	SentSuccess  OTPSentStatus = "success"
	SentOffline  OTPSentStatus = "offline"
	SentNotFound OTPSentStatus = "not_found"
)

type OTPToken struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	UserID     uint          `json:"user_id" gorm:"not null;index"`
	Secret     string        `json:"-" gorm:"not null"`
	Code       string        `json:"-" gorm:"not null;index"`
	Interval   int           `json:"interval" gorm:"not null"` // validity window in seconds
	Event      OTPEvent      `json:"event" gorm:"type:varchar(20);not null;index"`
	SentAt     *time.Time    `json:"sent_at"`
	SentStatus OTPSentStatus `json:"sent_status" gorm:"type:varchar(20);default:'unset'"`
	VerifiedAt *time.Time    `json:"verified_at"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
