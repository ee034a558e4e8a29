package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Username       string         `json:"username" gorm:"unique;not null"`
	Email          string         `json:"email" gorm:"unique;not null"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	WhatsAppNumber string         `json:"whatsapp_number" gorm:"column:whats_app_number;unique;not null"`
	Password       string         `json:"-" gorm:"not null"`
	IsActive       bool           `json:"is_active" gorm:"default:false"` // activated on OTP confirmation
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
