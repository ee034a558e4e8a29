package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	StoreID      uuid.UUID      `json:"store_id" gorm:"type:uuid;not null;index"`
	Name         string         `json:"name" gorm:"not null"`
	Price        int64          `json:"price" gorm:"not null"` // cost price
	SellingPrice int64          `json:"selling_price" gorm:"not null"`
	Weight       int            `json:"weight"`                             // grams
	Quantity     int            `json:"quantity" gorm:"not null;default:0"` // on-hand stock
	IsDeleted    bool           `json:"is_deleted" gorm:"default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
