package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderItem struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   uint           `json:"order_id" gorm:"not null;index"`
	ProductID uint           `json:"product_id" gorm:"not null;index"`
	Qty       int            `json:"qty" gorm:"not null"`
	Price     int64          `json:"price" gorm:"not null"` // selling price snapshot at order time
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
