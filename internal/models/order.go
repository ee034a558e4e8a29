package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus is the order lifecycle status. The numeric values are part of
// the stored data and must not be reordered.
type OrderStatus int

const (
	OrderActive   OrderStatus = 0
	OrderPaid     OrderStatus = 1
	OrderShipped  OrderStatus = 2
	OrderDone     OrderStatus = 3
	OrderCanceled OrderStatus = 4
)

type Order struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	StoreID          uuid.UUID      `json:"store_id" gorm:"type:uuid;not null;index"`
	OrderNumber      int            `json:"order_number" gorm:"not null"` // sequence per store per day
	InvoiceNumber    string         `json:"invoice_number"`
	Status           OrderStatus    `json:"status" gorm:"not null;default:0"`
	ActiveUpdated    *time.Time     `json:"active_updated"`
	PaidUpdated      *time.Time     `json:"paid_updated"`
	SentUpdated      *time.Time     `json:"sent_updated"`
	DoneUpdated      *time.Time     `json:"done_updated"`
	CanceledUpdated  *time.Time     `json:"canceled_updated"`
	CourierPrice     int64          `json:"courier_price"`
	DropshipCustomer *string        `json:"dropship_customer"`
	Items            []OrderItem    `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderCancelOption struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderCancelReason struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	OrderID             uint      `json:"order_id" gorm:"not null;index"`
	OrderCancelOptionID uint      `json:"order_cancel_option_id"`
	Description         string    `json:"description" gorm:"type:text"`
	CreatedAt           time.Time `json:"created_at"`
}
