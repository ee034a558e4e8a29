package repository

import (
	"order_manager/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByIDs(ids []uint) ([]models.Order, error)
	GetByStore(storeID uuid.UUID) ([]models.Order, error)
	Update(order *models.Order) error
	DeleteByIDs(ids []uint) (int64, error)
	CountByStore(storeID uuid.UUID, month *int) (int64, error)
	LastOrderNumber(storeID uuid.UUID, day time.Time) (int, error)
	CreateCancelReason(reason *models.OrderCancelReason) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByIDs(ids []uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("id IN ?", ids).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStore(storeID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("store_id = ?", storeID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) DeleteByIDs(ids []uint) (int64, error) {
	result := r.db.Where("id IN ?", ids).Delete(&models.Order{})
	return result.RowsAffected, result.Error
}

func (r *orderRepository) CountByStore(storeID uuid.UUID, month *int) (int64, error) {
	query := r.db.Model(&models.Order{}).Where("store_id = ?", storeID)
	if month != nil {
		query = query.Where("EXTRACT(MONTH FROM created_at) = ?", *month)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

// LastOrderNumber returns the highest order number issued for the store on the
// given calendar day, or 0 when no orders exist yet.
func (r *orderRepository) LastOrderNumber(storeID uuid.UUID, day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var last int
	err := r.db.Model(&models.Order{}).
		Where("store_id = ? AND created_at >= ? AND created_at < ?", storeID, start, end).
		Select("COALESCE(MAX(order_number), 0)").
		Scan(&last).Error
	return last, err
}

func (r *orderRepository) CreateCancelReason(reason *models.OrderCancelReason) error {
	return r.db.Create(reason).Error
}
