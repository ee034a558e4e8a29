package repository

import (
	"order_manager/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderTotal is a per-order aggregate row.
type OrderTotal struct {
	OrderID uint    `json:"order_id"`
	Total   float64 `json:"total"`
}

type OrderItemRepository interface {
	Create(item *models.OrderItem) error
	GetByID(id uint) (*models.OrderItem, error)
	GetByOrderID(orderID uint) ([]*models.OrderItem, error)
	Update(item *models.OrderItem) error
	Delete(id uint) error
	CostTotalsByOrder(storeID uuid.UUID, month *int) ([]OrderTotal, error)
	RevenueTotalsByOrder(storeID uuid.UUID, month *int) ([]OrderTotal, error)
	TotalWeight(orderID uint) (int, error)
	TotalQtySold(storeID uuid.UUID, month *int) (int64, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) Create(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

func (r *orderItemRepository) GetByID(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]*models.OrderItem, error) {
	var items []*models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderItemRepository) Update(item *models.OrderItem) error {
	return r.db.Save(item).Error
}

func (r *orderItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.OrderItem{}, id).Error
}

func (r *orderItemRepository) doneItemsQuery(storeID uuid.UUID, month *int) *gorm.DB {
	query := r.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.store_id = ? AND orders.status = ?", storeID, models.OrderDone)
	if month != nil {
		query = query.Where("EXTRACT(MONTH FROM orders.done_updated) = ?", *month)
	}
	return query
}

// CostTotalsByOrder sums qty * product cost price per completed order. Rows are
// ordered by order id so they can be paired positionally with
// RevenueTotalsByOrder.
func (r *orderItemRepository) CostTotalsByOrder(storeID uuid.UUID, month *int) ([]OrderTotal, error) {
	var totals []OrderTotal
	err := r.doneItemsQuery(storeID, month).
		Joins("JOIN products ON products.id = order_items.product_id").
		Select("order_items.order_id AS order_id, SUM(order_items.qty * products.price) AS total").
		Group("order_items.order_id").
		Order("order_items.order_id").
		Scan(&totals).Error
	return totals, err
}

// RevenueTotalsByOrder sums qty * snapshot selling price per completed order,
// ordered by order id.
func (r *orderItemRepository) RevenueTotalsByOrder(storeID uuid.UUID, month *int) ([]OrderTotal, error) {
	var totals []OrderTotal
	err := r.doneItemsQuery(storeID, month).
		Select("order_items.order_id AS order_id, SUM(order_items.qty * order_items.price) AS total").
		Group("order_items.order_id").
		Order("order_items.order_id").
		Scan(&totals).Error
	return totals, err
}

func (r *orderItemRepository) TotalWeight(orderID uint) (int, error) {
	var grams int
	err := r.db.Model(&models.OrderItem{}).
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Select("COALESCE(SUM(order_items.qty * products.weight), 0)").
		Scan(&grams).Error
	return grams, err
}

func (r *orderItemRepository) TotalQtySold(storeID uuid.UUID, month *int) (int64, error) {
	var qty int64
	err := r.doneItemsQuery(storeID, month).
		Select("COALESCE(SUM(order_items.qty), 0)").
		Scan(&qty).Error
	return qty, err
}
