package services

import (
	"fmt"
	"order_manager/internal/models"
	"order_manager/internal/repository"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// OrderItemInput is a posted line item, keyed by product id. Callers must
// de-duplicate product ids before submitting.
type OrderItemInput struct {
	ProductID uint `json:"id" binding:"required"`
	Qty       int  `json:"qty" binding:"required,gt=0"`
}

type OrderService interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByStore(storeID uuid.UUID) ([]models.Order, error)
	GetItemsByOrder(orderID uint) ([]*models.OrderItem, error)
	GetDropshipCustomer(orderID uint) (*string, error)

	BatchUpdateStatus(orderIDs []uint, status models.OrderStatus) (map[string]bool, error)
	BatchRemove(orderIDs []uint) (int64, error)
	BatchCreateCancelReason(orderIDs []uint, optionID uint, description string) error

	CreateOrderItems(order *models.Order, items []OrderItemInput) error
	UpdateOrderItems(order *models.Order, items []OrderItemInput) error

	CreateOrderNumber(store *models.Store) (int, error)
	CreateInvoiceNumber(store *models.Store, orderNumber int, orderType string) (string, error)

	GetTotalOrder(storeID uuid.UUID, month *int) (int64, error)
	GetTotalPayment(storeID uuid.UUID, month *int) (float64, error)
	GetTotalWeight(orderID uint) (string, error)
	GetCourierPrice(orderID uint) (string, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	productRepo   repository.ProductRepository
	now           func() time.Time
}

func NewOrderService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		now:           time.Now,
	}
}

// statusDateFields maps each lifecycle status to its status-reached timestamp
// field. The timestamp is (re)stamped on every transition into the status.
var statusDateFields = map[models.OrderStatus]func(*models.Order, time.Time){
	models.OrderActive:   func(o *models.Order, t time.Time) { o.ActiveUpdated = &t },
	models.OrderPaid:     func(o *models.Order, t time.Time) { o.PaidUpdated = &t },
	models.OrderShipped:  func(o *models.Order, t time.Time) { o.SentUpdated = &t },
	models.OrderDone:     func(o *models.Order, t time.Time) { o.DoneUpdated = &t },
	models.OrderCanceled: func(o *models.Order, t time.Time) { o.CanceledUpdated = &t },
}

func (s *orderService) Create(order *models.Order) error {
	return s.orderRepo.Create(order)
}

func (s *orderService) GetByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetByStore(storeID uuid.UUID) ([]models.Order, error) {
	return s.orderRepo.GetByStore(storeID)
}

func (s *orderService) GetItemsByOrder(orderID uint) ([]*models.OrderItem, error) {
	return s.orderItemRepo.GetByOrderID(orderID)
}

func (s *orderService) GetDropshipCustomer(orderID uint) (*string, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	return order.DropshipCustomer, nil
}

// BatchUpdateStatus moves each order to the new status and reports the outcome
// per order id. Orders are processed independently and sequentially; product
// rows may be shared between orders in the same batch.
//
// Canceling a non-canceled order releases its reserved stock and always
// succeeds. Leaving the canceled status re-acquires stock and fails for the
// whole order when any item lacks stock; every other transition has no stock
// effect. An order that fails keeps its previous status.
func (s *orderService) BatchUpdateStatus(orderIDs []uint, status models.OrderStatus) (map[string]bool, error) {
	orders, err := s.orderRepo.GetByIDs(orderIDs)
	if err != nil {
		return nil, err
	}

	results := make(map[string]bool, len(orders))

	for i := range orders {
		order := &orders[i]
		key := strconv.FormatUint(uint64(order.ID), 10)

		switch {
		case status == models.OrderCanceled && order.Status != models.OrderCanceled:
			if err := s.releaseOrderStock(order); err != nil {
				results[key] = false
				continue
			}
		case order.Status == models.OrderCanceled && status != models.OrderCanceled:
			acquired, err := s.acquireOrderStock(order)
			if err != nil || !acquired {
				results[key] = false
				continue
			}
		}

		if setDate, ok := statusDateFields[status]; ok {
			setDate(order, s.now())
		}
		order.Status = status
		if err := s.orderRepo.Update(order); err != nil {
			results[key] = false
			continue
		}
		results[key] = true
	}

	return results, nil
}

// releaseOrderStock returns every item's qty to its product's on-hand stock.
func (s *orderService) releaseOrderStock(order *models.Order) error {
	items, err := s.orderItemRepo.GetByOrderID(order.ID)
	if err != nil {
		return err
	}

	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		product.Quantity += item.Qty
		if err := s.productRepo.Update(product); err != nil {
			return err
		}
	}
	return nil
}

// acquireOrderStock takes every item's qty back out of product stock. All
// items are checked before any product is saved, so a shortage on a later
// item cannot leave a partial reservation behind.
func (s *orderService) acquireOrderStock(order *models.Order) (bool, error) {
	items, err := s.orderItemRepo.GetByOrderID(order.ID)
	if err != nil {
		return false, err
	}

	reserved := make([]*models.Product, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return false, err
		}
		if product.Quantity < item.Qty {
			return false, nil
		}
		product.Quantity -= item.Qty
		reserved = append(reserved, product)
	}

	for _, product := range reserved {
		if err := s.productRepo.Update(product); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (s *orderService) BatchRemove(orderIDs []uint) (int64, error) {
	return s.orderRepo.DeleteByIDs(orderIDs)
}

func (s *orderService) BatchCreateCancelReason(orderIDs []uint, optionID uint, description string) error {
	for _, orderID := range orderIDs {
		reason := &models.OrderCancelReason{
			OrderID:             orderID,
			OrderCancelOptionID: optionID,
			Description:         description,
		}
		if err := s.orderRepo.CreateCancelReason(reason); err != nil {
			return err
		}
	}
	return nil
}

// CreateOrderItems creates one item per input, snapshotting the product's
// current selling price and consuming its stock.
func (s *orderService) CreateOrderItems(order *models.Order, items []OrderItemInput) error {
	for _, in := range items {
		product, err := s.productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}

		item := &models.OrderItem{
			OrderID:   order.ID,
			ProductID: product.ID,
			Qty:       in.Qty,
			Price:     product.SellingPrice,
		}
		if err := s.orderItemRepo.Create(item); err != nil {
			return err
		}

		product.Quantity -= in.Qty
		if err := s.productRepo.Update(product); err != nil {
			return err
		}
	}
	return nil
}

// UpdateOrderItems reconciles the order's items against the posted ones:
// quantity changes adjust product stock by the difference, items missing from
// the posted set are removed and their stock released, and posted products
// not yet on the order are added. No stock sufficiency check is performed.
func (s *orderService) UpdateOrderItems(order *models.Order, items []OrderItemInput) error {
	desired := make(map[uint]int, len(items))
	for _, in := range items {
		desired[in.ProductID] = in.Qty
	}

	current, err := s.orderItemRepo.GetByOrderID(order.ID)
	if err != nil {
		return err
	}

	existing := make(map[uint]bool, len(current))

	for _, item := range current {
		existing[item.ProductID] = true

		qty, posted := desired[item.ProductID]
		if posted {
			if qty == item.Qty {
				continue
			}

			// positive diff releases stock, negative consumes it
			diff := item.Qty - qty
			product, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			product.Quantity += diff
			if err := s.productRepo.Update(product); err != nil {
				return err
			}

			item.Qty = qty
			if err := s.orderItemRepo.Update(item); err != nil {
				return err
			}
			continue
		}

		// no longer posted: release the full qty and drop the item
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		product.Quantity += item.Qty
		if err := s.productRepo.Update(product); err != nil {
			return err
		}
		if err := s.orderItemRepo.Delete(item.ID); err != nil {
			return err
		}
	}

	for _, in := range items {
		if existing[in.ProductID] {
			continue
		}

		product, err := s.productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		product.Quantity -= in.Qty
		if err := s.productRepo.Update(product); err != nil {
			return err
		}

		item := &models.OrderItem{
			OrderID:   order.ID,
			ProductID: product.ID,
			Qty:       in.Qty,
			Price:     product.SellingPrice,
		}
		if err := s.orderItemRepo.Create(item); err != nil {
			return err
		}
	}

	return nil
}

// CreateOrderNumber returns the next order number for the store today,
// starting from 1. Two concurrent calls can hand out the same number; the
// unique constraint on the invoice is the backstop.
func (s *orderService) CreateOrderNumber(store *models.Store) (int, error) {
	last, err := s.orderRepo.LastOrderNumber(store.ID, s.now())
	if err != nil {
		return 0, err
	}
	if last > 0 {
		return last + 1, nil
	}
	return 1, nil
}

// CreateInvoiceNumber builds "TT-UIDYYMMDD-NNNN": order type tag (BR brand,
// NB non-brand), first 4 hex chars of the store id, date, and the order
// number padded to 4 digits. Pass orderNumber 0 to allocate the next one.
func (s *orderService) CreateInvoiceNumber(store *models.Store, orderNumber int, orderType string) (string, error) {
	if orderType == "" {
		orderType = "NB"
	}

	uid := store.ID.String()[:4]
	dt := s.now().Format("060102")

	if orderNumber == 0 {
		next, err := s.CreateOrderNumber(store)
		if err != nil {
			return "", err
		}
		orderNumber = next
	}

	number := strconv.Itoa(orderNumber)
	if orderNumber < 1000 {
		padded := strconv.Itoa(10000 + orderNumber)
		number = padded[len(padded)-4:]
	}

	return fmt.Sprintf("%s-%s%s-%s", orderType, uid, dt, number), nil
}

func (s *orderService) GetTotalOrder(storeID uuid.UUID, month *int) (int64, error) {
	return s.orderRepo.CountByStore(storeID, month)
}

// GetTotalPayment returns net revenue over completed orders: per-order
// revenue (qty * snapshot price) minus per-order cost (qty * product cost).
func (s *orderService) GetTotalPayment(storeID uuid.UUID, month *int) (float64, error) {
	cost, err := s.orderItemRepo.CostTotalsByOrder(storeID, month)
	if err != nil {
		return 0, err
	}
	revenue, err := s.orderItemRepo.RevenueTotalsByOrder(storeID, month)
	if err != nil {
		return 0, err
	}

	// The two aggregates are paired positionally; the repository orders both
	// by order id to keep the rows aligned.
	var total float64
	for i := range revenue {
		total += revenue[i].Total - cost[i].Total
	}
	return total, nil
}

// GetTotalWeight returns the order's shipped weight, in kilograms once it
// reaches 1000 grams.
func (s *orderService) GetTotalWeight(orderID uint) (string, error) {
	grams, err := s.orderItemRepo.TotalWeight(orderID)
	if err != nil {
		return "", err
	}

	if grams >= 1000 {
		return fmt.Sprintf("%g kg", float64(grams)/1000), nil
	}
	return fmt.Sprintf("%d gr", grams), nil
}

func (s *orderService) GetCourierPrice(orderID uint) (string, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return "", err
	}
	return FormatRupiah(order.CourierPrice), nil
}
