package handlers

import (
	"errors"
	"net/http"
	"order_manager/internal/models"
	"order_manager/internal/services"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderHandler struct {
	orderService   services.OrderService
	productService services.ProductService
	storeService   services.StoreService
}

func NewOrderHandler(
	orderService services.OrderService,
	productService services.ProductService,
	storeService services.StoreService,
) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		productService: productService,
		storeService:   storeService,
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		StoreID          uuid.UUID                 `json:"store_id" binding:"required"`
		OrderType        string                    `json:"order_type"`
		CourierPrice     int64                     `json:"courier_price"`
		DropshipCustomer *string                   `json:"dropship_customer"`
		Items            []services.OrderItemInput `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	store, err := h.storeService.GetByID(req.StoreID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	orderNumber, err := h.orderService.CreateOrderNumber(store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	invoiceNumber, err := h.orderService.CreateInvoiceNumber(store, orderNumber, req.OrderType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	order := &models.Order{
		StoreID:          store.ID,
		OrderNumber:      orderNumber,
		InvoiceNumber:    invoiceNumber,
		Status:           models.OrderActive,
		CourierPrice:     req.CourierPrice,
		DropshipCustomer: req.DropshipCustomer,
	}
	if err := h.orderService.Create(order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.orderService.CreateOrderItems(order, req.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(id)
	if err != nil {
		h.respondLookupError(c, err, "Order not found")
		return
	}

	items, err := h.orderService.GetItemsByOrder(order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
}

func (h *OrderHandler) BatchUpdateStatus(c *gin.Context) {
	var req struct {
		OrderIDs []uint             `json:"order_ids" binding:"required,min=1"`
		Status   models.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	results, err := h.orderService.BatchUpdateStatus(req.OrderIDs, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *OrderHandler) BatchRemove(c *gin.Context) {
	var req struct {
		OrderIDs []uint `json:"order_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	deleted, err := h.orderService.BatchRemove(req.OrderIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *OrderHandler) UpdateOrderItems(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(id)
	if err != nil {
		h.respondLookupError(c, err, "Order not found")
		return
	}

	var req struct {
		Items []services.OrderItemInput `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderService.UpdateOrderItems(order, req.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items, err := h.orderService.GetItemsByOrder(order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *OrderHandler) BatchCreateCancelReason(c *gin.Context) {
	var req struct {
		OrderIDs    []uint `json:"order_ids" binding:"required,min=1"`
		OptionID    uint   `json:"option_id" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderService.BatchCreateCancelReason(req.OrderIDs, req.OptionID, req.Description); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (h *OrderHandler) GetTotalWeight(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	weight, err := h.orderService.GetTotalWeight(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_weight": weight})
}

func (h *OrderHandler) GetCourierPrice(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	price, err := h.orderService.GetCourierPrice(id)
	if err != nil {
		h.respondLookupError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"courier_price": price})
}

// GetReportSummary returns the store's order count, net revenue, product
// count and products sold, optionally filtered to one calendar month.
func (h *OrderHandler) GetReportSummary(c *gin.Context) {
	storeID, err := uuid.Parse(c.Query("store_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store_id"})
		return
	}

	var month *int
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
			return
		}
		month = &m
	}

	totalOrder, err := h.orderService.GetTotalOrder(storeID, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalPayment, err := h.orderService.GetTotalPayment(storeID, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalProduct, err := h.productService.GetTotalProduct(storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalSold, err := h.productService.GetTotalProductSold(storeID, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_order":        totalOrder,
		"total_payment":      totalPayment,
		"total_product":      totalProduct,
		"total_product_sold": totalSold,
	})
}

func (h *OrderHandler) orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

func (h *OrderHandler) respondLookupError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
