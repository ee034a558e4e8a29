package services

import (
	"testing"

	"order_manager/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTotalProductExcludesDeleted(t *testing.T) {
	s := newFakeState()
	storeID := uuid.New()
	s.addProduct(models.Product{ID: 1, StoreID: storeID})
	s.addProduct(models.Product{ID: 2, StoreID: storeID, IsDeleted: true})
	s.addProduct(models.Product{ID: 3, StoreID: uuid.New()})

	svc := NewProductService(&fakeProductRepo{s: s}, &fakeOrderItemRepo{s: s})

	total, err := svc.GetTotalProduct(storeID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestGetTotalProductSold(t *testing.T) {
	s := newFakeState()
	storeID := uuid.New()
	march := testNow
	april := testNow.AddDate(0, 1, 0)

	s.addProduct(models.Product{ID: 1, StoreID: storeID})
	s.addOrder(models.Order{ID: 10, StoreID: storeID, Status: models.OrderDone, DoneUpdated: &march})
	s.addItem(models.OrderItem{OrderID: 10, ProductID: 1, Qty: 3})
	s.addOrder(models.Order{ID: 11, StoreID: storeID, Status: models.OrderDone, DoneUpdated: &april})
	s.addItem(models.OrderItem{OrderID: 11, ProductID: 1, Qty: 2})
	// active orders do not count as sold
	s.addOrder(models.Order{ID: 12, StoreID: storeID, Status: models.OrderActive})
	s.addItem(models.OrderItem{OrderID: 12, ProductID: 1, Qty: 9})

	svc := NewProductService(&fakeProductRepo{s: s}, &fakeOrderItemRepo{s: s})

	total, err := svc.GetTotalProductSold(storeID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	monthOfMarch := 3
	total, err = svc.GetTotalProductSold(storeID, &monthOfMarch)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
