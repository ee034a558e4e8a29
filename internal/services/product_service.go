package services

import (
	"order_manager/internal/models"
	"order_manager/internal/repository"

	"github.com/google/uuid"
)

type ProductService interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetByStore(storeID uuid.UUID) ([]models.Product, error)
	GetTotalProduct(storeID uuid.UUID) (int64, error)
	GetTotalProductSold(storeID uuid.UUID, month *int) (int64, error)
}

type productService struct {
	productRepo   repository.ProductRepository
	orderItemRepo repository.OrderItemRepository
}

func NewProductService(productRepo repository.ProductRepository, orderItemRepo repository.OrderItemRepository) ProductService {
	return &productService{productRepo: productRepo, orderItemRepo: orderItemRepo}
}

func (s *productService) Create(product *models.Product) error {
	return s.productRepo.Create(product)
}

func (s *productService) GetByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *productService) GetByStore(storeID uuid.UUID) ([]models.Product, error) {
	return s.productRepo.GetByStore(storeID)
}

// GetTotalProduct counts the store's products, excluding soft-deleted ones.
func (s *productService) GetTotalProduct(storeID uuid.UUID) (int64, error) {
	return s.productRepo.CountByStore(storeID)
}

// GetTotalProductSold sums item quantities over completed orders.
func (s *productService) GetTotalProductSold(storeID uuid.UUID, month *int) (int64, error) {
	return s.orderItemRepo.TotalQtySold(storeID, month)
}
