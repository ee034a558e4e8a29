package repository

import (
	"order_manager/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetByStore(storeID uuid.UUID) ([]models.Product, error)
	Update(product *models.Product) error
	CountByStore(storeID uuid.UUID) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByStore(storeID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("store_id = ? AND is_deleted = ?", storeID, false).Find(&products).Error
	return products, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) CountByStore(storeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("store_id = ? AND is_deleted = ?", storeID, false).
		Count(&count).Error
	return count, err
}
