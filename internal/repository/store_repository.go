package repository

import (
	"order_manager/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *models.Store) error
	GetByID(id uuid.UUID) (*models.Store, error)
	GetByOwner(ownerID uint) (*models.Store, error)
	Update(store *models.Store) error
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *models.Store) error {
	return r.db.Create(store).Error
}

func (r *storeRepository) GetByID(id uuid.UUID) (*models.Store, error) {
	var store models.Store
	err := r.db.Where("id = ?", id).First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) GetByOwner(ownerID uint) (*models.Store, error) {
	var store models.Store
	err := r.db.Where("owner_id = ?", ownerID).First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) Update(store *models.Store) error {
	return r.db.Save(store).Error
}
