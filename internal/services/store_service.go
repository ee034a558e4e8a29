package services

import (
	"order_manager/internal/models"
	"order_manager/internal/repository"

	"github.com/google/uuid"
)

type StoreService interface {
	Create(store *models.Store) error
	GetByID(id uuid.UUID) (*models.Store, error)
	GetByOwner(ownerID uint) (*models.Store, error)
}

type storeService struct {
	storeRepo repository.StoreRepository
}

func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

func (s *storeService) Create(store *models.Store) error {
	return s.storeRepo.Create(store)
}

func (s *storeService) GetByID(id uuid.UUID) (*models.Store, error) {
	return s.storeRepo.GetByID(id)
}

func (s *storeService) GetByOwner(ownerID uint) (*models.Store, error) {
	return s.storeRepo.GetByOwner(ownerID)
}
