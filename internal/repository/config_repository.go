package repository

import (
	"errors"
	"order_manager/internal/models"

	"gorm.io/gorm"
)

type ConfigRepository interface {
	GetByKey(key string) (*models.Config, error)
	Create(config *models.Config) error
	Update(config *models.Config) error
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

// GetByKey returns nil without error when the key does not exist.
func (r *configRepository) GetByKey(key string) (*models.Config, error) {
	var config models.Config
	err := r.db.Where("key = ?", key).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *configRepository) Create(config *models.Config) error {
	return r.db.Create(config).Error
}

func (r *configRepository) Update(config *models.Config) error {
	return r.db.Save(config).Error
}
