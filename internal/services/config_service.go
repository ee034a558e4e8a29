package services

import (
	"order_manager/internal/models"
	"order_manager/internal/repository"
)

type ConfigService interface {
	Get(key, defaultValue string) (string, error)
	Set(key, value, description string) (*models.Config, error)
	SetIfNone(key, value, description string) (*models.Config, error)
}

type configService struct {
	configRepo repository.ConfigRepository
}

func NewConfigService(configRepo repository.ConfigRepository) ConfigService {
	return &configService{configRepo: configRepo}
}

func (s *configService) Get(key, defaultValue string) (string, error) {
	config, err := s.configRepo.GetByKey(key)
	if err != nil {
		return "", err
	}
	if config == nil {
		return defaultValue, nil
	}
	return config.Value, nil
}

// Set upserts the key. A non-empty description replaces the stored one.
func (s *configService) Set(key, value, description string) (*models.Config, error) {
	config, err := s.configRepo.GetByKey(key)
	if err != nil {
		return nil, err
	}

	if config == nil {
		config = &models.Config{Key: key, Value: value, Description: description}
		return config, s.configRepo.Create(config)
	}

	config.Value = value
	if description != "" {
		config.Description = description
	}
	return config, s.configRepo.Update(config)
}

// SetIfNone creates the key only when it does not exist yet.
func (s *configService) SetIfNone(key, value, description string) (*models.Config, error) {
	config, err := s.configRepo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if config != nil {
		return config, nil
	}

	config = &models.Config{Key: key, Value: value, Description: description}
	return config, s.configRepo.Create(config)
}
