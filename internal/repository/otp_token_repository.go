package repository

import (
	"errors"
	"order_manager/internal/models"

	"gorm.io/gorm"
)

type OTPTokenRepository interface {
	Create(token *models.OTPToken) error
	GetUnverifiedByEvent(userID uint, event models.OTPEvent) ([]models.OTPToken, error)
	GetUnverifiedByCode(userID uint, code string) (*models.OTPToken, error)
	Update(token *models.OTPToken) error
}

type otpTokenRepository struct {
	db *gorm.DB
}

func NewOTPTokenRepository(db *gorm.DB) OTPTokenRepository {
	return &otpTokenRepository{db: db}
}

func (r *otpTokenRepository) Create(token *models.OTPToken) error {
	return r.db.Create(token).Error
}

func (r *otpTokenRepository) GetUnverifiedByEvent(userID uint, event models.OTPEvent) ([]models.OTPToken, error) {
	var tokens []models.OTPToken
	err := r.db.
		Where("user_id = ? AND event = ? AND verified_at IS NULL", userID, event).
		Order("created_at DESC").
		Find(&tokens).Error
	return tokens, err
}

// GetUnverifiedByCode returns nil without error when no matching token exists.
func (r *otpTokenRepository) GetUnverifiedByCode(userID uint, code string) (*models.OTPToken, error) {
	var token models.OTPToken
	err := r.db.
		Where("user_id = ? AND code = ? AND verified_at IS NULL", userID, code).
		First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *otpTokenRepository) Update(token *models.OTPToken) error {
	return r.db.Save(token).Error
}
