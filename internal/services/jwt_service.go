package services

import (
	"order_manager/internal/models"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type JWTService interface {
	CreateTokenForUser(user *models.User) (*TokenPair, error)
	ConfirmToken(whatsapp, code string) (bool, error)
}

type jwtService struct {
	userService UserService
	otpService  OTPService
	secret      []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

func NewJWTService(userService UserService, otpService OTPService, secret string, accessTTL, refreshTTL time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{
		userService: userService,
		otpService:  otpService,
		secret:      []byte(secret),
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateTokenForUser issues an HS256 access/refresh pair for the user.
func (s *jwtService) CreateTokenForUser(user *models.User) (*TokenPair, error) {
	access, err := s.signToken(user, "access", s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, "refresh", s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *jwtService) signToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"whatsapp": user.WhatsAppNumber,
		"type":     tokenType,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ConfirmToken validates a login code for the WhatsApp number.
func (s *jwtService) ConfirmToken(whatsapp, code string) (bool, error) {
	user, err := s.userService.GetByWhatsAppNumber(whatsapp)
	if err != nil {
		return false, err
	}
	if user == nil {
		s.logger.Warn("whatsapp number not found", zap.String("whatsapp", whatsapp))
		return false, nil
	}

	valid, err := s.otpService.IsTokenValid(user, code)
	if err != nil {
		return false, err
	}
	if !valid {
		s.logger.Warn("invalid token",
			zap.String("whatsapp", whatsapp), zap.String("code", code))
	}
	return valid, nil
}
