package services

import (
	"crypto/rand"
	"encoding/base32"
	"order_manager/internal/models"
	"order_manager/internal/repository"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"go.uber.org/zap"
)

// Token freshness flags returned by GetRegistrationToken/GetLoginToken.
const (
	FlagOld = "OLD"
	FlagNew = "NEW"
)

type OTPService interface {
	GetValidUnverifiedToken(userID uint, event models.OTPEvent) (*models.OTPToken, error)
	CreateNewToken(userID uint, event models.OTPEvent) (*models.OTPToken, error)
	GetRegistrationToken(userID uint) (*models.OTPToken, string, error)
	GetLoginToken(userID uint) (*models.OTPToken, string, error)
	IsTokenValid(user *models.User, code string) (bool, error)
	MarkSent(token *models.OTPToken, status models.OTPSentStatus) error
	ParseSendStatus(response string) models.OTPSentStatus
}

type otpService struct {
	otpRepo repository.OTPTokenRepository
	digits  int
	expire  int // seconds
	logger  *zap.Logger
	now     func() time.Time
}

func NewOTPService(otpRepo repository.OTPTokenRepository, digits, expire int, logger *zap.Logger) OTPService {
	return &otpService{
		otpRepo: otpRepo,
		digits:  digits,
		expire:  expire,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *otpService) validateOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    uint(s.expire),
		Digits:    otp.Digits(s.digits),
		Algorithm: otp.AlgorithmSHA1,
	}
}

// GetValidUnverifiedToken returns the newest unverified token still inside
// its validity window, or nil when none exists.
func (s *otpService) GetValidUnverifiedToken(userID uint, event models.OTPEvent) (*models.OTPToken, error) {
	tokens, err := s.otpRepo.GetUnverifiedByEvent(userID, event)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for i := range tokens {
		token := &tokens[i]
		if now.Sub(token.CreatedAt).Seconds() <= float64(token.Interval) {
			return token, nil
		}
	}
	return nil, nil
}

func (s *otpService) CreateNewToken(userID uint, event models.OTPEvent) (*models.OTPToken, error) {
	now := s.now()
	secret, err := randomSecret()
	if err != nil {
		return nil, err
	}

	code, err := totp.GenerateCodeCustom(secret, now, s.validateOpts())
	if err != nil {
		return nil, err
	}

	token := &models.OTPToken{
		UserID:     userID,
		Secret:     secret,
		Code:       code,
		Interval:   s.expire,
		Event:      event,
		SentStatus: models.SentUnset,
		CreatedAt:  now,
	}
	if err := s.otpRepo.Create(token); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *otpService) GetRegistrationToken(userID uint) (*models.OTPToken, string, error) {
	return s.getOrCreateToken(userID, models.EventRegistration)
}

func (s *otpService) GetLoginToken(userID uint) (*models.OTPToken, string, error) {
	return s.getOrCreateToken(userID, models.EventLogin)
}

func (s *otpService) getOrCreateToken(userID uint, event models.OTPEvent) (*models.OTPToken, string, error) {
	token, err := s.GetValidUnverifiedToken(userID, event)
	if err != nil {
		return nil, "", err
	}
	if token != nil {
		return token, FlagOld, nil
	}

	token, err = s.CreateNewToken(userID, event)
	if err != nil {
		return nil, "", err
	}
	return token, FlagNew, nil
}

// IsTokenValid checks the code against the user's unverified tokens and marks
// the token verified on success. The TOTP is verified for the token's
// creation time.
func (s *otpService) IsTokenValid(user *models.User, code string) (bool, error) {
	token, err := s.otpRepo.GetUnverifiedByCode(user.ID, code)
	if err != nil {
		return false, err
	}
	if token == nil {
		s.logger.Warn("otp token not found or already verified",
			zap.String("whatsapp", user.WhatsAppNumber),
			zap.String("code", code))
		return false, nil
	}

	valid, err := totp.ValidateCustom(code, token.Secret, token.CreatedAt, s.validateOpts())
	if err != nil {
		return false, err
	}
	if !valid {
		s.logger.Warn("otp code is not valid", zap.String("code", code))
		return false, nil
	}

	now := s.now()
	token.VerifiedAt = &now
	return true, s.otpRepo.Update(token)
}

func (s *otpService) MarkSent(token *models.OTPToken, status models.OTPSentStatus) error {
	now := s.now()
	token.SentAt = &now
	token.SentStatus = status
	return s.otpRepo.Update(token)
}

// ParseSendStatus maps the gateway's free-form response string to a delivery
// status.
func (s *otpService) ParseSendStatus(response string) models.OTPSentStatus {
	response = strings.ToLower(response)

	switch {
	case strings.Contains(response, "success"):
		return models.SentSuccess
	case strings.Contains(response, "phone_offline"):
		return models.SentOffline
	case strings.Contains(response, "not found"):
		return models.SentNotFound
	}
	return models.SentUnset
}

func randomSecret() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}
