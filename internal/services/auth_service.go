package services

import (
	"order_manager/internal/models"
	"strings"
	"time"

	"go.uber.org/zap"
)

type AuthService interface {
	SendLoginOTP(userID uint) (*models.OTPToken, error)
	CanLogin(user *models.User) bool
}

type authService struct {
	userService     UserService
	otpService      OTPService
	whatsappService WhatsAppService
	configService   ConfigService
	cooldowns       CooldownStore
	cooldownTTL     time.Duration
	defaultTemplate string
	logger          *zap.Logger
}

func NewAuthService(
	userService UserService,
	otpService OTPService,
	whatsappService WhatsAppService,
	configService ConfigService,
	cooldowns CooldownStore,
	cooldownTTL time.Duration,
	defaultTemplate string,
	logger *zap.Logger,
) AuthService {
	return &authService{
		userService:     userService,
		otpService:      otpService,
		whatsappService: whatsappService,
		configService:   configService,
		cooldowns:       cooldowns,
		cooldownTTL:     cooldownTTL,
		defaultTemplate: defaultTemplate,
		logger:          logger,
	}
}

// SendLoginOTP sends the login code over WhatsApp. Unlike registration the
// code is re-sent even when a previous token is still valid, subject to the
// cooldown.
func (s *authService) SendLoginOTP(userID uint) (*models.OTPToken, error) {
	user, err := s.userService.GetByID(userID)
	if err != nil {
		return nil, err
	}

	token, _, err := s.otpService.GetLoginToken(user.ID)
	if err != nil {
		return nil, err
	}

	inCooldown, err := s.cooldowns.InOTPCooldown(string(models.EventLogin), user.ID)
	if err != nil {
		s.logger.Warn("otp cooldown check failed", zap.Error(err))
	}
	if inCooldown {
		return token, nil
	}

	template, err := s.configService.Get(ConfigKeyLoginTemplate, s.defaultTemplate)
	if err != nil {
		return nil, err
	}
	message := strings.ReplaceAll(template, "{code}", token.Code)

	response, err := s.whatsappService.SendMessage(user.WhatsAppNumber, message)
	if err != nil {
		s.logger.Warn("failed to send login message",
			zap.String("whatsapp", user.WhatsAppNumber), zap.Error(err))
	}

	if err := s.otpService.MarkSent(token, s.otpService.ParseSendStatus(response)); err != nil {
		return nil, err
	}
	if err := s.cooldowns.SetOTPCooldown(string(models.EventLogin), user.ID, s.cooldownTTL); err != nil {
		s.logger.Warn("failed to set otp cooldown", zap.Error(err))
	}

	return token, nil
}

func (s *authService) CanLogin(user *models.User) bool {
	return user != nil && user.IsActive
}
