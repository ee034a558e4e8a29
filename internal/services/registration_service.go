package services

import (
	"order_manager/internal/models"
	"order_manager/internal/repository"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Config keys for the OTP message templates; "{code}" is replaced with the
// generated code. Seeded by migrations, overridable at runtime.
const (
	ConfigKeyRegistrationTemplate = "otp.registration_template"
	ConfigKeyLoginTemplate        = "otp.login_template"
)

// CooldownStore throttles OTP sends per user and event.
type CooldownStore interface {
	SetOTPCooldown(event string, userID uint, ttl time.Duration) error
	InOTPCooldown(event string, userID uint) (bool, error)
}

type RegistrationInput struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	WhatsApp  string `json:"whatsapp" binding:"required"`
	StoreName string `json:"store_name" binding:"required"`
}

type RegistrationService interface {
	Register(input RegistrationInput) (*models.User, error)
	SendActivation(userID uint) (*models.OTPToken, error)
	ConfirmToken(whatsapp, code string) (bool, error)
	SplitFullName(fullName string) (string, string)
}

type registrationService struct {
	userService      UserService
	storeRepo        repository.StoreRepository
	otpService       OTPService
	whatsappService  WhatsAppService
	configService    ConfigService
	cooldowns        CooldownStore
	cooldownTTL      time.Duration
	standardPassword string
	defaultTemplate  string
	logger           *zap.Logger
}

func NewRegistrationService(
	userService UserService,
	storeRepo repository.StoreRepository,
	otpService OTPService,
	whatsappService WhatsAppService,
	configService ConfigService,
	cooldowns CooldownStore,
	cooldownTTL time.Duration,
	standardPassword string,
	defaultTemplate string,
	logger *zap.Logger,
) RegistrationService {
	return &registrationService{
		userService:      userService,
		storeRepo:        storeRepo,
		otpService:       otpService,
		whatsappService:  whatsappService,
		configService:    configService,
		cooldowns:        cooldowns,
		cooldownTTL:      cooldownTTL,
		standardPassword: standardPassword,
		defaultTemplate:  defaultTemplate,
		logger:           logger,
	}
}

// Register finds or creates the user behind the WhatsApp number. New users
// start inactive with the standard password and get a store created from the
// posted store name.
func (s *registrationService) Register(input RegistrationInput) (*models.User, error) {
	user, err := s.userService.GetByWhatsAppNumber(input.WhatsApp)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	firstName, lastName := s.SplitFullName(input.FullName)
	hashed, err := bcrypt.GenerateFromPassword([]byte(s.standardPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = &models.User{
		Username:       input.Email,
		Email:          input.Email,
		FirstName:      firstName,
		LastName:       lastName,
		WhatsAppNumber: input.WhatsApp,
		Password:       string(hashed),
		IsActive:       false,
	}
	if err := s.userService.Create(user); err != nil {
		return nil, err
	}

	store := &models.Store{OwnerID: user.ID, Name: input.StoreName}
	if err := s.storeRepo.Create(store); err != nil {
		return nil, err
	}

	return user, nil
}

// SendActivation sends the registration code over WhatsApp. Nothing is sent
// while a previous token is still valid or the cooldown is active.
func (s *registrationService) SendActivation(userID uint) (*models.OTPToken, error) {
	user, err := s.userService.GetByID(userID)
	if err != nil {
		return nil, err
	}

	token, flag, err := s.otpService.GetRegistrationToken(user.ID)
	if err != nil {
		return nil, err
	}
	if flag != FlagNew {
		return token, nil
	}

	inCooldown, err := s.cooldowns.InOTPCooldown(string(models.EventRegistration), user.ID)
	if err != nil {
		s.logger.Warn("otp cooldown check failed", zap.Error(err))
	}
	if inCooldown {
		return token, nil
	}

	template, err := s.configService.Get(ConfigKeyRegistrationTemplate, s.defaultTemplate)
	if err != nil {
		return nil, err
	}
	message := strings.ReplaceAll(template, "{code}", token.Code)

	response, err := s.whatsappService.SendMessage(user.WhatsAppNumber, message)
	if err != nil {
		s.logger.Warn("failed to send activation message",
			zap.String("whatsapp", user.WhatsAppNumber), zap.Error(err))
	}

	if err := s.otpService.MarkSent(token, s.otpService.ParseSendStatus(response)); err != nil {
		return nil, err
	}
	if err := s.cooldowns.SetOTPCooldown(string(models.EventRegistration), user.ID, s.cooldownTTL); err != nil {
		s.logger.Warn("failed to set otp cooldown", zap.Error(err))
	}

	return token, nil
}

// ConfirmToken activates the user when the registration code checks out.
func (s *registrationService) ConfirmToken(whatsapp, code string) (bool, error) {
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
		return false, nil
	}

	user.IsActive = true
	return true, s.userService.Update(user)
}

// SplitFullName splits on the last space: "Siti Nur Aini" -> ("Siti Nur", "Aini").
func (s *registrationService) SplitFullName(fullName string) (string, string) {
	fullName = strings.TrimSpace(fullName)
	idx := strings.LastIndex(fullName, " ")
	if idx < 0 {
		return fullName, ""
	}
	return fullName[:idx], fullName[idx+1:]
}
