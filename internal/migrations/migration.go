package migrations

import (
	"log"
	"order_manager/internal/config"
	"order_manager/internal/repository"
	"order_manager/internal/services"

	"gorm.io/gorm"
)

// RunMigrations seeds the default config rows. Schema migration itself is
// handled by database.Initialize; scripts/init-db recreates it from scratch.
func RunMigrations(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default configuration...")

	configRepo := repository.NewConfigRepository(db)
	configService := services.NewConfigService(configRepo)

	if _, err := configService.SetIfNone(
		services.ConfigKeyRegistrationTemplate,
		cfg.RegistrationTemplate,
		"WhatsApp message sent with the registration OTP code",
	); err != nil {
		return err
	}

	if _, err := configService.SetIfNone(
		services.ConfigKeyLoginTemplate,
		cfg.LoginTemplate,
		"WhatsApp message sent with the login OTP code",
	); err != nil {
		return err
	}

	log.Println("Default configuration seeded successfully!")
	return nil
}
