package main

import (
	"log"
	"order_manager/internal/config"
	"order_manager/internal/database"
	"order_manager/internal/handlers"
	"order_manager/internal/migrations"
	"order_manager/internal/redis"
	"order_manager/internal/repository"
	"order_manager/internal/services"
	"order_manager/pkg/whatsapp"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Seed default config rows
	if err := migrations.RunMigrations(db, cfg); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize WhatsApp client
	whatsappClient := whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword, cfg.WhatsAppPath)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	configRepo := repository.NewConfigRepository(db)
	otpRepo := repository.NewOTPTokenRepository(db)
	areaRepo := repository.NewAreaRepository(db)

	// Initialize services
	cooldownTTL := time.Duration(cfg.OTPCooldown) * time.Second
	userService := services.NewUserService(userRepo)
	storeService := services.NewStoreService(storeRepo)
	configService := services.NewConfigService(configRepo)
	otpService := services.NewOTPService(otpRepo, cfg.OTPLength, cfg.OTPExpire, logger)
	whatsappService := services.NewWhatsAppService(whatsappClient)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, productRepo)
	productService := services.NewProductService(productRepo, orderItemRepo)
	areaService := services.NewAreaService(areaRepo)
	registrationService := services.NewRegistrationService(
		userService, storeRepo, otpService, whatsappService, configService,
		redisClient, cooldownTTL, cfg.StandardPassword, cfg.RegistrationTemplate, logger)
	authService := services.NewAuthService(
		userService, otpService, whatsappService, configService,
		redisClient, cooldownTTL, cfg.LoginTemplate, logger)
	jwtService := services.NewJWTService(
		userService, otpService, cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTL)*time.Second,
		time.Duration(cfg.JWTRefreshTTL)*time.Second, logger)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(registrationService, authService, jwtService, userService, areaService)
	orderHandler := handlers.NewOrderHandler(orderService, productService, storeService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/register", apiHandler.Register)
		api.POST("/register/confirm", apiHandler.ConfirmRegistration)
		api.POST("/auth/login", apiHandler.Login)
		api.POST("/auth/verify", apiHandler.VerifyLogin)

		api.POST("/orders", orderHandler.CreateOrder)
		api.DELETE("/orders", orderHandler.BatchRemove)
		api.PUT("/orders/status", orderHandler.BatchUpdateStatus)
		api.POST("/orders/cancel-reasons", orderHandler.BatchCreateCancelReason)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.PUT("/orders/:id/items", orderHandler.UpdateOrderItems)
		api.GET("/orders/:id/weight", orderHandler.GetTotalWeight)
		api.GET("/orders/:id/courier-price", orderHandler.GetCourierPrice)

		api.GET("/reports/summary", orderHandler.GetReportSummary)

		api.GET("/areas", apiHandler.SearchAreas)
		api.GET("/areas/subdistricts/:id", apiHandler.GetSubdistrict)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
