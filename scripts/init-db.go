package main

import (
	"fmt"
	"log"
	"order_manager/internal/config"
	"order_manager/internal/database"
	"order_manager/internal/migrations"
	"order_manager/internal/models"
	"order_manager/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	if err := db.Migrator().DropTable(database.Models()...); err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed default config rows
	if err := migrations.RunMigrations(db, cfg); err != nil {
		log.Fatal("Failed to seed default configuration:", err)
	}

	// Create a demo store owner with some stock
	fmt.Println("Creating demo store...")
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	productRepo := repository.NewProductRepository(db)

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.StandardPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	owner := &models.User{
		Username:       "demo@example.com",
		Email:          "demo@example.com",
		FirstName:      "Demo",
		LastName:       "Owner",
		WhatsAppNumber: "6281234567890",
		Password:       string(hashed),
		IsActive:       true,
	}
	if err := userRepo.Create(owner); err != nil {
		log.Fatal("Failed to create demo user:", err)
	}

	store := &models.Store{OwnerID: owner.ID, Name: "Demo Store"}
	if err := storeRepo.Create(store); err != nil {
		log.Fatal("Failed to create demo store:", err)
	}

	products := []models.Product{
		{StoreID: store.ID, Name: "Bolu Pandan", Price: 25000, SellingPrice: 40000, Weight: 500, Quantity: 20},
		{StoreID: store.ID, Name: "Bolu Coklat", Price: 30000, SellingPrice: 45000, Weight: 600, Quantity: 15},
		{StoreID: store.ID, Name: "Bolu Keju", Price: 35000, SellingPrice: 55000, Weight: 650, Quantity: 10},
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			log.Fatal("Failed to create demo product:", err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
	fmt.Println("Store:", store.ID)
	fmt.Println("Owner WhatsApp: 6281234567890")
}
