package main

import (
	"fmt"
	"log"

	"asset-tracker-backend/internal/config"
	"asset-tracker-backend/internal/database"
	"asset-tracker-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a demo account with a handful of employees and assets so the API
// has something to serve right after a fresh migration.
//
// Usage: go run scripts/load_initial_data.go

const demoEmail = "demo@example.com"
const demoPassword = "demo-password"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Printf("Demo data loaded. Log in as %s / %s\n", demoEmail, demoPassword)
}

func seed(db *gorm.DB) error {
	var existing models.Account
	if err := db.First(&existing, "email = ?", demoEmail).Error; err == nil {
		return fmt.Errorf("demo account %s already exists, nothing to do", demoEmail)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		account := &models.Account{
			Email:        demoEmail,
			PasswordHash: string(hash),
			FirstName:    "Dana",
			LastName:     "Demo",
			CompanyName:  "Demo Logistics Ltd",
			PhoneNumber:  "+49-30-555-0199",
			IsPremium:    true,
			MaxAssets:    models.DefaultMaxAssets,
		}
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		employees := []*models.Employee{
			{OwnerAccountID: account.ID, Name: "Alice Carter", Email: "alice@demo.example.com", Phone: "+49-30-555-0101"},
			{OwnerAccountID: account.ID, Name: "Bob Fischer", Email: "bob@demo.example.com", Phone: "+49-30-555-0102"},
			{OwnerAccountID: account.ID, Name: "Carla Weber", Email: "carla@demo.example.com"},
		}
		for _, e := range employees {
			if err := tx.Create(e).Error; err != nil {
				return err
			}
		}

		assets := []*models.Asset{
			{OwnerAccountID: account.ID, Name: "ThinkPad X1 Carbon", SerialNumber: "LN-482913", Description: "14\" laptop, 32GB RAM", Status: models.AssetStatusAssigned, AssignedEmployeeID: &employees[0].ID},
			{OwnerAccountID: account.ID, Name: "Dell UltraSharp 27", SerialNumber: "MN-771204", Description: "External monitor", Status: models.AssetStatusAssigned, AssignedEmployeeID: &employees[0].ID},
			{OwnerAccountID: account.ID, Name: "iPhone 15", SerialNumber: "PH-090441", Status: models.AssetStatusAssigned, AssignedEmployeeID: &employees[1].ID},
			{OwnerAccountID: account.ID, Name: "Bosch GSR 12V Drill", SerialNumber: "TL-230087", Status: models.AssetStatusAvailable},
			{OwnerAccountID: account.ID, Name: "Projector Epson EB-L200", SerialNumber: "PJ-555321", Status: models.AssetStatusMaintenance},
			{OwnerAccountID: account.ID, Name: "Company Van Key Fob", Description: "Spare key, glove box", Status: models.AssetStatusAvailable},
		}
		for _, a := range assets {
			a.Normalize()
			if err := tx.Create(a).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
