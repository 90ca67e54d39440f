package database

import (
	"log"

	"biovibe-backend/internal/config"
	"biovibe-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connected, migrations applied.")
}

// Migrate runs AutoMigrate for every model. Tests call this against an
// in-memory sqlite database so the schema path is shared.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.SiteContent{},
		&models.Order{},
		&models.OrderItem{},
		&models.AuditLog{},
	)
}
