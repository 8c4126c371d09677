package database

import (
	"fmt"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Truck{},
		&models.TruckDriver{},
		&models.City{},
		&models.DeliveryAddress{},
		&models.Pack{},
		&models.TruckDriverTruck{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
