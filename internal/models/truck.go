package models

// Truck represents a delivery vehicle in the fleet.
type Truck struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	LicensePlate string  `gorm:"size:16;uniqueIndex;not null" json:"license_plate"`
	Model        string  `gorm:"size:64;not null" json:"model"`
	Kilometers   float64 `gorm:"not null" json:"kilometers"`

	Assignments []TruckDriverTruck `gorm:"foreignKey:TruckID" json:"-"`
}
