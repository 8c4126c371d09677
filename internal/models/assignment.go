package models

import "time"

// TruckDriverTruck links a driver to the truck they operate on a given
// day. A driver can be assigned at most one truck per date.
type TruckDriverTruck struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TruckDriverID uint      `gorm:"not null;uniqueIndex:idx_driver_date" json:"truck_driver_id"`
	TruckID       uint      `gorm:"index;not null" json:"truck_id"`
	Date          time.Time `gorm:"not null;uniqueIndex:idx_driver_date" json:"date"`

	TruckDriver TruckDriver `json:"-"`
	Truck       Truck       `json:"-"`
}
