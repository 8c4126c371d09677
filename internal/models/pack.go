package models

// Pack represents a package to deliver, optionally assigned to a
// driver and bound to a destination city.
type Pack struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	Description        string `gorm:"size:255;not null" json:"description"`
	DestinationAddress string `gorm:"size:128;not null" json:"destination_address"`
	TruckDriverID      *uint  `gorm:"index" json:"truck_driver_id"`
	CityID             *uint  `gorm:"index" json:"city_id"`

	TruckDriver *TruckDriver `json:"-"`
	City        *City        `json:"-"`
}
