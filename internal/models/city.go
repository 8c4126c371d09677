package models

// City represents a served destination city.
type City struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:64;not null" json:"name"`

	DeliveryAddresses []DeliveryAddress `gorm:"foreignKey:CityID" json:"-"`
	Packs             []Pack            `gorm:"foreignKey:CityID" json:"-"`
}
