package models

// DeliveryAddress represents a street address inside a served city.
type DeliveryAddress struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Street     string `gorm:"size:128;not null" json:"street"`
	PostalCode string `gorm:"size:16;not null" json:"postal_code"`
	CityID     *uint  `gorm:"index" json:"city_id"`

	City *City `json:"-"`
}
