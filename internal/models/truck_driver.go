package models

// TruckDriver represents an employed driver identified by national id.
type TruckDriver struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	DNI     string  `gorm:"size:16;uniqueIndex;not null" json:"dni"`
	Name    string  `gorm:"size:64;not null" json:"name"`
	Phone   string  `gorm:"size:32;not null" json:"phone"`
	Address string  `gorm:"size:128;not null" json:"address"`
	Salary  float64 `gorm:"not null" json:"salary"`

	Assignments []TruckDriverTruck `gorm:"foreignKey:TruckDriverID" json:"-"`
	Packs       []Pack             `gorm:"foreignKey:TruckDriverID" json:"-"`
}
