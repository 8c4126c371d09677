package models

import "time"

// Token is one issued session credential. Rows are never deleted;
// revocation flips Revoked to true and that flag is never reset.
type Token struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"size:512;uniqueIndex;not null"`
	Revoked   bool   `gorm:"index;not null;default:false"`
	UserID    uint   `gorm:"index;not null"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
