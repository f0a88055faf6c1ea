package model

import "time"

// User is a shop owner account. Admin is NOT a User — the admin console
// authenticates against a fixed credential pair from config.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:80;uniqueIndex;not null"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:200;not null"`
	// Active gates login only; an already-issued session survives deactivation.
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
}
