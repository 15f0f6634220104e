package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Activation state; ActivationLink is the token mailed out on register.
	IsActivated    bool   `gorm:"default:false" json:"is_activated"`
	ActivationLink string `gorm:"size:64" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
