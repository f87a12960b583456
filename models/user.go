package models

import (
	"time"
)

// User is an account that can own decks.
// Password holds the bcrypt hash and is never serialised.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	Decks []Deck `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
