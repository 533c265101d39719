package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"uniqueIndex;size:255" json:"username"`
	Email    string    `gorm:"uniqueIndex;size:255" json:"email"`
	Name     string    `json:"name,omitempty"`
	Password string    `json:"-"`
	Role     string    `gorm:"default:user" json:"role"` // "admin", "user"
	ImageURL string    `json:"image_url,omitempty"`

	Sessions []*Session `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type Session struct {
	Token     string    `gorm:"primary_key" json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
