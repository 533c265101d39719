package entities

import "github.com/google/uuid"

type Location struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255" json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`

	Stocks []*Stock `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	Timestamp
}
