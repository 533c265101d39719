package entities

import "github.com/google/uuid"

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:255" json:"name"`
	Description string    `json:"description,omitempty"`

	Items []*Item `gorm:"foreignKey:CategoryID"`
	Timestamp
}
