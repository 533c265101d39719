package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	StockStatusAvailable = "Available"
	StockStatusInUse     = "In Use"
	StockStatusDamaged   = "Damaged"
	StockStatusLost      = "Lost"
)

type Stock struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ItemID      uuid.UUID `json:"item_id"`
	LocationID  uuid.UUID `json:"location_id"`
	Quantity    int       `json:"quantity"`
	Status      string    `gorm:"default:Available" json:"status"` // "Available", "In Use", "Damaged", "Lost"
	Notes       string    `json:"notes,omitempty"`
	LastUpdated time.Time `json:"last_updated"`

	Item     *Item     `gorm:"foreignKey:ItemID"`
	Location *Location `gorm:"foreignKey:LocationID"`
}
