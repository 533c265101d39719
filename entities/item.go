package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Item struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name          string              `gorm:"size:255" json:"name"`
	Quantity      int                 `json:"quantity"`
	CategoryID    *uuid.UUID          `json:"category_id,omitempty"`
	Price         decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"price,omitempty"`
	Supplier      string              `json:"supplier,omitempty"`
	SupplierPhone string              `json:"supplier_phone,omitempty"`
	ImageURL      string              `json:"image_url,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Stocks   []*Stock  `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	Timestamp
}
