package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	MessageSuccessCreateStock = "stock record created successfully"
	MessageSuccessUpdateStock = "stock record updated successfully"
	MessageSuccessDeleteStock = "stock record deleted successfully"
	MessageSuccessGetStocks   = "stock records retrieved successfully"

	MessageFailedCreateStock = "failed to create stock record"
	MessageFailedUpdateStock = "failed to update stock record"
	MessageFailedDeleteStock = "failed to delete stock record"
	MessageFailedGetStocks   = "failed to retrieve stock records"

	ErrStockNotFound     = errors.New("stock record not found")
	ErrInvalidStatus     = errors.New("invalid stock status")
	ErrStockInconsistent = errors.New("allocated stock exceeds the item's declared quantity")
)

// QuantityExceededError reports how many units were still allocatable
// when a create or update asked for more.
type QuantityExceededError struct {
	Requested int
	Remaining int
}

func (e *QuantityExceededError) Error() string {
	return fmt.Sprintf(
		"requested quantity %d exceeds the remaining allocatable quantity %d",
		e.Requested, e.Remaining,
	)
}

type (
	CreateStockRequest struct {
		ItemID     string `json:"item_id" validate:"required,uuid"`
		LocationID string `json:"location_id" validate:"required,uuid"`
		Quantity   int    `json:"quantity" validate:"min=0"`
		Status     string `json:"status" validate:"omitempty,oneof=Available 'In Use' Damaged Lost"`
		Notes      string `json:"notes" validate:"omitempty"`
	}

	UpdateStockRequest struct {
		LocationID string `json:"location_id" validate:"omitempty,uuid"`
		Quantity   *int   `json:"quantity" validate:"omitempty,min=0"`
		Status     string `json:"status" validate:"omitempty,oneof=Available 'In Use' Damaged Lost"`
		Notes      *string `json:"notes" validate:"omitempty"`
	}

	StockResponse struct {
		ID          string            `json:"id"`
		ItemID      string            `json:"item_id"`
		LocationID  string            `json:"location_id"`
		Location    *LocationResponse `json:"location,omitempty"`
		Quantity    int               `json:"quantity"`
		Status      string            `json:"status"`
		Notes       string            `json:"notes,omitempty"`
		LastUpdated time.Time         `json:"last_updated"`
	}
)
