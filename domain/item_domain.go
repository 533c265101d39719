package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateItem      = "item created successfully"
	MessageSuccessUpdateItem      = "item updated successfully"
	MessageSuccessDeleteItem      = "item deleted successfully"
	MessageSuccessGetItems        = "items retrieved successfully"
	MessageSuccessGetQuantityLeft = "remaining quantity retrieved successfully"

	MessageFailedCreateItem      = "failed to create item"
	MessageFailedUpdateItem      = "failed to update item"
	MessageFailedDeleteItem      = "failed to delete item"
	MessageFailedGetItems        = "failed to retrieve items"
	MessageFailedGetQuantityLeft = "failed to retrieve remaining quantity"

	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)

type (
	CreateItemRequest struct {
		Name          string                `json:"name" form:"name" validate:"required,max=255"`
		Quantity      int                   `json:"quantity" form:"quantity" validate:"min=0"`
		CategoryID    string                `json:"category_id" form:"category_id" validate:"omitempty,uuid"`
		Price         string                `json:"price" form:"price" validate:"omitempty"`
		Supplier      string                `json:"supplier" form:"supplier" validate:"omitempty,max=255"`
		SupplierPhone string                `json:"supplier_phone" form:"supplier_phone" validate:"omitempty,max=32"`
		Image         *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	UpdateItemRequest struct {
		Name          string                `json:"name" form:"name" validate:"omitempty,max=255"`
		Quantity      *int                  `json:"quantity" form:"quantity" validate:"omitempty,min=0"`
		CategoryID    string                `json:"category_id" form:"category_id" validate:"omitempty,uuid"`
		Price         string                `json:"price" form:"price" validate:"omitempty"`
		Supplier      string                `json:"supplier" form:"supplier" validate:"omitempty,max=255"`
		SupplierPhone string                `json:"supplier_phone" form:"supplier_phone" validate:"omitempty,max=32"`
		Image         *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	ItemResponse struct {
		ID            string            `json:"id"`
		Name          string            `json:"name"`
		Quantity      int               `json:"quantity"`
		CategoryID    string            `json:"category_id,omitempty"`
		Category      *CategoryResponse `json:"category,omitempty"`
		Price         string            `json:"price,omitempty"`
		Supplier      string            `json:"supplier,omitempty"`
		SupplierPhone string            `json:"supplier_phone,omitempty"`
		ImageURL      string            `json:"image_url,omitempty"`
		Stock         []StockResponse   `json:"stock,omitempty"`
		CreatedAt     time.Time         `json:"created_at"`
		UpdatedAt     time.Time         `json:"updated_at"`
	}

	QuantityLeftResponse struct {
		ItemID       string `json:"item_id"`
		QuantityLeft int    `json:"quantity_left"`
	}
)
