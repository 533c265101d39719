package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"
	MessageSuccessGetCategories  = "categories retrieved successfully"

	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"
	MessageFailedGetCategories  = "failed to retrieve categories"

	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category name already exists")
)

type (
	CreateCategoryRequest struct {
		Name        string `json:"name" validate:"required,max=255"`
		Description string `json:"description" validate:"omitempty"`
	}

	UpdateCategoryRequest struct {
		Name        string `json:"name" validate:"omitempty,max=255"`
		Description string `json:"description" validate:"omitempty"`
	}

	CategoryResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		ItemCount   int64     `json:"item_count"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	SelectOption struct {
		Label string `json:"label"`
		Value string `json:"value"`
	}
)
