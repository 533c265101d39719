package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateLocation = "location created successfully"
	MessageSuccessUpdateLocation = "location updated successfully"
	MessageSuccessDeleteLocation = "location deleted successfully"
	MessageSuccessGetLocations   = "locations retrieved successfully"

	MessageFailedCreateLocation = "failed to create location"
	MessageFailedUpdateLocation = "failed to update location"
	MessageFailedDeleteLocation = "failed to delete location"
	MessageFailedGetLocations   = "failed to retrieve locations"

	ErrLocationNotFound = errors.New("location not found")
)

type (
	CreateLocationRequest struct {
		Name        string                `json:"name" form:"name" validate:"required,max=255"`
		Description string                `json:"description" form:"description" validate:"omitempty"`
		Image       *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	UpdateLocationRequest struct {
		Name        string                `json:"name" form:"name" validate:"omitempty,max=255"`
		Description string                `json:"description" form:"description" validate:"omitempty"`
		Image       *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	LocationResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}
)
