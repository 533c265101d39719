package handlers

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/internal/api/presenters"
	"Stockify-Backend/pkg/location"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LocationHandler interface {
		CreateLocation(c *fiber.Ctx) error
		UpdateLocation(c *fiber.Ctx) error
		DeleteLocation(c *fiber.Ctx) error
		GetLocations(c *fiber.Ctx) error
		GetLocationDetails(c *fiber.Ctx) error
		GetLocationOptions(c *fiber.Ctx) error
	}

	locationHandler struct {
		locationService location.LocationService
		validator       *validator.Validate
	}
)

func NewLocationHandler(locationService location.LocationService, validator *validator.Validate) LocationHandler {
	return &locationHandler{
		locationService: locationService,
		validator:       validator,
	}
}

func (h *locationHandler) CreateLocation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateLocation, err)
	}

	res, err := h.locationService.CreateLocation(c.Context(), *req, userID)
	if err != nil {
		return serviceError(c, domain.MessageFailedCreateLocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateLocation)
}

func (h *locationHandler) UpdateLocation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	locationID := c.Params("id")
	req := new(domain.UpdateLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLocation, err)
	}

	if err := h.locationService.UpdateLocation(c.Context(), locationID, *req, userID); err != nil {
		return serviceError(c, domain.MessageFailedUpdateLocation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateLocation)
}

func (h *locationHandler) DeleteLocation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	locationID := c.Params("id")

	if err := h.locationService.DeleteLocation(c.Context(), locationID, userID); err != nil {
		return serviceError(c, domain.MessageFailedDeleteLocation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteLocation)
}

func (h *locationHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.locationService.GetLocations(c.Context(), c.Query("name"))
	if err != nil {
		return serviceError(c, domain.MessageFailedGetLocations, err)
	}

	return presenters.SuccessResponse(c, locations, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *locationHandler) GetLocationDetails(c *fiber.Ctx) error {
	locationID := c.Params("id")

	res, err := h.locationService.GetLocationByID(c.Context(), locationID)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetLocations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *locationHandler) GetLocationOptions(c *fiber.Ctx) error {
	options, err := h.locationService.GetLocationOptions(c.Context())
	if err != nil {
		return serviceError(c, domain.MessageFailedGetLocations, err)
	}

	return presenters.SuccessResponse(c, options, fiber.StatusOK, domain.MessageSuccessGetLocations)
}
