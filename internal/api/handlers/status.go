package handlers

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/internal/api/presenters"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// statusFor maps service errors onto HTTP status codes. Anything
// unrecognized is an internal failure and stays a 500.
func statusFor(err error) int {
	var quantityErr *domain.QuantityExceededError
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrStockNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &quantityErr),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidImageFormat):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, domain.ErrCategoryAlreadyExists),
		errors.Is(err, domain.ErrUserReferenced):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// serviceError hides internal detail on 500s but keeps the structured
// error for client-addressable failures.
func serviceError(c *fiber.Ctx, message string, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s: %v", message, err)
		return presenters.ErrorResponse(c, status, domain.MessageInternalServerError, nil)
	}
	return presenters.ErrorResponse(c, status, message, err)
}
