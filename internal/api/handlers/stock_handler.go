package handlers

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/internal/api/presenters"
	"Stockify-Backend/pkg/stock"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StockHandler interface {
		CreateStock(c *fiber.Ctx) error
		UpdateStock(c *fiber.Ctx) error
		DeleteStock(c *fiber.Ctx) error
		GetStocks(c *fiber.Ctx) error
		GetStockDetails(c *fiber.Ctx) error
	}

	stockHandler struct {
		stockService stock.StockService
		validator    *validator.Validate
	}
)

func NewStockHandler(stockService stock.StockService, validator *validator.Validate) StockHandler {
	return &stockHandler{
		stockService: stockService,
		validator:    validator,
	}
}

func (h *stockHandler) CreateStock(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateStockRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStock, err)
	}

	res, err := h.stockService.CreateStock(c.Context(), *req, userID)
	if err != nil {
		return serviceError(c, domain.MessageFailedCreateStock, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStock)
}

func (h *stockHandler) UpdateStock(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	stockID := c.Params("id")
	req := new(domain.UpdateStockRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStock, err)
	}

	if err := h.stockService.UpdateStock(c.Context(), stockID, *req, userID); err != nil {
		return serviceError(c, domain.MessageFailedUpdateStock, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateStock)
}

func (h *stockHandler) DeleteStock(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	stockID := c.Params("id")

	if err := h.stockService.DeleteStock(c.Context(), stockID, userID); err != nil {
		return serviceError(c, domain.MessageFailedDeleteStock, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteStock)
}

func (h *stockHandler) GetStocks(c *fiber.Ctx) error {
	stocks, err := h.stockService.GetStocks(c.Context())
	if err != nil {
		return serviceError(c, domain.MessageFailedGetStocks, err)
	}

	return presenters.SuccessResponse(c, stocks, fiber.StatusOK, domain.MessageSuccessGetStocks)
}

func (h *stockHandler) GetStockDetails(c *fiber.Ctx) error {
	stockID := c.Params("id")

	record, err := h.stockService.GetStockByID(c.Context(), stockID)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetStocks, err)
	}

	return presenters.SuccessResponse(c, record, fiber.StatusOK, domain.MessageSuccessGetStocks)
}
