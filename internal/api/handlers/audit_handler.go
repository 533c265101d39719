package handlers

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/internal/api/presenters"
	"Stockify-Backend/pkg/audit"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	AuditHandler interface {
		GetAuditLogs(c *fiber.Ctx) error
	}

	auditHandler struct {
		auditService audit.AuditService
	}
)

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandler{auditService: auditService}
}

func (h *auditHandler) GetAuditLogs(c *fiber.Ctx) error {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAuditLogs, err)
		}
		limit = parsed
	}

	logs, err := h.auditService.GetAuditLogs(c.Context(), limit)
	if err != nil {
		return serviceError(c, domain.MessageFailedGetAuditLogs, err)
	}

	return presenters.SuccessResponse(c, logs, fiber.StatusOK, domain.MessageSuccessGetAuditLogs)
}
