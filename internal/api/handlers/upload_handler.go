package handlers

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/internal/api/presenters"
	"Stockify-Backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2"
)

type (
	UploadHandler interface {
		PresignUpload(c *fiber.Ctx) error
		DeleteObject(c *fiber.Ctx) error
	}

	uploadHandler struct {
		s3 storage.AwsS3
	}
)

func NewUploadHandler(s3 storage.AwsS3) UploadHandler {
	return &uploadHandler{s3: s3}
}

func (h *uploadHandler) PresignUpload(c *fiber.Ctx) error {
	fileType := c.Query("file_type")
	if !storage.IsAllowedImageType(fileType) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPresignUpload, domain.ErrInvalidImageFormat)
	}

	url, key, err := h.s3.PresignPutObject(fileType)
	if err != nil {
		return serviceError(c, domain.MessageFailedPresignUpload, err)
	}

	res := domain.PresignUploadResponse{UploadURL: url, Key: key}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPresignUpload)
}

func (h *uploadHandler) DeleteObject(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteObject, domain.ErrObjectKeyMissing)
	}

	if err := h.s3.DeleteFile(key); err != nil {
		return serviceError(c, domain.MessageFailedDeleteObject, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteObject)
}
