package domain

import "errors"

var (
	MessageSuccessPresignUpload = "upload URL generated successfully"
	MessageSuccessDeleteObject  = "object deleted successfully"

	MessageFailedPresignUpload = "failed to generate upload URL"
	MessageFailedDeleteObject  = "failed to delete object"

	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrObjectKeyMissing   = errors.New("object key is required")
)

type PresignUploadResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
}
