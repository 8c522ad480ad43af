package upload

import (
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/services/digitalocean"
	uploadsvc "github.com/everestllcweb-png/backend/services/upload"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// UploadHandler hands out credentials for direct browser uploads
type UploadHandler struct {
	signer *uploadsvc.Signer
	// spaces is nil when DigitalOcean Spaces is not configured
	spaces    *digitalocean.SpacesClient
	validator *validation.Validator
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(signer *uploadsvc.Signer, spaces *digitalocean.SpacesClient) *UploadHandler {
	return &UploadHandler{
		signer:    signer,
		spaces:    spaces,
		validator: validation.NewValidator(),
	}
}

// SignatureRequest names the Cloudinary folder to upload into
type SignatureRequest struct {
	Folder string `json:"folder"`
}

// PresignRequest describes the file the browser is about to upload
type PresignRequest struct {
	Folder      string `json:"folder"`
	Filename    string `json:"filename" validate:"required,max=255"`
	ContentType string `json:"contentType" validate:"omitempty,max=100"`
}

// CreateSignature handles POST /api/signature
func (h *UploadHandler) CreateSignature(c *fiber.Ctx) error {
	var req SignatureRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}
	if req.Folder == "" {
		req.Folder = c.Query("folder")
	}

	signature, err := h.signer.Signature(req.Folder)
	if err != nil {
		return response.FromError(c, err, "Failed to create upload signature")
	}
	return response.Success(c, signature)
}

// PresignUpload handles POST /api/uploads/presign
func (h *UploadHandler) PresignUpload(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.FromError(c,
			services.NewError(services.ErrConfiguration, "File storage is not configured", nil),
			"Failed to prepare upload")
	}

	var req PresignRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Filename = validation.SanitizeString(req.Filename)
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.Message(err))
	}

	upload, err := h.spaces.PresignUpload(c.UserContext(), req.Folder, req.Filename, req.ContentType)
	if err != nil {
		return response.FromError(c, err, "Failed to prepare upload")
	}
	return response.Success(c, upload)
}
