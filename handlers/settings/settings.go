package settings

import (
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// SettingsHandler serves the site-wide settings
type SettingsHandler struct {
	service *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		service: service,
	}
}

// UpdateSettingsRequest holds the keys to change; omitted keys keep their value
type UpdateSettingsRequest struct {
	CompanyName       *string `json:"companyName"`
	FooterDescription *string `json:"footerDescription"`
	LogoURL           *string `json:"logoUrl"`
	Email             *string `json:"email"`
	Mobile            *string `json:"mobile"`
	Telephone         *string `json:"telephone"`
	Address           *string `json:"address"`
	FacebookURL       *string `json:"facebookUrl"`
	WhatsappURL       *string `json:"whatsappUrl"`
	TiktokURL         *string `json:"tiktokUrl"`
	InstagramURL      *string `json:"instagramUrl"`
	Tagline           *string `json:"tagline"`
	Phone             *string `json:"phone"`
	Facebook          *string `json:"facebook"`
	Instagram         *string `json:"instagram"`
	Twitter           *string `json:"twitter"`
	Linkedin          *string `json:"linkedin"`
	Whatsapp          *string `json:"whatsapp"`
}

func (r *UpdateSettingsRequest) apply(s *model.Settings) {
	validation.SetString(&s.CompanyName, r.CompanyName)
	validation.SetString(&s.FooterDescription, r.FooterDescription)
	validation.SetString(&s.LogoURL, r.LogoURL)
	validation.SetString(&s.Email, r.Email)
	validation.SetString(&s.Mobile, r.Mobile)
	validation.SetString(&s.Telephone, r.Telephone)
	validation.SetString(&s.Address, r.Address)
	validation.SetString(&s.FacebookURL, r.FacebookURL)
	validation.SetString(&s.WhatsappURL, r.WhatsappURL)
	validation.SetString(&s.TiktokURL, r.TiktokURL)
	validation.SetString(&s.InstagramURL, r.InstagramURL)
	validation.SetString(&s.Tagline, r.Tagline)
	validation.SetString(&s.Phone, r.Phone)
	validation.SetString(&s.Facebook, r.Facebook)
	validation.SetString(&s.Instagram, r.Instagram)
	validation.SetString(&s.Twitter, r.Twitter)
	validation.SetString(&s.Linkedin, r.Linkedin)
	validation.SetString(&s.Whatsapp, r.Whatsapp)
}

// GetSettings handles GET /api/settings
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.Get(c.UserContext())
	if err != nil {
		return response.FromError(c, err, "Failed to fetch settings")
	}
	return response.Success(c, settings)
}

// UpdateSettings handles PUT /api/settings (admin only)
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	settings, err := h.service.Update(c.UserContext(), req.apply)
	if err != nil {
		return response.FromError(c, err, "Failed to update settings")
	}
	return response.SuccessWithMessage(c, "Settings updated successfully", settings)
}
