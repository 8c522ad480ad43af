package slider

import (
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// SliderHandler handles home page banner requests
type SliderHandler struct {
	service *services.ContentService[model.Slider]
}

// NewSliderHandler creates a new slider handler
func NewSliderHandler(service *services.ContentService[model.Slider]) *SliderHandler {
	return &SliderHandler{
		service: service,
	}
}

// SliderRequest is the body of create and update requests.
// Absent fields are left untouched on update.
type SliderRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	ButtonText  *string `json:"buttonText"`
	ButtonLink  *string `json:"buttonLink"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (r *SliderRequest) apply(s *model.Slider) {
	validation.SetString(&s.Title, r.Title)
	validation.SetString(&s.Subtitle, r.Subtitle)
	validation.SetString(&s.Description, r.Description)
	validation.SetString(&s.ImageURL, r.ImageURL)
	validation.SetString(&s.ButtonText, r.ButtonText)
	validation.SetString(&s.ButtonLink, r.ButtonLink)
	validation.SetValue(&s.Order, r.Order)
	validation.SetValue(&s.IsActive, r.IsActive)
}

// ListSliders handles GET /api/sliders
func (h *SliderHandler) ListSliders(c *fiber.Ctx) error {
	sliders, err := h.service.List(c.UserContext(), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch sliders")
	}
	return response.Success(c, sliders)
}

// GetSlider handles GET /api/sliders/:id
func (h *SliderHandler) GetSlider(c *fiber.Ctx) error {
	slider, err := h.service.Get(c.UserContext(), c.Params("id"), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch slider")
	}
	return response.Success(c, slider)
}

// CreateSlider handles POST /api/sliders
func (h *SliderHandler) CreateSlider(c *fiber.Ctx) error {
	var req SliderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	slider := &model.Slider{IsActive: true}
	req.apply(slider)

	created, err := h.service.Create(c.UserContext(), slider)
	if err != nil {
		return response.FromError(c, err, "Failed to create slider")
	}
	return response.Created(c, created)
}

// UpdateSlider handles PUT /api/sliders/:id
func (h *SliderHandler) UpdateSlider(c *fiber.Ctx) error {
	var req SliderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), req.apply)
	if err != nil {
		return response.FromError(c, err, "Failed to update slider")
	}
	return response.SuccessWithMessage(c, "Slider updated successfully", updated)
}

// DeleteSlider handles DELETE /api/sliders/:id
func (h *SliderHandler) DeleteSlider(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err, "Failed to delete slider")
	}
	return response.SuccessWithMessage(c, "Slider deleted successfully", nil)
}
