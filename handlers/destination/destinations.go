package destination

import (
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// DestinationHandler handles study destination requests
type DestinationHandler struct {
	service *services.ContentService[model.Destination]
}

// NewDestinationHandler creates a new destination handler
func NewDestinationHandler(service *services.ContentService[model.Destination]) *DestinationHandler {
	return &DestinationHandler{
		service: service,
	}
}

// DestinationRequest represents the request body for creating or updating a destination
type DestinationRequest struct {
	Name            *string `json:"name"`
	Country         *string `json:"country"`
	Description     *string `json:"description"`
	ImageURL        *string `json:"imageUrl"`
	UniversityCount *int    `json:"universityCount"`
	IsActive        *bool   `json:"isActive"`
}

func (r *DestinationRequest) apply(d *model.Destination) {
	validation.SetString(&d.Name, r.Name)
	validation.SetString(&d.Country, r.Country)
	validation.SetString(&d.Description, r.Description)
	validation.SetString(&d.ImageURL, r.ImageURL)
	validation.SetValue(&d.UniversityCount, r.UniversityCount)
	validation.SetValue(&d.IsActive, r.IsActive)
}

// ListDestinations handles GET /api/destinations
func (h *DestinationHandler) ListDestinations(c *fiber.Ctx) error {
	destinations, err := h.service.List(c.UserContext(), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch destinations")
	}
	return response.Success(c, destinations)
}

// GetDestination handles GET /api/destinations/:id
func (h *DestinationHandler) GetDestination(c *fiber.Ctx) error {
	destination, err := h.service.Get(c.UserContext(), c.Params("id"), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch destination")
	}
	return response.Success(c, destination)
}

// CreateDestination handles POST /api/destinations
func (h *DestinationHandler) CreateDestination(c *fiber.Ctx) error {
	var req DestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	destination := &model.Destination{IsActive: true}
	req.apply(destination)

	created, err := h.service.Create(c.UserContext(), destination)
	if err != nil {
		return response.FromError(c, err, "Failed to create destination")
	}
	return response.Created(c, created)
}

// UpdateDestination handles PUT /api/destinations/:id
func (h *DestinationHandler) UpdateDestination(c *fiber.Ctx) error {
	var req DestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), req.apply)
	if err != nil {
		return response.FromError(c, err, "Failed to update destination")
	}
	return response.SuccessWithMessage(c, "Destination updated successfully", updated)
}

// DeleteDestination handles DELETE /api/destinations/:id
func (h *DestinationHandler) DeleteDestination(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err, "Failed to delete destination")
	}
	return response.SuccessWithMessage(c, "Destination deleted successfully", nil)
}
