package university

import (
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// UniversityHandler handles partner university requests
type UniversityHandler struct {
	service *services.ContentService[model.University]
}

// NewUniversityHandler creates a new university handler
func NewUniversityHandler(service *services.ContentService[model.University]) *UniversityHandler {
	return &UniversityHandler{
		service: service,
	}
}

// UniversityRequest is the body of create and update requests.
// Either name of a mirrored pair may be sent; both are updated together.
type UniversityRequest struct {
	Name        *string `json:"name"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	ImageURL    *string `json:"imageUrl"`
	LogoURL     *string `json:"logoUrl"`
	Description *string `json:"description"`
	Ranking     *string `json:"ranking"`
	Website     *string `json:"website"`
	WebsiteURL  *string `json:"websiteUrl"`
	IsActive    *bool   `json:"isActive"`
}

func (r *UniversityRequest) apply(u *model.University) {
	validation.SetString(&u.Name, r.Name)
	validation.SetString(&u.Country, r.Country)
	validation.SetString(&u.City, r.City)
	validation.SetMirrored(&u.LogoURL, &u.ImageURL, r.LogoURL, r.ImageURL)
	validation.SetString(&u.Description, r.Description)
	validation.SetString(&u.Ranking, r.Ranking)
	validation.SetMirrored(&u.WebsiteURL, &u.Website, r.WebsiteURL, r.Website)
	validation.SetValue(&u.IsActive, r.IsActive)
}

// ListUniversities handles GET /api/universities
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	universities, err := h.service.List(c.UserContext(), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch universities")
	}
	return response.Success(c, universities)
}

// GetUniversity handles GET /api/universities/:id
func (h *UniversityHandler) GetUniversity(c *fiber.Ctx) error {
	university, err := h.service.Get(c.UserContext(), c.Params("id"), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch university")
	}
	return response.Success(c, university)
}

// CreateUniversity handles POST /api/universities
func (h *UniversityHandler) CreateUniversity(c *fiber.Ctx) error {
	var req UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	university := &model.University{IsActive: true}
	req.apply(university)

	created, err := h.service.Create(c.UserContext(), university)
	if err != nil {
		return response.FromError(c, err, "Failed to create university")
	}
	return response.Created(c, created)
}

// UpdateUniversity handles PUT /api/universities/:id
func (h *UniversityHandler) UpdateUniversity(c *fiber.Ctx) error {
	var req UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), req.apply)
	if err != nil {
		return response.FromError(c, err, "Failed to update university")
	}
	return response.SuccessWithMessage(c, "University updated successfully", updated)
}

// DeleteUniversity handles DELETE /api/universities/:id
func (h *UniversityHandler) DeleteUniversity(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err, "Failed to delete university")
	}
	return response.SuccessWithMessage(c, "University deleted successfully", nil)
}
