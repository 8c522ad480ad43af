package class

import (
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// ClassHandler handles preparation class requests
type ClassHandler struct {
	service *services.ContentService[model.Class]
}

// NewClassHandler creates a new class handler
func NewClassHandler(service *services.ContentService[model.Class]) *ClassHandler {
	return &ClassHandler{
		service: service,
	}
}

// ClassRequest represents the request body for creating or updating a class.
// A null capacity is treated like an absent one.
type ClassRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Instructor  *string `json:"instructor"`
	Schedule    *string `json:"schedule"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Capacity    *int    `json:"capacity"`
	Duration    *string `json:"duration"`
	Price       *string `json:"price"`
	IsActive    *bool   `json:"isActive"`
}

func (r *ClassRequest) apply(class *model.Class) {
	validation.SetString(&class.Name, r.Name)
	validation.SetString(&class.Type, r.Type)
	validation.SetString(&class.Instructor, r.Instructor)
	validation.SetString(&class.Schedule, r.Schedule)
	validation.SetString(&class.Description, r.Description)
	validation.SetString(&class.ImageURL, r.ImageURL)
	validation.SetString(&class.Duration, r.Duration)
	validation.SetString(&class.Price, r.Price)
	validation.SetValue(&class.IsActive, r.IsActive)
	if r.Capacity != nil {
		capacity := *r.Capacity
		class.Capacity = &capacity
	}
}

// ListClasses handles GET /api/classes
func (h *ClassHandler) ListClasses(c *fiber.Ctx) error {
	classes, err := h.service.List(c.UserContext(), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch classes")
	}
	return response.Success(c, classes)
}

// GetClass handles GET /api/classes/:id
func (h *ClassHandler) GetClass(c *fiber.Ctx) error {
	class, err := h.service.Get(c.UserContext(), c.Params("id"), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch class")
	}
	return response.Success(c, class)
}

// CreateClass handles POST /api/classes
func (h *ClassHandler) CreateClass(c *fiber.Ctx) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	class := &model.Class{IsActive: true}
	req.apply(class)

	created, err := h.service.Create(c.UserContext(), class)
	if err != nil {
		return response.FromError(c, err, "Failed to create class")
	}
	return response.Created(c, created)
}

// UpdateClass handles PUT /api/classes/:id
func (h *ClassHandler) UpdateClass(c *fiber.Ctx) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), req.apply)
	if err != nil {
		return response.FromError(c, err, "Failed to update class")
	}
	return response.SuccessWithMessage(c, "Class updated successfully", updated)
}

// DeleteClass handles DELETE /api/classes/:id
func (h *ClassHandler) DeleteClass(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err, "Failed to delete class")
	}
	return response.SuccessWithMessage(c, "Class deleted successfully", nil)
}
