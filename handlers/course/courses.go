package course

import (
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// CourseHandler handles course-related requests
type CourseHandler struct {
	service *services.ContentService[model.Course]
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(service *services.ContentService[model.Course]) *CourseHandler {
	return &CourseHandler{
		service: service,
	}
}

// CourseRequest represents the request body for creating or updating a course
type CourseRequest struct {
	Name        *string `json:"name"`
	Level       *string `json:"level"`
	Category    *string `json:"category"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

func (r *CourseRequest) apply(course *model.Course) {
	validation.SetString(&course.Name, r.Name)
	validation.SetMirrored(&course.Category, &course.Level, r.Category, r.Level)
	validation.SetString(&course.Duration, r.Duration)
	validation.SetString(&course.Description, r.Description)
	validation.SetString(&course.ImageURL, r.ImageURL)
	validation.SetValue(&course.IsActive, r.IsActive)
}

// ListCourses handles GET /api/courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.service.List(c.UserContext(), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch courses")
	}
	return response.Success(c, courses)
}

// GetCourse handles GET /api/courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	course, err := h.service.Get(c.UserContext(), c.Params("id"), middleware.IsAdmin(c))
	if err != nil {
		return response.FromError(c, err, "Failed to fetch course")
	}
	return response.Success(c, course)
}

// CreateCourse handles POST /api/courses
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	course := &model.Course{IsActive: true}
	req.apply(course)

	created, err := h.service.Create(c.UserContext(), course)
	if err != nil {
		return response.FromError(c, err, "Failed to create course")
	}
	return response.Created(c, created)
}

// UpdateCourse handles PUT /api/courses/:id
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), req.apply)
	if err != nil {
		return response.FromError(c, err, "Failed to update course")
	}
	return response.SuccessWithMessage(c, "Course updated successfully", updated)
}

// DeleteCourse handles DELETE /api/courses/:id
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err, "Failed to delete course")
	}
	return response.SuccessWithMessage(c, "Course deleted successfully", nil)
}
