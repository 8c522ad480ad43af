package appointment

import (
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/services"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/everestllcweb-png/backend/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler handles consultation booking requests
type AppointmentHandler struct {
	service *services.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
	}
}

// BookAppointmentRequest is the public booking form. Any status sent is ignored.
type BookAppointmentRequest struct {
	Name          string `json:"name"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
}

// UpdateAppointmentRequest is the admin edit form
type UpdateAppointmentRequest struct {
	Name          *string                  `json:"name"`
	FullName      *string                  `json:"fullName"`
	Email         *string                  `json:"email"`
	Phone         *string                  `json:"phone"`
	PreferredDate *string                  `json:"preferredDate"`
	PreferredTime *string                  `json:"preferredTime"`
	Message       *string                  `json:"message"`
	Status        *model.AppointmentStatus `json:"status"`
}

func (r *UpdateAppointmentRequest) apply(a *model.Appointment) {
	if r.Name != nil || r.FullName != nil {
		a.Name = services.ResolveName(deref(r.Name), deref(r.FullName))
	}
	validation.SetString(&a.Email, r.Email)
	validation.SetString(&a.Phone, r.Phone)
	validation.SetString(&a.PreferredDate, r.PreferredDate)
	validation.SetString(&a.PreferredTime, r.PreferredTime)
	validation.SetString(&a.Message, r.Message)
	validation.SetValue(&a.Status, r.Status)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListAppointments handles GET /api/appointments (admin only)
func (h *AppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	appointments, err := h.service.List(c.UserContext(), true)
	if err != nil {
		return response.FromError(c, err, "Failed to fetch appointments")
	}
	return response.Success(c, appointments)
}

// BookAppointment handles POST /api/appointments (public)
func (h *AppointmentHandler) BookAppointment(c *fiber.Ctx) error {
	var req BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	appointment, err := h.service.Submit(c.UserContext(), services.AppointmentRequest{
		Name:          req.Name,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	})
	if err != nil {
		return response.FromError(c, err, "Failed to create appointment")
	}
	return response.Created(c, appointment)
}

// UpdateAppointment handles PUT /api/appointments/:id (admin only)
func (h *AppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	var req UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("id"), req.apply)
	if err != nil {
		return response.FromError(c, err, "Failed to update appointment")
	}
	return response.SuccessWithMessage(c, "Appointment updated successfully", updated)
}

// DeleteAppointment handles DELETE /api/appointments/:id (admin only)
func (h *AppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err, "Failed to delete appointment")
	}
	return response.SuccessWithMessage(c, "Appointment deleted successfully", nil)
}
