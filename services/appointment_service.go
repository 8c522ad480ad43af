package services

import (
	"context"
	"strings"

	"github.com/everestllcweb-png/backend/database"
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/utils/validation"
)

// AppointmentService handles consultation requests. Anyone may submit one;
// only admins can read or change them.
type AppointmentService struct {
	*ContentService[model.Appointment]
}

// AppointmentRequest is the public booking form
type AppointmentRequest struct {
	Name          string
	FullName      string
	Email         string
	Phone         string
	PreferredDate string
	PreferredTime string
	Message       string
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(repo database.Repository[model.Appointment], v *validation.Validator) *AppointmentService {
	return &AppointmentService{
		ContentService: NewContentService(repo, v, ContentOptions[model.Appointment]{
			Entity: "Appointment",
			Order:  []string{model.OrderCreatedDesc},
		}),
	}
}

// Submit stores a booking from the public site. The status is always pending.
func (s *AppointmentService) Submit(ctx context.Context, req AppointmentRequest) (*model.Appointment, error) {
	appointment := &model.Appointment{
		Name:          ResolveName(req.Name, req.FullName),
		Email:         validation.SanitizeString(req.Email),
		Phone:         validation.SanitizeString(req.Phone),
		PreferredDate: validation.SanitizeString(req.PreferredDate),
		PreferredTime: validation.SanitizeString(req.PreferredTime),
		Message:       validation.SanitizeString(req.Message),
		Status:        model.AppointmentPending,
	}

	if appointment.Name == "" || appointment.Email == "" || appointment.Phone == "" {
		return nil, Invalid("Missing required fields (name/fullName, email, phone)")
	}

	return s.Create(ctx, appointment)
}

// ResolveName picks name, falling back to fullName, after trimming both
func ResolveName(name, fullName string) string {
	if name = strings.TrimSpace(validation.SanitizeString(name)); name != "" {
		return name
	}
	return validation.SanitizeString(fullName)
}
