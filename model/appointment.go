package model

// AppointmentStatus tracks a consultation request through the office workflow
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a consultation request submitted from the public contact form.
type Appointment struct {
	Base
	Name          string            `gorm:"not null" json:"name" validate:"required"`
	Email         string            `gorm:"not null" json:"email" validate:"required"`
	Phone         string            `gorm:"not null" json:"phone" validate:"required"`
	PreferredDate string            `json:"preferredDate"`
	PreferredTime string            `json:"preferredTime"`
	Message       string            `gorm:"type:text" json:"message"`
	Status        AppointmentStatus `gorm:"type:varchar(20);not null;index" json:"status" validate:"oneof=pending confirmed completed cancelled"`
}
