package response

import (
	"errors"

	"github.com/everestllcweb-png/backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Response represents a standardized API response
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success returns a successful response
func Success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage returns a successful response with a message
func SuccessWithMessage(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created returns a 201 Created response
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: "Resource created successfully",
		Data:    data,
	})
}

// Error returns an error response
func Error(c *fiber.Ctx, statusCode int, message string, code string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Message: message,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message, "BAD_REQUEST")
}

// ValidationError returns a 400 response for payloads that failed validation
func ValidationError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message, "VALIDATION_ERROR")
}

// Unauthorized returns a 401 Unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return Error(c, fiber.StatusUnauthorized, message, "UNAUTHORIZED")
}

// Forbidden returns a 403 Forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Access forbidden"
	}
	return Error(c, fiber.StatusForbidden, message, "FORBIDDEN")
}

// NotFound returns a 404 Not Found response
func NotFound(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return Error(c, fiber.StatusNotFound, message, "NOT_FOUND")
}

// Conflict reports a unique constraint violation. The status stays 400 so
// existing clients treat it as a client error; the code tells it apart.
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message, "CONFLICT")
}

// InternalServerError returns a 500 Internal Server Error response
func InternalServerError(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return Error(c, fiber.StatusInternalServerError, message, "INTERNAL_ERROR")
}

// ConfigurationError returns a 500 response for missing server configuration
func ConfigurationError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message, "CONFIG_ERROR")
}

// FromError writes the response matching a service error. Errors without a
// known kind are logged and reported with the generic fallback message.
func FromError(c *fiber.Ctx, err error, fallback string) error {
	message := fallback
	var svcErr *services.Error
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		message = svcErr.Message
	}

	switch {
	case errors.Is(err, services.ErrValidation):
		return ValidationError(c, message)
	case errors.Is(err, services.ErrConflict):
		return Conflict(c, message)
	case errors.Is(err, services.ErrNotFound):
		return NotFound(c, message)
	case errors.Is(err, services.ErrUnauthorized):
		return Unauthorized(c, message)
	case errors.Is(err, services.ErrForbidden):
		return Forbidden(c, message)
	case errors.Is(err, services.ErrConfiguration):
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return ConfigurationError(c, message)
	}

	log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	return InternalServerError(c, fallback)
}
