package auth

import (
	"github.com/everestllcweb-png/backend/services"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthHandler handles the admin session lifecycle
type AuthHandler struct {
	service  *services.AuthService
	sessions *session.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *services.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
	}
}
