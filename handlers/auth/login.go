package auth

import (
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// LoginRequest represents an admin login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	admin, err := h.service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return response.FromError(c, err, "Login failed")
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		log.Errorf("Failed to load session: %v", err)
		return response.InternalServerError(c, "Login failed")
	}
	// New id on every login so a pre-login cookie cannot be reused
	if err := sess.Regenerate(); err != nil {
		log.Errorf("Failed to regenerate session: %v", err)
		return response.InternalServerError(c, "Login failed")
	}
	sess.Set(middleware.SessionAdminID, admin.ID)
	sess.Set(middleware.SessionUsername, admin.Username)
	if err := sess.Save(); err != nil {
		log.Errorf("Failed to save session: %v", err)
		return response.InternalServerError(c, "Login failed")
	}

	log.Infof("Admin %q logged in", admin.Username)
	return response.SuccessWithMessage(c, "Logged in", LoginResponse{
		ID:       admin.ID,
		Username: admin.Username,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		log.Errorf("Failed to load session: %v", err)
		return response.InternalServerError(c, "Logout failed")
	}
	if err := sess.Destroy(); err != nil {
		log.Errorf("Failed to destroy session: %v", err)
		return response.InternalServerError(c, "Logout failed")
	}
	return response.SuccessWithMessage(c, "Logged out", nil)
}
