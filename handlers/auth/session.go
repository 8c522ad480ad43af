package auth

import (
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/gofiber/fiber/v2"
)

// CheckResponse reports whether the caller is signed in
type CheckResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

// Check handles GET /api/auth/check. It never changes the session.
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	username, _ := middleware.GetUsername(c)
	return response.Success(c, CheckResponse{
		Authenticated: middleware.IsAdmin(c),
		Username:      username,
	})
}

// Me handles GET /api/auth/me (admin only)
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	admin, err := h.service.Me(c.UserContext(), adminID)
	if err != nil {
		return response.FromError(c, err, "Failed to fetch admin")
	}
	return response.Success(c, LoginResponse{
		ID:       admin.ID,
		Username: admin.Username,
	})
}
