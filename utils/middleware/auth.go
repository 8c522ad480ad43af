package middleware

import (
	"github.com/everestllcweb-png/backend/utils/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthMiddleware gates admin routes on the server-side session
type AuthMiddleware struct {
	sessions *session.Store
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// Required is middleware that rejects requests without an admin session.
// The route handler never runs for rejected requests.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := m.sessions.Get(c)
		if err != nil {
			log.Errorf("Failed to load session: %v", err)
			return response.InternalServerError(c, "Failed to load session")
		}

		adminID, _ := sess.Get(SessionAdminID).(string)
		if adminID == "" {
			return response.Unauthorized(c, "Unauthorized")
		}

		setAdmin(c, sess, adminID)
		return c.Next()
	}
}

// Optional is middleware that marks admin sessions without rejecting anyone
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := m.sessions.Get(c)
		if err != nil {
			log.Warnf("Failed to load session, continuing as public: %v", err)
			return c.Next()
		}

		if adminID, _ := sess.Get(SessionAdminID).(string); adminID != "" {
			setAdmin(c, sess, adminID)
		}
		return c.Next()
	}
}

func setAdmin(c *fiber.Ctx, sess *session.Session, adminID string) {
	c.Locals("is_admin", true)
	c.Locals("admin_id", adminID)
	if username, ok := sess.Get(SessionUsername).(string); ok {
		c.Locals("username", username)
	}
}

// IsAdmin reports whether the request carries an admin session
func IsAdmin(c *fiber.Ctx) bool {
	isAdmin, _ := c.Locals("is_admin").(bool)
	return isAdmin
}

// GetAdminID extracts the admin ID from context
func GetAdminID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals("admin_id").(string)
	return id, ok && id != ""
}

// GetUsername extracts the admin username from context
func GetUsername(c *fiber.Ctx) (string, bool) {
	username, ok := c.Locals("username").(string)
	return username, ok
}
