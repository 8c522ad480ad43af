package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// Session keys written on login
const (
	SessionAdminID  = "admin_id"
	SessionUsername = "username"
)

const (
	// SessionCookieName is the cookie carrying the session id
	SessionCookieName = "sid"
	// SessionLifetime is how long an admin stays signed in
	SessionLifetime = 7 * 24 * time.Hour
)

// SessionConfig controls the session cookie
type SessionConfig struct {
	// Secure issues Secure + SameSite=None cookies so a frontend on another
	// site can send them over HTTPS
	Secure bool
	// Storage persists sessions; nil uses fiber's in-memory storage
	Storage fiber.Storage
}

// NewSessionStore creates the session store shared by the auth guard and the auth handlers
func NewSessionStore(config SessionConfig) *session.Store {
	sameSite := "Lax"
	if config.Secure {
		sameSite = "None"
	}

	return session.New(session.Config{
		Expiration:     SessionLifetime,
		Storage:        config.Storage,
		KeyLookup:      "cookie:" + SessionCookieName,
		CookiePath:     "/",
		CookieSecure:   config.Secure,
		CookieHTTPOnly: true,
		CookieSameSite: sameSite,
		KeyGenerator:   uuid.NewString,
	})
}
