package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/everestllcweb-png/backend/database"
	"github.com/everestllcweb-png/backend/model"
	"github.com/everestllcweb-png/backend/utils/auth"
	"github.com/gofiber/fiber/v2/log"
)

// InvalidCredentialsMessage is returned for every failed login, whatever the cause
const InvalidCredentialsMessage = "Invalid credentials"

// AuthService verifies admin credentials against the stored password hashes
type AuthService struct {
	admins database.Repository[model.Admin]
}

// NewAuthService creates a new auth service
func NewAuthService(admins database.Repository[model.Admin]) *AuthService {
	return &AuthService{admins: admins}
}

// Login returns the admin matching username and password. Unknown usernames
// and wrong passwords fail the same way and take comparable time.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		auth.BurnComparison(password)
		return nil, NewError(ErrUnauthorized, InvalidCredentialsMessage, nil)
	}

	admin, err := s.admins.FindOne(ctx, database.Filter{"username": username})
	if errors.Is(err, database.ErrNotFound) {
		auth.BurnComparison(password)
		return nil, NewError(ErrUnauthorized, InvalidCredentialsMessage, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := auth.VerifyPassword(admin.PasswordHash, password); err != nil {
		log.Warnf("Failed login for admin %q", username)
		return nil, NewError(ErrUnauthorized, InvalidCredentialsMessage, nil)
	}
	return admin, nil
}

// Me returns the admin behind a session
func (s *AuthService) Me(ctx context.Context, adminID string) (*model.Admin, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, NewError(ErrUnauthorized, "Unauthorized", nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin: %w", err)
	}
	return admin, nil
}
