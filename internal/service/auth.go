// Package service provides the backend business logic for authentication,
// project management, and contact triage, delegating persistence to
// repository interfaces.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/interiorvision/interior/internal/models"
)

// ErrInvalidCredentials is returned when the username is unknown or the
// password does not match. Callers must not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthRepository defines the persistence operations required by the
// authentication service.
type AuthRepository interface {
	// GetUser fetches a user's username, password hash, and admin flag.
	GetUser(ctx context.Context, username string) (string, []byte, bool, error)
	// SaveToken records an issued bearer token for the user.
	SaveToken(ctx context.Context, token, username string) error
	// LookupToken resolves a bearer token to an identity.
	LookupToken(ctx context.Context, token string) (username string, isAdmin bool, ok bool, err error)
	// DeleteToken revokes a bearer token.
	DeleteToken(ctx context.Context, token string) error
}

// AuthService implements login and token validation by delegating to an
// AuthRepository.
type AuthService struct {
	repo AuthRepository
}

// NewAuthService constructs a new AuthService using the provided repository.
func NewAuthService(repo AuthRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Login verifies the credentials and issues a fresh bearer token. The admin
// flag in the returned session is the stored one; whatever the client
// asserted at login never influences it.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.Session, error) {
	name, hash, isAdmin, err := s.repo.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrInvalidCredentials
		}
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return models.Session{}, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.repo.SaveToken(ctx, token, name); err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}
	return models.Session{Username: name, IsAdmin: isAdmin, Token: token}, nil
}

// LookupToken resolves a bearer token to the identity it was issued for.
// It satisfies the token-auth middleware's validator interface.
func (s *AuthService) LookupToken(ctx context.Context, token string) (string, bool, bool, error) {
	return s.repo.LookupToken(ctx, token)
}

// Logout revokes the given token. Revoking an unknown token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.repo.DeleteToken(ctx, token)
}
