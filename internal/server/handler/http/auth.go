package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/interiorvision/interior/internal/models"
	"github.com/interiorvision/interior/internal/service"
)

// AuthService defines the interface for authentication operations required
// by the HTTP handlers.
type AuthService interface {
	// Login verifies credentials and issues a session with a fresh token.
	Login(ctx context.Context, username, password string) (models.Session, error)
}

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// Login handles the form-encoded login exchange.
//
// The request carries username, password, and an isAdmin hint. The hint is
// accepted for contract compatibility and ignored: the admin flag in the
// response always comes from the stored account.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	_ = r.PostFormValue("isAdmin") // client hint, not trusted

	if username == "" || password == "" {
		writeFailure(w, http.StatusBadRequest, "username and password are required")
		return
	}

	sess, err := h.AuthService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeFailure(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		}
		writeFailure(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"username": sess.Username,
		"isAdmin":  sess.IsAdmin,
		"token":    sess.Token,
	})
}
