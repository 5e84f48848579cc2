// Package auth implements the login exchange against the backend identity
// endpoint and turns its response into a stored session.
package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/interiorvision/interior/internal/client/api"
	"github.com/interiorvision/interior/internal/models"
)

// LoginAPI is the slice of the backend client the gateway needs.
type LoginAPI interface {
	// Login exchanges credentials for a normalized login result.
	Login(ctx context.Context, username, password string, requestedAdmin bool) (api.LoginResult, error)
}

// SessionStore is the slice of the session store the gateway needs.
type SessionStore interface {
	// Set replaces the current session.
	Set(models.Session)
	// Clear removes the current session.
	Clear()
}

// Gateway performs logins and owns the session-store side effect. Failed
// logins never touch the store; concurrent logins are not de-duplicated, the
// last response to arrive wins.
type Gateway struct {
	api   LoginAPI
	store SessionStore
	log   *zap.Logger
}

// New constructs a Gateway. log may be nil.
func New(client LoginAPI, store SessionStore, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{api: client, store: store, log: log}
}

// Login authenticates against the backend. The requestedAdmin flag is sent
// as a hint only; the returned session's IsAdmin comes from the server's
// response. On success the session is stored before Login returns.
func (g *Gateway) Login(ctx context.Context, username, password string, requestedAdmin bool) (models.Session, error) {
	res, err := g.api.Login(ctx, username, password, requestedAdmin)
	if err != nil {
		g.log.Debug("login failed", zap.String("username", username), zap.Error(err))
		return models.Session{}, err
	}

	sess := models.Session{
		Username: res.Username,
		IsAdmin:  res.IsAdmin,
		Token:    res.Token,
	}
	g.store.Set(sess)
	g.log.Debug("login succeeded",
		zap.String("username", sess.Username),
		zap.Bool("isAdmin", sess.IsAdmin),
	)
	return sess, nil
}

// Logout clears the stored session. Idempotent.
func (g *Gateway) Logout() {
	g.store.Clear()
	g.log.Debug("logged out")
}
