package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/interiorvision/interior/internal/middleware"
)

// NewRouter assembles the backend's routes.
//
// Reads (project and contact lists) require a valid token; mutations
// additionally require the admin flag. The login exchange and the public
// contact form are open.
func NewRouter(auth *AuthHandler, projects *ProjectHandler, contacts *ContactHandler, validator middleware.TokenValidator, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(log))

	jsonOnly := chiMiddleware.AllowContentType("application/json")

	r.Post("/api/login", auth.Login)
	r.With(jsonOnly).Post("/api/contact", contacts.Submit)

	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(validator))

		r.Get("/api/projects", projects.List)
		r.Get("/api/contacts", contacts.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Post("/api/projects/add", projects.Add)
			r.Post("/api/projects/delete", projects.Delete)
			r.With(jsonOnly).Post("/api/contacts/status", contacts.UpdateStatus)
			r.With(jsonOnly).Post("/api/contacts/delete", contacts.Delete)
		})
	})

	return r
}
