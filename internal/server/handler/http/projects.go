package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/interiorvision/interior/internal/models"
	"github.com/interiorvision/interior/internal/service"
)

// ProjectService defines the interface for project operations required by
// the HTTP handlers.
type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, draft models.ProjectDraft) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectHandler handles the project management endpoints.
type ProjectHandler struct {
	// ProjectService performs the underlying project operations.
	ProjectService ProjectService
}

// List responds with the full project collection as a JSON array.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ProjectService.List(r.Context())
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// Add handles the form-encoded create-project request and responds with the
// server-assigned id.
func (h *ProjectHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request")
		return
	}

	year, _ := strconv.Atoi(r.PostFormValue("year"))
	rating, _ := strconv.ParseFloat(r.PostFormValue("rating"), 64)
	draft := models.ProjectDraft{
		Title:    r.PostFormValue("title"),
		Category: models.Category(r.PostFormValue("category")),
		Location: r.PostFormValue("location"),
		Year:     year,
		Image:    r.PostFormValue("image"),
		Rating:   rating,
	}

	id, err := h.ProjectService.Create(r.Context(), draft)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			writeFailure(w, http.StatusBadRequest, err.Error())
			return
		}
		writeFailure(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      id,
	})
}

// Delete handles the form-encoded delete-project request.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request")
		return
	}
	id, err := strconv.ParseInt(r.PostFormValue("id"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.ProjectService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			writeFailure(w, http.StatusNotFound, service.ErrProjectNotFound.Error())
			return
		}
		writeFailure(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
