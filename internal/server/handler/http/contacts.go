package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/interiorvision/interior/internal/models"
	"github.com/interiorvision/interior/internal/service"
)

// ContactService defines the interface for contact-submission operations
// required by the HTTP handlers.
type ContactService interface {
	List(ctx context.Context) ([]models.Contact, error)
	Submit(ctx context.Context, draft models.ContactDraft) (string, error)
	UpdateStatus(ctx context.Context, id string, newStatus models.ContactStatus) error
	Delete(ctx context.Context, id string) error
}

// ContactHandler handles the contact triage and public submission endpoints.
type ContactHandler struct {
	// ContactService performs the underlying contact operations.
	ContactService ContactService
}

// List responds with all submissions wrapped in the success envelope.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.ContactService.List(r.Context())
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"contacts": contacts,
	})
}

// Submit handles the public contact form. No authentication.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var draft models.ContactDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request")
		return
	}

	id, err := h.ContactService.Submit(r.Context(), draft)
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

// UpdateStatus handles the JSON status-transition request.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContactID models.FlexString    `json:"contact_id"`
		Status    models.ContactStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ContactID == "" {
		writeFailure(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.ContactService.UpdateStatus(r.Context(), string(req.ContactID), req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeFailure(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrContactNotFound):
			writeFailure(w, http.StatusNotFound, service.ErrContactNotFound.Error())
		default:
			writeFailure(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete handles the JSON delete-contact request.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContactID models.FlexString `json:"contact_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ContactID == "" {
		writeFailure(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.ContactService.Delete(r.Context(), string(req.ContactID)); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			writeFailure(w, http.StatusNotFound, service.ErrContactNotFound.Error())
			return
		}
		writeFailure(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
