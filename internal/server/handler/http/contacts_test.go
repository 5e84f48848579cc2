package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/interiorvision/interior/internal/models"
	"github.com/interiorvision/interior/internal/service"
)

// fakeContactService implements ContactService for testing.
type fakeContactService struct {
	contacts  []models.Contact
	listErr   error
	submitID  string
	submitErr error
	updateErr error
	deleteErr error

	lastStatusID string
	lastStatus   models.ContactStatus
	lastDeleteID string
}

func (f *fakeContactService) List(ctx context.Context) ([]models.Contact, error) {
	return f.contacts, f.listErr
}

func (f *fakeContactService) Submit(ctx context.Context, draft models.ContactDraft) (string, error) {
	return f.submitID, f.submitErr
}

func (f *fakeContactService) UpdateStatus(ctx context.Context, id string, newStatus models.ContactStatus) error {
	f.lastStatusID = id
	f.lastStatus = newStatus
	return f.updateErr
}

func (f *fakeContactService) Delete(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func jsonReq(path, body string) *http.Request {
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestContactHandler_List(t *testing.T) {
	svc := &fakeContactService{contacts: []models.Contact{
		{ID: "c1", Name: "Ada", Status: models.StatusNew},
		{ID: "c2", Name: "Linus", Status: models.StatusCompleted},
	}}

	rec := httptest.NewRecorder()
	h := &ContactHandler{ContactService: svc}
	h.List(rec, httptest.NewRequest("GET", "/api/contacts", nil))
	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}

	var payload struct {
		Success  bool             `json:"success"`
		Contacts []models.Contact `json:"contacts"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if !payload.Success {
		t.Error("expected success=true")
	}
	if len(payload.Contacts) != 2 || payload.Contacts[0].ID != "c1" {
		t.Errorf("unexpected contacts: %+v", payload.Contacts)
	}
}

func TestContactHandler_Submit(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeContactService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeContactService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "validation failure",
			body:           `{"name":"","email":""}`,
			service:        &fakeContactService{submitErr: service.ErrInvalidInput},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid input",
		},
		{
			name:           "service failure",
			body:           `{"name":"Ada","email":"ada@example.com"}`,
			service:        &fakeContactService{submitErr: errors.New("db down")},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "internal error",
		},
		{
			name:           "success",
			body:           `{"name":"Ada","email":"ada@example.com","message":"hello"}`,
			service:        &fakeContactService{submitID: "c-77"},
			expectedCode:   http.StatusOK,
			expectedSubstr: `"id":"c-77"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h := &ContactHandler{ContactService: tt.service}
			h.Submit(rec, jsonReq("/api/contact", tt.body))
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}
			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, buf.String())
			}
		})
	}
}

func TestContactHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeContactService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `{`,
			service:        &fakeContactService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "missing contact id",
			body:           `{"status":"in_progress"}`,
			service:        &fakeContactService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "unknown status",
			body:           `{"contact_id":"c1","status":"bogus"}`,
			service:        &fakeContactService{updateErr: service.ErrInvalidInput},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid input",
		},
		{
			name:           "not found",
			body:           `{"contact_id":"nope","status":"in_progress"}`,
			service:        &fakeContactService{updateErr: service.ErrContactNotFound},
			expectedCode:   http.StatusNotFound,
			expectedSubstr: "contact not found",
		},
		{
			name:           "success",
			body:           `{"contact_id":"c1","status":"completed"}`,
			service:        &fakeContactService{},
			expectedCode:   http.StatusOK,
			expectedSubstr: `"success":true`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h := &ContactHandler{ContactService: tt.service}
			h.UpdateStatus(rec, jsonReq("/api/contacts/status", tt.body))
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}
			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, buf.String())
			}
		})
	}
}

func TestContactHandler_UpdateStatus_NumericID(t *testing.T) {
	svc := &fakeContactService{}
	rec := httptest.NewRecorder()
	h := &ContactHandler{ContactService: svc}
	// Legacy clients send the contact id as a bare number.
	h.UpdateStatus(rec, jsonReq("/api/contacts/status", `{"contact_id":12,"status":"in_progress"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if svc.lastStatusID != "12" {
		t.Errorf("expected contact id %q, got %q", "12", svc.lastStatusID)
	}
	if svc.lastStatus != models.StatusInProgress {
		t.Errorf("expected status in_progress, got %q", svc.lastStatus)
	}
}

func TestContactHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeContactService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "missing contact id",
			body:           `{}`,
			service:        &fakeContactService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "not found",
			body:           `{"contact_id":"nope"}`,
			service:        &fakeContactService{deleteErr: service.ErrContactNotFound},
			expectedCode:   http.StatusNotFound,
			expectedSubstr: "contact not found",
		},
		{
			name:           "success",
			body:           `{"contact_id":"c2"}`,
			service:        &fakeContactService{},
			expectedCode:   http.StatusOK,
			expectedSubstr: `"success":true`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h := &ContactHandler{ContactService: tt.service}
			h.Delete(rec, jsonReq("/api/contacts/delete", tt.body))
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}
			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, buf.String())
			}
		})
	}
}
