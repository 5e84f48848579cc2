package service

import (
	"context"
	"errors"
	"testing"

	"github.com/interiorvision/interior/internal/models"
)

// fakeContactRepo implements ContactRepository for testing.
type fakeContactRepo struct {
	contacts   []models.Contact
	listErr    error
	createErr  error
	updated    bool
	updateErr  error
	deleted    bool
	deleteErr  error
	createdIDs []string
}

func (f *fakeContactRepo) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return f.contacts, f.listErr
}

func (f *fakeContactRepo) CreateContact(ctx context.Context, id string, draft models.ContactDraft) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdIDs = append(f.createdIDs, id)
	return nil
}

func (f *fakeContactRepo) UpdateStatus(ctx context.Context, id string, newStatus models.ContactStatus) (bool, error) {
	return f.updated, f.updateErr
}

func (f *fakeContactRepo) DeleteContact(ctx context.Context, id string) (bool, error) {
	return f.deleted, f.deleteErr
}

func TestSubmit_AssignsID(t *testing.T) {
	repo := &fakeContactRepo{}
	s := NewContactService(repo)

	id, err := s.Submit(context.Background(), models.ContactDraft{
		Name:    "Ann",
		Email:   "ann@example.com",
		Message: "please call",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Error("expected an assigned id")
	}
	if len(repo.createdIDs) != 1 || repo.createdIDs[0] != id {
		t.Errorf("id not persisted: %v", repo.createdIDs)
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name  string
		draft models.ContactDraft
	}{
		{"missing name", models.ContactDraft{Email: "a@example.com"}},
		{"missing email", models.ContactDraft{Name: "Ann"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewContactService(&fakeContactRepo{})
			if _, err := s.Submit(context.Background(), tt.draft); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	s := NewContactService(&fakeContactRepo{updated: true})
	err := s.UpdateStatus(context.Background(), "c1", "closed")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	s := NewContactService(&fakeContactRepo{updated: false})
	err := s.UpdateStatus(context.Background(), "ghost", models.StatusArchived)
	if !errors.Is(err, ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactDelete(t *testing.T) {
	s := NewContactService(&fakeContactRepo{deleted: true})
	if err := s.Delete(context.Background(), "c3"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	s = NewContactService(&fakeContactRepo{deleted: false})
	if err := s.Delete(context.Background(), "ghost"); !errors.Is(err, ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}
}
