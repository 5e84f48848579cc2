package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/interiorvision/interior/internal/models"
)

// ErrContactNotFound is returned when a contact id matches no stored
// submission.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines the persistence operations required by the
// contact service.
type ContactRepository interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, id string, draft models.ContactDraft) error
	UpdateStatus(ctx context.Context, id string, newStatus models.ContactStatus) (bool, error)
	DeleteContact(ctx context.Context, id string) (bool, error)
}

// ContactService implements contact-submission operations by delegating to a
// ContactRepository.
type ContactService struct {
	repo ContactRepository
}

// NewContactService constructs a new ContactService using the provided
// repository.
func NewContactService(repo ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// List returns all submissions, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.repo.ListContacts(ctx)
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}

// Submit validates a public contact-form submission, assigns an id, and
// stores it with status new.
func (s *ContactService) Submit(ctx context.Context, draft models.ContactDraft) (string, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(draft.Email) == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	id := uuid.NewString()
	if err := s.repo.CreateContact(ctx, id, draft); err != nil {
		return "", err
	}
	return id, nil
}

// UpdateStatus transitions a submission to newStatus.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, newStatus models.ContactStatus) error {
	if !models.ValidStatus(newStatus) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, newStatus)
	}
	found, err := s.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return err
	}
	if !found {
		return ErrContactNotFound
	}
	return nil
}

// Delete removes a submission by id.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.DeleteContact(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrContactNotFound
	}
	return nil
}
