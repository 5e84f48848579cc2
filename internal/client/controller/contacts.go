package controller

import (
	"context"
	"strings"

	"github.com/interiorvision/interior/internal/models"
)

// ContactsAPI is the slice of the backend client the contact controller uses.
type ContactsAPI interface {
	ListContacts(ctx context.Context, token string) ([]models.Contact, error)
	UpdateContactStatus(ctx context.Context, token, id string, newStatus models.ContactStatus) error
	DeleteContact(ctx context.Context, token, id string) error
}

// Contacts manages the admin contact-triage list. The filter value is a
// triage status (or FilterAll); search matches name, email, and message.
type Contacts struct {
	*Controller[models.Contact]
	api   ContactsAPI
	token TokenFunc
}

// NewContacts constructs a contact list controller.
func NewContacts(apiClient ContactsAPI, token TokenFunc) *Contacts {
	c := &Contacts{api: apiClient, token: token}
	c.Controller = newController(
		func(ctx context.Context) ([]models.Contact, error) {
			return apiClient.ListContacts(ctx, token())
		},
		matchContact,
	)
	return c
}

func matchContact(c models.Contact, filter, search string) bool {
	if filter != FilterAll && string(c.Status) != filter {
		return false
	}
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Email), q) ||
		strings.Contains(strings.ToLower(c.Message), q)
}

// UpdateStatus transitions a contact to newStatus. The local item is mutated
// only after the backend confirms; on failure the collection is unchanged and
// the error is returned for caller-level display.
func (c *Contacts) UpdateStatus(ctx context.Context, id string, newStatus models.ContactStatus) error {
	if err := c.api.UpdateContactStatus(ctx, c.token(), id, newStatus); err != nil {
		return err
	}
	c.updateWhere(
		func(item models.Contact) bool { return item.ID == id },
		func(item models.Contact) models.Contact {
			item.Status = newStatus
			return item
		},
	)
	return nil
}

// Delete removes the contact with the given id after the backend confirms.
// The caller is responsible for the destructive-action confirmation.
func (c *Contacts) Delete(ctx context.Context, id string) error {
	if err := c.api.DeleteContact(ctx, c.token(), id); err != nil {
		return err
	}
	c.removeWhere(func(item models.Contact) bool { return item.ID == id })
	return nil
}
