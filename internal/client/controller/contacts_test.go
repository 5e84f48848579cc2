package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiorvision/interior/internal/models"
)

// fakeContactsAPI implements ContactsAPI with scripted responses.
type fakeContactsAPI struct {
	list       func(ctx context.Context, token string) ([]models.Contact, error)
	updateErr  error
	deleteErr  error
	lastStatus models.ContactStatus
	lastID     string
}

func (f *fakeContactsAPI) ListContacts(ctx context.Context, token string) ([]models.Contact, error) {
	if f.list != nil {
		return f.list(ctx, token)
	}
	return nil, nil
}

func (f *fakeContactsAPI) UpdateContactStatus(ctx context.Context, token, id string, newStatus models.ContactStatus) error {
	f.lastID = id
	f.lastStatus = newStatus
	return f.updateErr
}

func (f *fakeContactsAPI) DeleteContact(ctx context.Context, token, id string) error {
	f.lastID = id
	return f.deleteErr
}

func sampleContacts() []models.Contact {
	return []models.Contact{
		{ID: "c3", Name: "Ann Meyer", Email: "ann@example.com", Message: "Kitchen remodel", Status: models.StatusNew, CreatedAt: "2026-08-01 10:00:00"},
		{ID: "c7", Name: "Bob Lane", Email: "bob@example.com", Message: "Office redesign quote", Status: models.StatusInProgress, CreatedAt: "2026-08-02 09:30:00"},
		{ID: "c8", Name: "Cay Drew", Email: "cay@example.com", Message: "Hotel lobby consult", Status: models.StatusNew, CreatedAt: "2026-08-03 14:15:00"},
	}
}

func TestContacts_Refresh_FailureKeepsPriorValue(t *testing.T) {
	api := &fakeContactsAPI{list: func(ctx context.Context, token string) ([]models.Contact, error) {
		return nil, errors.New("db down")
	}}
	c := NewContacts(api, staticToken("tok"))

	err := c.Refresh(context.Background())
	require.EqualError(t, err, "db down")
	// First load failed: items stay at their prior (empty) value.
	assert.Empty(t, c.Items())
	assert.EqualError(t, c.LastError(), "db down")
	assert.False(t, c.Loading())
	assert.Equal(t, StateError, c.State())
}

func TestContacts_UpdateStatus_MutatesOnlyStatus(t *testing.T) {
	api := &fakeContactsAPI{list: func(ctx context.Context, token string) ([]models.Contact, error) {
		return sampleContacts(), nil
	}}
	c := NewContacts(api, staticToken("tok"))
	require.NoError(t, c.Refresh(context.Background()))

	require.NoError(t, c.UpdateStatus(context.Background(), "c7", models.StatusCompleted))
	assert.Equal(t, "c7", api.lastID)

	items := c.Items()
	require.Len(t, items, 3)
	got := items[1]
	assert.Equal(t, models.StatusCompleted, got.Status)
	// Every other field of the item is untouched.
	assert.Equal(t, "Bob Lane", got.Name)
	assert.Equal(t, "bob@example.com", got.Email)
	assert.Equal(t, "Office redesign quote", got.Message)
	assert.Equal(t, "2026-08-02 09:30:00", got.CreatedAt)
	// And the neighbors are untouched entirely.
	assert.Equal(t, models.StatusNew, items[0].Status)
	assert.Equal(t, models.StatusNew, items[2].Status)
}

func TestContacts_UpdateStatus_FailureLeavesItems(t *testing.T) {
	api := &fakeContactsAPI{
		list: func(ctx context.Context, token string) ([]models.Contact, error) {
			return sampleContacts(), nil
		},
		updateErr: errors.New("contact not found"),
	}
	c := NewContacts(api, staticToken("tok"))
	require.NoError(t, c.Refresh(context.Background()))

	err := c.UpdateStatus(context.Background(), "c7", models.StatusArchived)
	require.EqualError(t, err, "contact not found")
	assert.Equal(t, models.StatusInProgress, c.Items()[1].Status)
}

func TestContacts_Delete_RemovesOnlyMatchingID(t *testing.T) {
	api := &fakeContactsAPI{list: func(ctx context.Context, token string) ([]models.Contact, error) {
		return sampleContacts(), nil
	}}
	c := NewContacts(api, staticToken("tok"))
	require.NoError(t, c.Refresh(context.Background()))

	require.NoError(t, c.Delete(context.Background(), "c3"))
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "c7", items[0].ID)
	assert.Equal(t, "c8", items[1].ID)
}

func TestContacts_FilterByStatusAndSearch(t *testing.T) {
	api := &fakeContactsAPI{list: func(ctx context.Context, token string) ([]models.Contact, error) {
		return sampleContacts(), nil
	}}
	c := NewContacts(api, staticToken("tok"))
	require.NoError(t, c.Refresh(context.Background()))

	c.SetFilter(string(models.StatusNew))
	visible := c.VisibleItems()
	require.Len(t, visible, 2)

	// Search is conjunctive with the status filter and matches the message.
	c.SetSearch("hotel")
	visible = c.VisibleItems()
	require.Len(t, visible, 1)
	assert.Equal(t, "c8", visible[0].ID)

	// Search by email fragment.
	c.SetFilter(FilterAll)
	c.SetSearch("BOB@")
	visible = c.VisibleItems()
	require.Len(t, visible, 1)
	assert.Equal(t, "c7", visible[0].ID)
}
