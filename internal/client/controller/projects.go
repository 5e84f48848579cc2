package controller

import (
	"context"
	"strings"

	"github.com/interiorvision/interior/internal/models"
)

// ProjectsAPI is the slice of the backend client the project controller uses.
type ProjectsAPI interface {
	ListProjects(ctx context.Context, token string) ([]models.Project, error)
	CreateProject(ctx context.Context, token string, draft models.ProjectDraft) (models.Project, error)
	DeleteProject(ctx context.Context, token string, id int64) error
}

// Projects manages the admin project list. The filter value is a category
// name (or FilterAll); search matches title and location.
type Projects struct {
	*Controller[models.Project]
	api   ProjectsAPI
	token TokenFunc
}

// NewProjects constructs a project list controller. token is consulted on
// every request so a re-login is picked up without rebuilding the controller.
func NewProjects(apiClient ProjectsAPI, token TokenFunc) *Projects {
	p := &Projects{api: apiClient, token: token}
	p.Controller = newController(
		func(ctx context.Context) ([]models.Project, error) {
			return apiClient.ListProjects(ctx, token())
		},
		matchProject,
	)
	return p
}

func matchProject(p models.Project, filter, search string) bool {
	if filter != FilterAll && string(p.Category) != filter {
		return false
	}
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Location), q)
}

// Create sends the draft to the backend and appends the confirmed project,
// carrying the server-assigned id, to the collection. On failure the
// collection is untouched and the error is returned to the caller.
func (p *Projects) Create(ctx context.Context, draft models.ProjectDraft) (models.Project, error) {
	created, err := p.api.CreateProject(ctx, p.token(), draft)
	if err != nil {
		return models.Project{}, err
	}
	p.appendItem(created)
	return created, nil
}

// Delete removes the project with the given id after the backend confirms.
// Callers are expected to have confirmed the destructive action with the
// user before invoking Delete.
func (p *Projects) Delete(ctx context.Context, id int64) error {
	if err := p.api.DeleteProject(ctx, p.token(), id); err != nil {
		return err
	}
	p.removeWhere(func(item models.Project) bool { return item.ID == id })
	return nil
}
