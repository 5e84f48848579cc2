package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/interiorvision/interior/internal/models"
)

// ErrProjectNotFound is returned when a project id matches no stored project.
var ErrProjectNotFound = errors.New("project not found")

// ErrInvalidInput marks client-supplied data rejected before it reaches
// persistence.
var ErrInvalidInput = errors.New("invalid input")

// ProjectRepository defines the persistence operations required by the
// project service.
type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, draft models.ProjectDraft) (int64, error)
	DeleteProject(ctx context.Context, id int64) (bool, error)
}

// ProjectService implements project operations by delegating to a
// ProjectRepository.
type ProjectService struct {
	repo ProjectRepository
}

// NewProjectService constructs a new ProjectService using the provided
// repository.
func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// List returns all projects in stable server order.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// Create validates the draft and stores it, returning the assigned id.
func (s *ProjectService) Create(ctx context.Context, draft models.ProjectDraft) (int64, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return 0, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !models.ValidCategory(draft.Category) {
		return 0, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, draft.Category)
	}
	if draft.Rating < 0 || draft.Rating > 5 {
		return 0, fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}
	return s.repo.CreateProject(ctx, draft)
}

// Delete removes a project by id.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.DeleteProject(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrProjectNotFound
	}
	return nil
}
