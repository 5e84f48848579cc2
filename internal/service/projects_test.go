package service

import (
	"context"
	"errors"
	"testing"

	"github.com/interiorvision/interior/internal/models"
)

// fakeProjectRepo implements ProjectRepository for testing.
type fakeProjectRepo struct {
	projects  []models.Project
	listErr   error
	createdID int64
	createErr error
	deleted   bool
	deleteErr error
	created   []models.ProjectDraft
}

func (f *fakeProjectRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	return f.projects, f.listErr
}

func (f *fakeProjectRepo) CreateProject(ctx context.Context, draft models.ProjectDraft) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, draft)
	return f.createdID, nil
}

func (f *fakeProjectRepo) DeleteProject(ctx context.Context, id int64) (bool, error) {
	return f.deleted, f.deleteErr
}

func TestProjectList_NilBecomesEmpty(t *testing.T) {
	s := NewProjectService(&fakeProjectRepo{})
	projects, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if projects == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestProjectCreate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		draft models.ProjectDraft
	}{
		{"empty title", models.ProjectDraft{Category: models.CategoryRetail}},
		{"unknown category", models.ProjectDraft{Title: "x", Category: "industrial"}},
		{"rating out of range", models.ProjectDraft{Title: "x", Category: models.CategoryRetail, Rating: 5.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeProjectRepo{createdID: 1}
			s := NewProjectService(repo)
			_, err := s.Create(context.Background(), tt.draft)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if len(repo.created) != 0 {
				t.Error("invalid draft must not reach the repository")
			}
		})
	}
}

func TestProjectCreate_Success(t *testing.T) {
	repo := &fakeProjectRepo{createdID: 42}
	s := NewProjectService(repo)

	id, err := s.Create(context.Background(), models.ProjectDraft{
		Title:    "Beach House",
		Category: models.CategoryResidential,
		Year:     2024,
		Rating:   4.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d; want 42", id)
	}
}

func TestProjectDelete_NotFound(t *testing.T) {
	s := NewProjectService(&fakeProjectRepo{deleted: false})
	err := s.Delete(context.Background(), 99)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectDelete_Success(t *testing.T) {
	s := NewProjectService(&fakeProjectRepo{deleted: true})
	if err := s.Delete(context.Background(), 5); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
