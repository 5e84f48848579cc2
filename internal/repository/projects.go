package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/interiorvision/interior/internal/models"
)

// PostgresProjectRepository implements project persistence against a
// PostgreSQL database.
type PostgresProjectRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresProjectRepository creates a new PostgresProjectRepository using
// the provided *sql.DB.
func NewPostgresProjectRepository(db *sql.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{DB: db}
}

// ListProjects fetches all projects in id order. The order is what clients
// render, so it stays stable across calls.
func (r *PostgresProjectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, category, location, year, image, rating
		  FROM projects ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var (
			p      models.Project
			rating sql.NullFloat64
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Location, &p.Year, &p.Image, &rating); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if rating.Valid {
			p.Rating = rating.Float64
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// CreateProject inserts a draft and returns the server-assigned id.
func (r *PostgresProjectRepository) CreateProject(ctx context.Context, draft models.ProjectDraft) (int64, error) {
	var rating sql.NullFloat64
	if draft.Rating > 0 {
		rating = sql.NullFloat64{Float64: draft.Rating, Valid: true}
	}
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO projects (title, category, location, year, image, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, draft.Title, string(draft.Category), draft.Location, draft.Year, draft.Image, rating).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}
	return id, nil
}

// DeleteProject removes a project by id. found is false when no row matched.
func (r *PostgresProjectRepository) DeleteProject(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return rows > 0, nil
}
