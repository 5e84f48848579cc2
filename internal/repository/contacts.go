package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/interiorvision/interior/internal/models"
)

// PostgresContactRepository implements contact-submission persistence against
// a PostgreSQL database.
type PostgresContactRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresContactRepository creates a new PostgresContactRepository using
// the provided *sql.DB.
func NewPostgresContactRepository(db *sql.DB) *PostgresContactRepository {
	return &PostgresContactRepository{DB: db}
}

// ListContacts fetches all contact submissions, newest first.
func (r *PostgresContactRepository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, phone, service, message, status, created_at
		  FROM contacts ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var (
			c       models.Contact
			phone   sql.NullString
			service sql.NullString
			created time.Time
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &phone, &service, &c.Message, &c.Status, &created); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		c.Phone = phone.String
		c.Service = service.String
		c.CreatedAt = created.Format("2006-01-02 15:04:05")
		if !models.ValidStatus(c.Status) {
			c.Status = models.StatusNew
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// CreateContact inserts a new submission with the given id and status new.
func (r *PostgresContactRepository) CreateContact(ctx context.Context, id string, draft models.ContactDraft) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO contacts (id, name, email, phone, service, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`, id, draft.Name, draft.Email, draft.Phone, draft.Service, draft.Message, string(models.StatusNew))
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

// UpdateStatus transitions a contact to newStatus. found is false when no row
// matched.
func (r *PostgresContactRepository) UpdateStatus(ctx context.Context, id string, newStatus models.ContactStatus) (bool, error) {
	res, err := r.DB.ExecContext(
		ctx,
		`UPDATE contacts SET status = $2 WHERE id = $1`,
		id, string(newStatus),
	)
	if err != nil {
		return false, fmt.Errorf("update contact status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update contact status: %w", err)
	}
	return rows > 0, nil
}

// DeleteContact removes a submission by id. found is false when no row
// matched.
func (r *PostgresContactRepository) DeleteContact(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}
	return rows > 0, nil
}
