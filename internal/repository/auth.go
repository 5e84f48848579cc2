// Package repository provides PostgreSQL persistence for users, tokens,
// projects, and contact submissions.
package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresAuthRepository implements user and token persistence against a
// PostgreSQL database.
type PostgresAuthRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAuthRepository creates a new PostgresAuthRepository with the
// given database connection.
func NewPostgresAuthRepository(db *sql.DB) *PostgresAuthRepository {
	return &PostgresAuthRepository{DB: db}
}

// GetUser fetches a user's credentials by username. Returns sql.ErrNoRows
// wrapped when the user does not exist.
func (r *PostgresAuthRepository) GetUser(ctx context.Context, username string) (string, []byte, bool, error) {
	var (
		name    string
		hash    []byte
		isAdmin bool
	)
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT username, password_hash, is_admin FROM users WHERE username = $1`,
		username,
	).Scan(&name, &hash, &isAdmin)
	if err != nil {
		return "", nil, false, fmt.Errorf("get user: %w", err)
	}
	return name, hash, isAdmin, nil
}

// SaveToken records an issued bearer token for the given user.
func (r *PostgresAuthRepository) SaveToken(ctx context.Context, token, username string) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO tokens (token, username) VALUES ($1, $2)`,
		token, username,
	)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// LookupToken resolves a bearer token to the identity it was issued for.
// ok is false when the token is unknown.
func (r *PostgresAuthRepository) LookupToken(ctx context.Context, token string) (string, bool, bool, error) {
	var (
		username string
		isAdmin  bool
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT u.username, u.is_admin
		  FROM tokens t
		  JOIN users u ON u.username = t.username
		 WHERE t.token = $1
	`, token).Scan(&username, &isAdmin)
	if err == sql.ErrNoRows {
		return "", false, false, nil
	}
	if err != nil {
		return "", false, false, fmt.Errorf("lookup token: %w", err)
	}
	return username, isAdmin, true, nil
}

// DeleteToken revokes a bearer token. Unknown tokens are not an error.
func (r *PostgresAuthRepository) DeleteToken(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
