package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shineart/studiopos/internal/auth"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*auth.User, error) {
	query := `
		SELECT id, username, COALESCE(full_name, ''), COALESCE(role, 'staff'), password_hash
		FROM users
		WHERE username = $1 AND COALESCE(is_active, TRUE)
	`

	var u auth.User

	err := s.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.FullName, &u.Role, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, auth.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return &u, nil
}
