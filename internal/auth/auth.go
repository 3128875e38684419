// Package auth verifies operator credentials and issues API tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

type User struct {
	ID           uuid.UUID
	Username     string
	FullName     string
	Role         Role
	PasswordHash string
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

//go:generate mockgen -source=auth.go -destination=repository_mock.go -package=auth
type Repository interface {
	// GetUserByUsername returns ErrNotFound for unknown or disabled users.
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// Session holds the operator signed in at this workstation.
type Session struct {
	repo Repository

	mu      sync.RWMutex
	current *User
}

func NewSession(repo Repository) *Session {
	return &Session{repo: repo}
}

// Authenticate checks the credentials and, on success, makes the user the
// current one. Unknown users and wrong passwords both yield
// ErrInvalidCredentials.
func (s *Session) Authenticate(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !VerifyPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	signedIn := *u
	signedIn.PasswordHash = ""

	s.mu.Lock()
	s.current = &signedIn
	s.mu.Unlock()

	return s.Current(), nil
}

// Current returns a copy of the signed-in user, or nil.
func (s *Session) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}

	u := *s.current

	return &u
}

func (s *Session) IsAdmin() bool {
	u := s.Current()
	return u != nil && u.IsAdmin()
}

// Logout clears the session.
func (s *Session) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}
