package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shineart/studiopos/internal/auth"
)

type Handler struct {
	users  auth.Repository
	tokens *auth.Tokens
	log    zerolog.Logger
}

func NewHandler(users auth.Repository, tokens *auth.Tokens, log zerolog.Logger) *Handler {
	return &Handler{users: users, tokens: tokens, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Role     auth.Role `json:"role"`
	IsAdmin  bool      `json:"is_admin"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Each request gets its own session; the token carries the identity
	// afterwards.
	u, err := auth.NewSession(h.users).Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			http.Error(w, "invalid username or password", http.StatusUnauthorized)
			return
		}

		h.log.Error().Err(err).Msg("login failed")
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	token, exp, err := h.tokens.Issue(u)
	if err != nil {
		h.log.Error().Err(err).Msg("issuing token")
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(loginResponse{
		Token:     token,
		ExpiresAt: exp,
		User: userResponse{
			ID:       u.ID,
			Username: u.Username,
			FullName: u.FullName,
			Role:     u.Role,
			IsAdmin:  u.IsAdmin(),
		},
	}); err != nil {
		h.log.Error().Err(err).Msg("failed to encode response")
	}
}
