// internal/api/handler/auth.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"nilebank/internal/auth"
	"nilebank/internal/domain"
	"nilebank/internal/service"
)

// AuthHandler handles registration and sign-in.
type AuthHandler struct {
	directory service.DirectoryService
	tokens    *auth.TokenManager
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(directory service.DirectoryService, tokens *auth.TokenManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		directory: directory,
		tokens:    tokens,
		logger:    logger,
	}
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone_number"`
	Password   string `json:"password"`
}

func (r RegisterRequest) incomplete() bool {
	return r.Name == "" || r.NationalID == "" || r.Phone == "" || r.Password == ""
}

// RegisterCustomer handles customer sign-up.
// POST /auth/register
func (h *AuthHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, domain.RoleCustomer)
}

// RegisterAdmin handles admin sign-up.
// POST /auth/admin/register
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, domain.RoleAdmin)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, role domain.Role) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.incomplete() {
		respondWithJSON(w, h.logger, http.StatusBadRequest, map[string]string{"error": "all fields are required"})
		return
	}

	var user *domain.User
	var err error
	if role == domain.RoleAdmin {
		user, err = h.directory.RegisterAdmin(r.Context(), req.Name, req.NationalID, req.Phone, req.Password)
	} else {
		user, err = h.directory.RegisterCustomer(r.Context(), req.Name, req.NationalID, req.Phone, req.Password)
	}
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"message": "Registration successful",
		"user_id": user.ID,
	})
}

// LoginRequest represents the request body for sign-in.
type LoginRequest struct {
	Name     string      `json:"name"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// Login authenticates a user and returns a session token.
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, h.logger, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}
	if req.Role == "" {
		req.Role = domain.RoleCustomer
	}
	if !req.Role.Valid() || req.Name == "" || req.Password == "" {
		respondWithJSON(w, h.logger, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	user, err := h.directory.Authenticate(r.Context(), req.Name, req.Password, req.Role)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		h.logger.Error("Failed to generate token", "error", err)
		respondWithJSON(w, h.logger, http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"token":   token,
		"user_id": user.ID,
		"role":    user.Role,
	})
}
