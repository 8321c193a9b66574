// internal/api/handler/admin.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nilebank/internal/service"
)

// AdminHandler handles the admin-facing directory endpoints.
type AdminHandler struct {
	directory service.DirectoryService
	logger    *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(directory service.DirectoryService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		directory: directory,
		logger:    logger,
	}
}

// CustomerSummary is the directory row shown to admins.
type CustomerSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone_number"`
	IsLocked   bool   `json:"is_locked"`
}

// ListCustomers returns all registered customers in insertion order.
// GET /admin/customers
func (h *AdminHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	users, err := h.directory.ListCustomers(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	customers := make([]CustomerSummary, len(users))
	for i, u := range users {
		customers[i] = CustomerSummary{
			ID:         u.ID,
			Name:       u.Name,
			NationalID: u.NationalID,
			Phone:      u.PhoneNumber,
			IsLocked:   u.IsLocked,
		}
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"customers": customers})
}

// CreateCustomer lets an admin register a customer.
// POST /admin/customers
func (h *AdminHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.incomplete() {
		respondWithJSON(w, h.logger, http.StatusBadRequest, map[string]string{"error": "all fields are required"})
		return
	}

	user, err := h.directory.RegisterCustomer(r.Context(), req.Name, req.NationalID, req.Phone, req.Password)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"message": "Customer added",
		"user_id": user.ID,
	})
}

// ResetPasswordRequest represents the request body for a password reset.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword overwrites a user's password.
// POST /admin/users/{userID}/password
func (h *AdminHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		respondWithJSON(w, h.logger, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	if err := h.directory.ResetPassword(r.Context(), userID, req.Password); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}

// Lock marks a user account as locked.
// POST /admin/users/{userID}/lock
func (h *AdminHandler) Lock(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}
	if err := h.directory.Lock(r.Context(), userID); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Account locked"})
}

// Unlock clears the locked flag on a user account.
// POST /admin/users/{userID}/unlock
func (h *AdminHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}
	if err := h.directory.Unlock(r.Context(), userID); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Account unlocked"})
}

// Delete removes a user and their account. Transaction history is kept.
// DELETE /admin/users/{userID}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDParam(w, r)
	if !ok {
		return
	}
	if err := h.directory.DeleteUser(r.Context(), userID); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": "User deleted"})
}

func (h *AdminHandler) userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		respondWithJSON(w, h.logger, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return 0, false
	}
	return userID, true
}
