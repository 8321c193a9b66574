// internal/api/handler/ledger.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"nilebank/internal/api/types"
	"nilebank/internal/domain"
	"nilebank/internal/service"
)

// LedgerHandler handles HTTP requests for balance operations on the
// caller's own account.
type LedgerHandler struct {
	ledger service.LedgerService
	logger *slog.Logger
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger service.LedgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger: ledger,
		logger: logger,
	}
}

// MutationRequest represents the request body for deposit and withdraw.
type MutationRequest struct {
	Pool   domain.Pool     `json:"pool"`
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest represents the request body for transfer.
type TransferRequest struct {
	FromPool domain.Pool     `json:"from_pool"`
	ToPool   domain.Pool     `json:"to_pool"`
	Amount   decimal.Decimal `json:"amount"`
}

// Balances returns the caller's current pool balances.
// GET /account/balances
func (h *LedgerHandler) Balances(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	account, err := h.ledger.Balances(r.Context(), identity.UserID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"credit":         account.Credit,
		"wallet_balance": account.WalletBalance,
	})
}

// Deposit handles the deposit money request.
// POST /account/deposit
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req MutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, h.logger, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	account, record, err := h.ledger.Deposit(r.Context(), identity.UserID, req.Pool, req.Amount)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":        "Deposit successful",
		"transaction_id": record.ID,
		"credit":         account.Credit,
		"wallet_balance": account.WalletBalance,
	})
}

// Withdraw handles the withdraw money request.
// POST /account/withdraw
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req MutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, h.logger, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	account, record, err := h.ledger.Withdraw(r.Context(), identity.UserID, req.Pool, req.Amount)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":        "Withdrawal successful",
		"transaction_id": record.ID,
		"credit":         account.Credit,
		"wallet_balance": account.WalletBalance,
	})
}

// Transfer handles moving funds between the caller's two pools.
// POST /account/transfer
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, h.logger, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	account, record, err := h.ledger.Transfer(r.Context(), identity.UserID, req.FromPool, req.ToPool, req.Amount)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":        "Transfer successful",
		"transaction_id": record.ID,
		"credit":         account.Credit,
		"wallet_balance": account.WalletBalance,
	})
}

// History returns the caller's transaction history, newest first.
// GET /account/transactions
func (h *LedgerHandler) History(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	records, totalCount, err := h.ledger.History(r.Context(), identity.UserID, limit, offset)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.PaginatedResponse[domain.TransactionRecord]{
		Data:       records,
		Limit:      limit,
		Offset:     offset,
		TotalCount: totalCount,
	})
}
