package handlers

//go:generate mockgen -source=transactions.go -destination=mock_transactions_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// TransactionService records, edits and removes spends.
type TransactionService interface {
	AddTransaction(ctx context.Context, cardID string, in models.NewTransaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, cardID, transactionID string, changes models.TransactionChanges) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, cardID, transactionID string) error
}

// AddTransactionRequest represents the JSON body for recording a spend
// swagger:model AddTransactionRequest
type AddTransactionRequest struct {
	// What was bought
	// required: true
	Description string `json:"description" example:"Latte"`

	// Where it was bought
	Location string `json:"location,omitempty" example:"Main St"`

	// Amount spent, greater than 0 and not above the balance
	// required: true
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"4.5"`
}

// UpdateTransactionRequest is a partial transaction update.
// swagger:model UpdateTransactionRequest
type UpdateTransactionRequest struct {
	Description *string          `json:"description,omitempty" example:"Flat white"`
	Amount      *decimal.Decimal `json:"amount,omitempty" swaggertype:"number" example:"5"`
}

// NewAddTransactionHandler records a spend against a card.
// @Summary Add transaction
// @Description Records a spend dated now. Fails with 422 when the amount exceeds the balance.
// @Tags transactions
// @Accept json
// @Produce json
// @Param cardID path string true "Card ID"
// @Param request body AddTransactionRequest true "Transaction"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /cards/{cardID}/transactions [post]
// @Security BearerAuth
func NewAddTransactionHandler(svc TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		txn, err := svc.AddTransaction(r.Context(), chi.URLParam(r, "cardID"), models.NewTransaction{
			Description: req.Description,
			Location:    req.Location,
			Amount:      req.Amount,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, txn)
	}
}

// NewUpdateTransactionHandler changes a transaction's description or amount.
// @Summary Update transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param cardID path string true "Card ID"
// @Param transactionID path string true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cards/{cardID}/transactions/{transactionID} [patch]
// @Security BearerAuth
func NewUpdateTransactionHandler(svc TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		txn, err := svc.UpdateTransaction(r.Context(),
			chi.URLParam(r, "cardID"),
			chi.URLParam(r, "transactionID"),
			models.TransactionChanges{Description: req.Description, Amount: req.Amount},
		)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, txn)
	}
}

// NewDeleteTransactionHandler removes a transaction.
// @Summary Delete transaction
// @Tags transactions
// @Param cardID path string true "Card ID"
// @Param transactionID path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /cards/{cardID}/transactions/{transactionID} [delete]
// @Security BearerAuth
func NewDeleteTransactionHandler(svc TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.DeleteTransaction(r.Context(), chi.URLParam(r, "cardID"), chi.URLParam(r, "transactionID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterTransactionRoutes registers the transaction routes
func RegisterTransactionRoutes(r chi.Router, svc TransactionService) {
	r.Post("/cards/{cardID}/transactions", NewAddTransactionHandler(svc))
	r.Patch("/cards/{cardID}/transactions/{transactionID}", NewUpdateTransactionHandler(svc))
	r.Delete("/cards/{cardID}/transactions/{transactionID}", NewDeleteTransactionHandler(svc))
}
