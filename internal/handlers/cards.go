package handlers

//go:generate mockgen -source=cards.go -destination=mock_cards_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// CardReader reads cards.
type CardReader interface {
	ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	GetCard(ctx context.Context, id string) (models.Card, error)
}

// CardWriter creates, edits and removes cards.
type CardWriter interface {
	CreateCard(ctx context.Context, in models.NewCard) (models.Card, error)
	UpdateCard(ctx context.Context, id string, changes models.CardChanges) (models.Card, error)
	DeleteCard(ctx context.Context, id string) error
}

// CardArchiver toggles the archived flag.
type CardArchiver interface {
	ArchiveCard(ctx context.Context, id string) (models.Card, error)
	UnarchiveCard(ctx context.Context, id string) (models.Card, error)
}

// CardService is everything the card routes need.
type CardService interface {
	CardReader
	CardWriter
	CardArchiver
}

// CreateCardRequest represents the JSON body for registering a card
// swagger:model CreateCardRequest
type CreateCardRequest struct {
	// Display name
	// required: true
	Name string `json:"name" example:"Coffee Shop"`

	// Card number, reference only
	Number string `json:"number,omitempty" example:"6035 1234"`

	// PIN
	PIN string `json:"pin,omitempty" example:"1234"`

	// Value loaded on the card, greater than 0
	// required: true
	InitialValue decimal.Decimal `json:"initialValue" swaggertype:"number" example:"50"`
}

// UpdateCardRequest is a partial card update; omitted fields are left as they are.
// swagger:model UpdateCardRequest
type UpdateCardRequest struct {
	Name         *string          `json:"name,omitempty" example:"Coffee Shop"`
	Number       *string          `json:"number,omitempty" example:"6035 1234"`
	PIN          *string          `json:"pin,omitempty" example:"1234"`
	InitialValue *decimal.Decimal `json:"initialValue,omitempty" swaggertype:"number" example:"75"`
}

// NewListCardsHandler returns the cards selected by status.
// @Summary List cards
// @Description Lists cards in creation order with balance, usage and last-used figures
// @Tags cards
// @Produce json
// @Param status query string false "active (default), archived or all" Enums(active, archived, all)
// @Success 200 {array} CardView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cards [get]
// @Security BearerAuth
func NewListCardsHandler(svc CardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := models.ParseCardFilter(r.URL.Query().Get("status"))
		if !ok {
			writeMessage(w, http.StatusBadRequest, "status must be active, archived or all")
			return
		}

		cards, err := svc.ListCards(r.Context(), filter)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newCardViews(cards))
	}
}

// NewGetCardHandler returns one card.
// @Summary Get card
// @Tags cards
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} CardView
// @Failure 404 {object} ErrorResponse
// @Router /cards/{cardID} [get]
// @Security BearerAuth
func NewGetCardHandler(svc CardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		card, err := svc.GetCard(r.Context(), chi.URLParam(r, "cardID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, NewCardView(card))
	}
}

// NewCreateCardHandler registers a new card.
// @Summary Create card
// @Tags cards
// @Accept json
// @Produce json
// @Param request body CreateCardRequest true "Card"
// @Success 201 {object} CardView
// @Failure 400 {object} ErrorResponse
// @Router /cards [post]
// @Security BearerAuth
func NewCreateCardHandler(svc CardWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		card, err := svc.CreateCard(r.Context(), models.NewCard{
			Name:         req.Name,
			Number:       req.Number,
			PIN:          req.PIN,
			InitialValue: req.InitialValue,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, NewCardView(card))
	}
}

// NewUpdateCardHandler changes the supplied card fields.
// @Summary Update card
// @Tags cards
// @Accept json
// @Produce json
// @Param cardID path string true "Card ID"
// @Param request body UpdateCardRequest true "Fields to change"
// @Success 200 {object} CardView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cards/{cardID} [patch]
// @Security BearerAuth
func NewUpdateCardHandler(svc CardWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateCardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		card, err := svc.UpdateCard(r.Context(), chi.URLParam(r, "cardID"), models.CardChanges{
			Name:         req.Name,
			Number:       req.Number,
			PIN:          req.PIN,
			InitialValue: req.InitialValue,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, NewCardView(card))
	}
}

// NewDeleteCardHandler removes a card and its transactions.
// @Summary Delete card
// @Tags cards
// @Param cardID path string true "Card ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /cards/{cardID} [delete]
// @Security BearerAuth
func NewDeleteCardHandler(svc CardWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteCard(r.Context(), chi.URLParam(r, "cardID")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewArchiveCardHandler hides a card from the active list.
// @Summary Archive card
// @Tags cards
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} CardView
// @Failure 404 {object} ErrorResponse
// @Router /cards/{cardID}/archive [post]
// @Security BearerAuth
func NewArchiveCardHandler(svc CardArchiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		card, err := svc.ArchiveCard(r.Context(), chi.URLParam(r, "cardID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, NewCardView(card))
	}
}

// NewUnarchiveCardHandler returns a card to the active list.
// @Summary Unarchive card
// @Tags cards
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} CardView
// @Failure 404 {object} ErrorResponse
// @Router /cards/{cardID}/unarchive [post]
// @Security BearerAuth
func NewUnarchiveCardHandler(svc CardArchiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		card, err := svc.UnarchiveCard(r.Context(), chi.URLParam(r, "cardID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, NewCardView(card))
	}
}

// RegisterCardRoutes registers the card routes
func RegisterCardRoutes(r chi.Router, svc CardService) {
	r.Get("/cards", NewListCardsHandler(svc))
	r.Post("/cards", NewCreateCardHandler(svc))
	r.Get("/cards/{cardID}", NewGetCardHandler(svc))
	r.Patch("/cards/{cardID}", NewUpdateCardHandler(svc))
	r.Delete("/cards/{cardID}", NewDeleteCardHandler(svc))
	r.Post("/cards/{cardID}/archive", NewArchiveCardHandler(svc))
	r.Post("/cards/{cardID}/unarchive", NewUnarchiveCardHandler(svc))
}
