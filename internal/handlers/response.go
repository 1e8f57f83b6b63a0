package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-card-ledger/internal/services"
)

// ErrorResponse is the body of every non-2xx response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: not found: card "42"
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps ledger errors onto HTTP statuses. Internal failures are
// logged and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInsufficientBalance):
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
	default:
		reqID, _ := middlewares.RequestIDFromContext(r.Context())
		subject, _ := middlewares.SubjectFromContext(r.Context())
		logger.Log.Errorw("request failed",
			"method", r.Method,
			"uri", r.RequestURI,
			"request_id", reqID,
			"subject", subject,
			"error", err,
		)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
