package handlers

//go:generate mockgen -source=data.go -destination=mock_data_test.go -package=handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

const maxUploadSize = 10 << 20

// DataTransferer moves whole card sets in and out of the ledger.
type DataTransferer interface {
	Export(ctx context.Context, ids ...string) (models.CardsPayload, error)
	Import(ctx context.Context, data []byte, mode models.ImportMode) (int, error)
}

// UploadResponse represents a successful upload
// swagger:model UploadResponse
type UploadResponse struct {
	Message  string `json:"message" example:"Data uploaded successfully"`
	Imported int    `json:"imported" example:"3"`
}

// NewDownloadHandler returns the card set as a downloadable document.
// @Summary Download cards
// @Description Exports every card, or the cards listed in ids, with their transactions
// @Tags data
// @Produce json
// @Param ids query string false "Comma separated card ids"
// @Success 200 {object} models.CardsPayload
// @Failure 404 {object} ErrorResponse
// @Router /data/download [get]
// @Security BearerAuth
func NewDownloadHandler(svc DataTransferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ids []string
		for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}

		payload, err := svc.Export(r.Context(), ids...)
		if err != nil {
			writeError(w, r, err)
			return
		}

		filename := fmt.Sprintf("prepaid-cards-%s.json", timeNow().Format("2006-01-02"))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		writeJSON(w, http.StatusOK, payload)
	}
}

// NewUploadHandler imports a card set.
// @Summary Upload cards
// @Description Accepts a multipart form with a "file" and a "mode" field, or a raw JSON body with the mode in the query.
// @Description mode=add creates new cards, mode=replace discards every existing card first.
// @Tags data
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param file formData file false "JSON document with a cards array"
// @Param mode formData string false "add or replace" Enums(add, replace)
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /data/upload [post]
// @Security BearerAuth
func NewUploadHandler(svc DataTransferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		var (
			data []byte
			mode string
			err  error
		)
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			if err := r.ParseMultipartForm(maxUploadSize); err != nil {
				writeMessage(w, http.StatusBadRequest, "invalid multipart form")
				return
			}
			file, _, err := r.FormFile("file")
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "no file uploaded")
				return
			}
			defer file.Close()

			if data, err = io.ReadAll(file); err != nil {
				writeMessage(w, http.StatusBadRequest, "failed to read uploaded file")
				return
			}
			mode = r.FormValue("mode")
		} else {
			if data, err = io.ReadAll(r.Body); err != nil {
				writeMessage(w, http.StatusBadRequest, "failed to read request body")
				return
			}
			mode = r.URL.Query().Get("mode")
		}

		n, err := svc.Import(r.Context(), data, models.ImportMode(mode))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, UploadResponse{Message: "Data uploaded successfully", Imported: n})
	}
}

// RegisterDataRoutes registers the download and upload routes
func RegisterDataRoutes(r chi.Router, svc DataTransferer) {
	r.Get("/data/download", NewDownloadHandler(svc))
	r.Post("/data/upload", NewUploadHandler(svc))
}
