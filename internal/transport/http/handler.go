// Package httptransport is the thin HTTP layer. Handlers decode, delegate to
// domain services, and encode; business logic stays out of this package.
package httptransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"loan-gateway/internal/conversation"
	"loan-gateway/internal/document"
	"loan-gateway/internal/domain"
	"loan-gateway/internal/upload"
)

type Handler struct {
	turns     *conversation.Service
	uploads   *upload.Service
	documents document.Store
	logger    *slog.Logger
}

func NewHandler(turns *conversation.Service, uploads *upload.Service, documents document.Store, logger *slog.Logger) *Handler {
	return &Handler{turns: turns, uploads: uploads, documents: documents, logger: logger}
}

type chatRequest struct {
	Message string          `json:"message"`
	Context json.RawMessage `json:"context"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	appCtx := domain.Normalize(req.Context)
	result, err := h.turns.Run(r.Context(), req.Message, appCtx)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "turn failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleUploadSlip(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("slip")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	fileID, err := h.uploads.Receive(r.Context(), file)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "upload failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "received", "fileId": fileID})
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	data, err := h.documents.Get(r.Context(), id+".pdf")
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "PDF not found"})
			return
		}
		h.logger.ErrorContext(r.Context(), "pdf fetch failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(r.Context(), "pdf write failed", "error", err, "id", id)
	}
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
