package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/cloudsitefy/inquiry-service/internal/inquiry"
	"github.com/cloudsitefy/inquiry-service/pkg/logging"
)

// AdminInquiriesHandler serves the authenticated inquiry triage API.
type AdminInquiriesHandler struct {
	store     inquiry.Store
	lifecycle *inquiry.Lifecycle
	logger    *logging.Logger
}

// NewAdminInquiriesHandler creates the admin inquiries handler.
func NewAdminInquiriesHandler(store inquiry.Store, lifecycle *inquiry.Lifecycle, logger *logging.Logger) *AdminInquiriesHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminInquiriesHandler{
		store:     store,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

// ListResponse is the body for GET /adminInquiries.
type ListResponse struct {
	Inquiries []*inquiry.Inquiry `json:"inquiries"`
}

// List handles GET /adminInquiries?status=&limit=&offset=.
func (h *AdminInquiriesHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := inquiry.ListFilter{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			filter.Offset = offset
		}
	}

	inquiries, err := h.store.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list inquiries", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list inquiries.")
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{Inquiries: inquiries})
}

// UpdateBody is the request body for PUT /adminInquiries.
type UpdateBody struct {
	ID string `json:"id"`
	inquiry.UpdateRequest
}

// Update handles PUT /adminInquiries.
func (h *AdminInquiriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body UpdateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if strings.TrimSpace(body.ID) == "" {
		writeError(w, http.StatusBadRequest, "Inquiry id is required.")
		return
	}

	if err := h.lifecycle.Update(r.Context(), body.ID, body.UpdateRequest); err != nil {
		switch {
		case errors.Is(err, inquiry.ErrNotFound):
			writeError(w, http.StatusNotFound, "Inquiry not found.")
		case errors.Is(err, inquiry.ErrStoreUnavailable):
			h.logger.Error("inquiry update failed", "error", err, "id", body.ID)
			writeError(w, http.StatusInternalServerError, "Failed to update inquiry.")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Inquiry updated.",
	})
}

// Delete handles DELETE /adminInquiries?id=.
func (h *AdminInquiriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "Inquiry id is required.")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, inquiry.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Inquiry not found.")
			return
		}
		h.logger.Error("inquiry delete failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete inquiry.")
		return
	}

	h.logger.Info("inquiry deleted", "id", id)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Inquiry deleted.",
	})
}
