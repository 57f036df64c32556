package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cloudsitefy/inquiry-service/internal/inquiry"
	"github.com/cloudsitefy/inquiry-service/pkg/logging"
)

// SubmitHandler handles public contact-form submissions.
type SubmitHandler struct {
	pipeline *inquiry.Pipeline
	logger   *logging.Logger
}

// NewSubmitHandler creates the submission handler.
func NewSubmitHandler(pipeline *inquiry.Pipeline, logger *logging.Logger) *SubmitHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SubmitHandler{pipeline: pipeline, logger: logger}
}

// SubmitResponse is the success body for POST /api.
type SubmitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	InquiryID string `json:"inquiryId"`
}

// Submit handles POST /api.
func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req inquiry.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode submission", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	// Server-observed metadata fills in whatever the client omitted.
	if req.UserAgent == "" {
		req.UserAgent = r.UserAgent()
	}
	if req.IP == "" {
		req.IP = r.RemoteAddr
	}

	inq, err := h.pipeline.Submit(r.Context(), req)
	if err != nil {
		if verr, ok := inquiry.AsValidationError(err); ok {
			writeError(w, http.StatusBadRequest, verr.PublicMessage())
			return
		}
		if errors.Is(err, inquiry.ErrStoreUnavailable) {
			writeError(w, http.StatusInternalServerError, "Your inquiry could not be saved. Please try again shortly.")
			return
		}
		h.logger.Error("submission failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again shortly.")
		return
	}

	writeJSON(w, http.StatusOK, SubmitResponse{
		Success:   true,
		Message:   "Your inquiry has been submitted successfully.",
		InquiryID: inq.ID,
	})
}
