package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cloudsitefy/inquiry-service/internal/inquiry"
	"github.com/cloudsitefy/inquiry-service/pkg/logging"
)

// ReplySender dispatches a free-form admin reply email.
type ReplySender interface {
	SendReply(ctx context.Context, to, subject, message string) error
}

// ReplyHandler serves POST /sendReplyEmail.
type ReplyHandler struct {
	sender    ReplySender
	lifecycle *inquiry.Lifecycle
	logger    *logging.Logger
}

// NewReplyHandler creates the reply handler. sender may be nil when email is
// not configured; the endpoint then reports the failure to the admin.
func NewReplyHandler(sender ReplySender, lifecycle *inquiry.Lifecycle, logger *logging.Logger) *ReplyHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReplyHandler{sender: sender, lifecycle: lifecycle, logger: logger}
}

// ReplyBody is the request body for POST /sendReplyEmail.
type ReplyBody struct {
	InquiryID string `json:"inquiryId"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// SendReply handles POST /sendReplyEmail. A successful dispatch marks the
// inquiry replied (responded=true, status=in-progress) when an inquiryId is
// provided.
func (h *ReplyHandler) SendReply(w http.ResponseWriter, r *http.Request) {
	var body ReplyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	body.To = strings.TrimSpace(body.To)
	body.Subject = strings.TrimSpace(body.Subject)
	if body.To == "" || body.Subject == "" || strings.TrimSpace(body.Message) == "" {
		writeError(w, http.StatusBadRequest, "Recipient, subject and message are required.")
		return
	}

	if h.sender == nil {
		writeError(w, http.StatusInternalServerError, "Email sending is not configured.")
		return
	}

	if err := h.sender.SendReply(r.Context(), body.To, body.Subject, body.Message); err != nil {
		h.logger.Error("reply email failed", "error", err, "to", body.To, "inquiry_id", body.InquiryID)
		writeError(w, http.StatusInternalServerError, "Failed to send reply email.")
		return
	}

	if body.InquiryID != "" && h.lifecycle != nil {
		// The email already went out; a bookkeeping failure is logged, not
		// returned to the admin.
		if err := h.lifecycle.MarkReplied(r.Context(), body.InquiryID); err != nil {
			h.logger.Error("failed to mark inquiry replied", "error", err, "inquiry_id", body.InquiryID)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Reply email sent.",
	})
}
