package handler

import (
	"net/http"

	"github.com/mysmileproject/api/internal/application/settings"
)

// NewsletterHandler handles the public double-opt-in confirmation link.
type NewsletterHandler struct {
	svc settings.Service
}

func NewNewsletterHandler(svc settings.Service) *NewsletterHandler {
	return &NewsletterHandler{svc: svc}
}

func (h *NewsletterHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	token := r.URL.Query().Get("token")
	if userID == "" || token == "" {
		writeError(w, http.StatusBadRequest, "user and token required")
		return
	}
	if err := h.svc.ConfirmNewsletter(r.Context(), userID, token); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "subscription confirmed"})
}
