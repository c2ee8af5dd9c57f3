package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mysmileproject/api/internal/application/feedback"
	"github.com/mysmileproject/api/internal/domain"
	"github.com/mysmileproject/api/internal/pkg/validate"
	"github.com/mysmileproject/api/internal/transport/http/middleware"
)

// FeedbackHandler handles feedback submissions from the about screen.
type FeedbackHandler struct {
	svc feedback.Service
}

func NewFeedbackHandler(svc feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.Create(r.Context(), claims.Email, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
