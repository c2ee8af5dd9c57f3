package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mysmileproject/api/internal/application/settings"
	"github.com/mysmileproject/api/internal/domain"
	"github.com/mysmileproject/api/internal/pkg/validate"
	"github.com/mysmileproject/api/internal/transport/http/middleware"
)

// SettingsEnvelope carries the settings record plus whether it has ever been
// saved, so clients can distinguish defaults from stored preferences.
type SettingsEnvelope struct {
	Settings *domain.UserSettings `json:"settings"`
	Stored   bool                 `json:"stored"`
}

// SettingsHandler handles notification-preference endpoints.
type SettingsHandler struct {
	svc settings.Service
}

func NewSettingsHandler(svc settings.Service) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	record, stored, err := h.svc.Load(r.Context(), claims.UserID, claims.Email, r.URL.Query().Get("timezone"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsEnvelope{Settings: record, Stored: stored})
}

func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.SaveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	record, err := h.svc.Save(r.Context(), claims.UserID, claims.Email, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsEnvelope{Settings: record, Stored: true})
}
