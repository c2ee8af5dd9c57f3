package handler

import (
	"net/http"

	"github.com/mysmileproject/api/internal/application/mapstats"
)

// MapHandler serves the cached world-map snapshot.
type MapHandler struct {
	svc mapstats.Service
}

func NewMapHandler(svc mapstats.Service) *MapHandler { return &MapHandler{svc: svc} }

func (h *MapHandler) Get(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Current())
}
