package handler

import (
	"net/http"
	"strconv"

	"github.com/mysmileproject/api/internal/application/share"
	"github.com/mysmileproject/api/internal/transport/http/middleware"
)

// SmileHandler handles the photo-sharing endpoint.
type SmileHandler struct {
	svc share.Service
}

func NewSmileHandler(svc share.Service) *SmileHandler { return &SmileHandler{svc: svc} }

func (h *SmileHandler) Share(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	f, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image field")
		return
	}
	defer f.Close()

	lat, err := strconv.ParseFloat(r.FormValue("latitude"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid latitude")
		return
	}
	lng, err := strconv.ParseFloat(r.FormValue("longitude"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid longitude")
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		writeError(w, http.StatusBadRequest, "coordinates out of range")
		return
	}

	smile, err := h.svc.Share(r.Context(), share.ShareInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      f,
		Description: r.FormValue("description"),
		Latitude:    lat,
		Longitude:   lng,
		OwnerEmail:  claims.Email,
	})
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, smile)
}
