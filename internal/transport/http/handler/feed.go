package handler

import (
	"net/http"

	"github.com/mysmileproject/api/internal/application/feed"
	"github.com/mysmileproject/api/internal/domain"
	"github.com/mysmileproject/api/internal/transport/http/middleware"
)

// FeedEnvelope wraps home-feed responses.
type FeedEnvelope struct {
	Items []domain.FeedItem `json:"items"`
	Count int               `json:"count"`
}

// FeedHandler handles the home feed endpoint.
type FeedHandler struct {
	svc feed.Service
}

func NewFeedHandler(svc feed.Service) *FeedHandler { return &FeedHandler{svc: svc} }

func (h *FeedHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	q := feed.Query{
		Tab:    r.URL.Query().Get("tab"),
		Search: r.URL.Query().Get("search"),
		Window: r.URL.Query().Get("window"),
	}
	if q.Tab == "" {
		q.Tab = feed.TabAll
	}
	switch q.Tab {
	case feed.TabReceived, feed.TabShared, feed.TabAll:
	default:
		writeError(w, http.StatusBadRequest, "unknown tab")
		return
	}
	if q.Window == "" {
		q.Window = feed.WindowAll
	}
	switch q.Window {
	case feed.WindowToday, feed.WindowWeek, feed.WindowMonth, feed.WindowAll:
	default:
		writeError(w, http.StatusBadRequest, "unknown window")
		return
	}
	items, err := h.svc.Feed(r.Context(), claims.Email, q)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FeedEnvelope{Items: items, Count: len(items)})
}
