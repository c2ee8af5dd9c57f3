package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mysmileproject/api/internal/application/feed"
	"github.com/mysmileproject/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFeedSvc struct{ mock.Mock }

func (m *mockFeedSvc) Feed(ctx context.Context, ownerEmail string, q feed.Query) ([]domain.FeedItem, error) {
	args := m.Called(ctx, ownerEmail, q)
	if items, _ := args.Get(0).([]domain.FeedItem); items != nil {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ feed.Service = (*mockFeedSvc)(nil)

func TestFeedGet_MissingClaims(t *testing.T) {
	h := NewFeedHandler(&mockFeedSvc{})
	r := httptest.NewRequest(http.MethodGet, "/v1/feed", nil)
	rr := httptest.NewRecorder()
	h.Get(rr, r)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestFeedGet_UnknownTab(t *testing.T) {
	p := newTestJWTProvider(t)
	h := NewFeedHandler(&mockFeedSvc{})

	r := bearerReq(t, p, http.MethodGet, "/v1/feed?tab=bogus", "u1", "alice@example.com", domain.RoleUser, nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Get), rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFeedGet_UnknownWindow(t *testing.T) {
	p := newTestJWTProvider(t)
	h := NewFeedHandler(&mockFeedSvc{})

	r := bearerReq(t, p, http.MethodGet, "/v1/feed?window=year", "u1", "alice@example.com", domain.RoleUser, nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Get), rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFeedGet_DefaultsToAllTabAndWindow(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockFeedSvc{}
	items := []domain.FeedItem{
		domain.SmileNotification{NotificationID: "n1", SentAt: time.Now()}.Item(),
	}
	svc.On("Feed", mock.Anything, "alice@example.com", feed.Query{Tab: feed.TabAll, Window: feed.WindowAll}).
		Return(items, nil)
	h := NewFeedHandler(svc)

	r := bearerReq(t, p, http.MethodGet, "/v1/feed", "u1", "alice@example.com", domain.RoleUser, nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Get), rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp FeedEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	svc.AssertExpectations(t)
}

func TestFeedGet_PassesSearchAndWindow(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockFeedSvc{}
	svc.On("Feed", mock.Anything, "alice@example.com",
		feed.Query{Tab: feed.TabReceived, Search: "happy", Window: feed.WindowWeek}).
		Return([]domain.FeedItem{}, nil)
	h := NewFeedHandler(svc)

	r := bearerReq(t, p, http.MethodGet, "/v1/feed?tab=received&search=happy&window=week", "u1", "alice@example.com", domain.RoleUser, nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Get), rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}
