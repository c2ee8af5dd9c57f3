package handler

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mysmileproject/api/internal/application/settings"
	"github.com/mysmileproject/api/internal/config"
	"github.com/mysmileproject/api/internal/domain"
	jwtinfra "github.com/mysmileproject/api/internal/infrastructure/jwt"
	"github.com/mysmileproject/api/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- shared test helpers ---

// newTestJWTProvider generates a fresh RSA key pair and returns a *jwtinfra.Provider.
func newTestJWTProvider(t *testing.T) *jwtinfra.Provider {
	t.Helper()
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privKey)})
	require.NoError(t, os.WriteFile(privPath, privPEM, 0600))

	pubBytes, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0600))

	p, err := jwtinfra.NewProvider(&config.Config{
		JWTPrivateKeyPath: privPath,
		JWTPublicKeyPath:  pubPath,
		JWTExpiry:         24 * time.Hour,
	})
	require.NoError(t, err)
	return p
}

// bearerReq builds a request with a signed Bearer token for the given user.
func bearerReq(t *testing.T, p *jwtinfra.Provider, method, target, userID, email, role string, body []byte) *http.Request {
	t.Helper()
	token, err := p.Sign(userID, email, role, "sess1")
	require.NoError(t, err)
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

// serveAuthed wraps the handler with middleware.Auth before serving.
func serveAuthed(p *jwtinfra.Provider, h http.Handler, w http.ResponseWriter, r *http.Request) {
	middleware.Auth(p)(h).ServeHTTP(w, r)
}

// --- mock ---

type mockSettingsSvc struct{ mock.Mock }

func (m *mockSettingsSvc) Load(ctx context.Context, userID, email, timezoneHint string) (*domain.UserSettings, bool, error) {
	args := m.Called(ctx, userID, email, timezoneHint)
	if s, _ := args.Get(0).(*domain.UserSettings); s != nil {
		return s, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockSettingsSvc) Save(ctx context.Context, userID, email string, req domain.SaveSettingsRequest) (*domain.UserSettings, error) {
	args := m.Called(ctx, userID, email, req)
	if s, _ := args.Get(0).(*domain.UserSettings); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSettingsSvc) ConfirmNewsletter(ctx context.Context, userID, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}

var _ settings.Service = (*mockSettingsSvc)(nil)

// --- Get tests ---

func TestSettingsGet_MissingClaims(t *testing.T) {
	h := NewSettingsHandler(&mockSettingsSvc{})
	r := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
	rr := httptest.NewRecorder()
	h.Get(rr, r)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSettingsGet_ReturnsDefaultsWithStoredFalse(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockSettingsSvc{}
	svc.On("Load", mock.Anything, "u1", "alice@example.com", "Europe/Berlin").
		Return(domain.DefaultSettings("u1", "alice@example.com", "Europe/Berlin"), false, nil)
	h := NewSettingsHandler(svc)

	r := bearerReq(t, p, http.MethodGet, "/v1/settings?timezone=Europe/Berlin", "u1", "alice@example.com", domain.RoleUser, nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Get), rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp SettingsEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.False(t, resp.Stored)
	assert.Equal(t, 3, resp.Settings.NotificationsPerDay)
	svc.AssertExpectations(t)
}

// --- Save tests ---

func TestSettingsSave_InvalidBody(t *testing.T) {
	p := newTestJWTProvider(t)
	h := NewSettingsHandler(&mockSettingsSvc{})

	r := bearerReq(t, p, http.MethodPut, "/v1/settings", "u1", "alice@example.com", domain.RoleUser, []byte("not-json"))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Save), rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSettingsSave_ValidationFailure(t *testing.T) {
	p := newTestJWTProvider(t)
	h := NewSettingsHandler(&mockSettingsSvc{})
	body, _ := json.Marshal(domain.SaveSettingsRequest{NotificationsPerDay: 99, Timezone: "UTC"})

	r := bearerReq(t, p, http.MethodPut, "/v1/settings", "u1", "alice@example.com", domain.RoleUser, body)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Save), rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSettingsSave_HappyPath(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockSettingsSvc{}
	saved := &domain.UserSettings{UserID: "u1", NotificationsPerDay: 5, StartHour: 9, EndHour: 18, Timezone: "UTC"}
	svc.On("Save", mock.Anything, "u1", "alice@example.com", mock.Anything).Return(saved, nil)
	h := NewSettingsHandler(svc)
	body, _ := json.Marshal(domain.SaveSettingsRequest{
		NotificationsEnabled: true, NotificationsPerDay: 5, StartHour: 9, EndHour: 18, Timezone: "UTC",
	})

	r := bearerReq(t, p, http.MethodPut, "/v1/settings", "u1", "alice@example.com", domain.RoleUser, body)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Save), rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp SettingsEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Stored)
	assert.Equal(t, 5, resp.Settings.NotificationsPerDay)
	svc.AssertExpectations(t)
}

func TestSettingsSave_DomainRejection(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockSettingsSvc{}
	svc.On("Save", mock.Anything, "u1", "alice@example.com", mock.Anything).Return(nil, domain.ErrBadRequest)
	h := NewSettingsHandler(svc)
	body, _ := json.Marshal(domain.SaveSettingsRequest{
		NotificationsEnabled: true, NotificationsPerDay: 5, StartHour: 21, EndHour: 8, Timezone: "UTC",
	})

	r := bearerReq(t, p, http.MethodPut, "/v1/settings", "u1", "alice@example.com", domain.RoleUser, body)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Save), rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertExpectations(t)
}

// --- Newsletter confirm tests ---

func TestNewsletterConfirm_MissingParams(t *testing.T) {
	h := NewNewsletterHandler(&mockSettingsSvc{})
	r := httptest.NewRequest(http.MethodGet, "/v1/newsletter/confirm", nil)
	rr := httptest.NewRecorder()
	h.Confirm(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNewsletterConfirm_HappyPath(t *testing.T) {
	svc := &mockSettingsSvc{}
	svc.On("ConfirmNewsletter", mock.Anything, "u1", "tok").Return(nil)
	h := NewNewsletterHandler(svc)

	r := httptest.NewRequest(http.MethodGet, "/v1/newsletter/confirm?user=u1&token=tok", nil)
	rr := httptest.NewRecorder()
	h.Confirm(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestNewsletterConfirm_BadToken(t *testing.T) {
	svc := &mockSettingsSvc{}
	svc.On("ConfirmNewsletter", mock.Anything, "u1", "wrong").Return(domain.ErrForbidden)
	h := NewNewsletterHandler(svc)

	r := httptest.NewRequest(http.MethodGet, "/v1/newsletter/confirm?user=u1&token=wrong", nil)
	rr := httptest.NewRecorder()
	h.Confirm(rr, r)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
