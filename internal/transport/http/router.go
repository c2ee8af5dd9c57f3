package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mysmileproject/api/internal/application/catalog"
	"github.com/mysmileproject/api/internal/application/feed"
	"github.com/mysmileproject/api/internal/application/feedback"
	"github.com/mysmileproject/api/internal/application/report"
	"github.com/mysmileproject/api/internal/application/session"
	"github.com/mysmileproject/api/internal/application/settings"
	"github.com/mysmileproject/api/internal/application/share"
	"github.com/mysmileproject/api/internal/application/user"
	"github.com/mysmileproject/api/internal/config"
	"github.com/mysmileproject/api/internal/domain"
	"github.com/mysmileproject/api/internal/transport/http/handler"
	appmiddleware "github.com/mysmileproject/api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10, applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	refreshDur := time.Duration(cfg.RefreshTokenExpiryDays) * 24 * time.Hour
	sessionSvc := session.NewService(deps.SessionRepo, deps.UserRepo, deps.JWTProvider, refreshDur)
	userSvc := user.NewService(deps.UserRepo, deps.SessionRepo)
	settingsSvc := settings.NewService(deps.SettingsRepo, deps.NewsletterRepo, deps.Mailer)
	feedSvc := feed.NewService(deps.NotificationRepo, deps.SharedSmileRepo)
	shareSvc := share.NewService(deps.SharedSmileRepo, deps.S3Store, deps.Geocoder, cfg.GeocodeTimeout)
	reportSvc := report.NewService(deps.ReportRepo, deps.SharedSmileRepo)
	feedbackSvc := feedback.NewService(deps.FeedbackRepo)
	catalogSvc := catalog.NewService(deps.CuratedRepo)

	healthH := handler.NewHealthHandler()
	sessionH := handler.NewSessionHandler(sessionSvc)
	userH := handler.NewUserHandler(userSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	newsletterH := handler.NewNewsletterHandler(settingsSvc)
	feedH := handler.NewFeedHandler(feedSvc)
	mapH := handler.NewMapHandler(deps.MapStats)
	smileH := handler.NewSmileHandler(shareSvc)
	reportH := handler.NewReportHandler(reportSvc)
	feedbackH := handler.NewFeedbackHandler(feedbackSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/sessions/login", sessionH.Login)
		r.Post("/sessions/refresh", sessionH.Refresh)
		r.With(sensitiveRL.Limit).Post("/users", userH.Register)
		r.With(sensitiveRL.Limit).Get("/newsletter/confirm", newsletterH.Confirm)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/sessions", sessionH.GetCurrent)
			r.Post("/sessions/logout", sessionH.Logout)

			r.Get("/users/me", userH.Me)
			r.Get("/users/{id}", userH.Get)
			r.Put("/users/{id}", userH.Update)

			r.Get("/settings", settingsH.Get)
			r.Put("/settings", settingsH.Save)

			r.Get("/feed", feedH.Get)
			r.Get("/map", mapH.Get)
			r.Post("/smiles", smileH.Share)
			r.Post("/reports", reportH.Create)
			r.Post("/feedback", feedbackH.Create)

			r.Get("/catalog", catalogH.List)
			r.Get("/catalog/{id}", catalogH.Get)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Delete("/users/{id}", userH.Delete)

				r.Post("/catalog", catalogH.Create)
				r.Put("/catalog/{id}", catalogH.Update)
				r.Delete("/catalog/{id}", catalogH.Delete)
			})
		})
	})

	return r
}
