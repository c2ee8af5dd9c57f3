package http

import (
	"github.com/mysmileproject/api/internal/application/mapstats"
	"github.com/mysmileproject/api/internal/infrastructure/dynamo"
	"github.com/mysmileproject/api/internal/infrastructure/geocode"
	jwtinfra "github.com/mysmileproject/api/internal/infrastructure/jwt"
	s3infra "github.com/mysmileproject/api/internal/infrastructure/s3"
	"github.com/mysmileproject/api/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo         *dynamo.UserRepo
	SessionRepo      *dynamo.SessionRepo
	SettingsRepo     *dynamo.SettingsRepo
	NotificationRepo *dynamo.NotificationRepo
	SharedSmileRepo  *dynamo.SharedSmileRepo
	ReportRepo       *dynamo.ReportRepo
	FeedbackRepo     *dynamo.FeedbackRepo
	CuratedRepo      *dynamo.CuratedSmileRepo
	NewsletterRepo   *dynamo.NewsletterRepo

	S3Store     *s3infra.Store
	Mailer      smtp.Mailer
	Geocoder    geocode.ReverseGeocoder
	JWTProvider *jwtinfra.Provider

	// MapStats is built in main so its background refresher shares the
	// process-wide context.
	MapStats mapstats.Service
}
