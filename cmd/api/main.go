package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mysmileproject/api/internal/application/catalog"
	"github.com/mysmileproject/api/internal/application/mapstats"
	"github.com/mysmileproject/api/internal/application/scheduler"
	"github.com/mysmileproject/api/internal/config"
	"github.com/mysmileproject/api/internal/infrastructure/dynamo"
	"github.com/mysmileproject/api/internal/infrastructure/geocode"
	jwtinfra "github.com/mysmileproject/api/internal/infrastructure/jwt"
	s3infra "github.com/mysmileproject/api/internal/infrastructure/s3"
	"github.com/mysmileproject/api/internal/infrastructure/smtp"
	"github.com/mysmileproject/api/internal/infrastructure/sns"
	transporthttp "github.com/mysmileproject/api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 store.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg)

	// SMTP mailer.
	mailer := smtp.NewMailer(cfg)

	// LLM reverse geocoder (optional — sharing fails without it, the rest of
	// the API keeps working).
	var geocoder geocode.ReverseGeocoder
	if gc, err := geocode.NewClient(cfg); err == nil {
		geocoder = gc
	} else {
		log.Printf("WARN: reverse geocoder not available: %v", err)
	}

	// SNS delivery-event publisher (optional — graceful fallback).
	var publisher sns.EventPublisher
	if cfg.SNSTopicARN != "" {
		if p, err := sns.NewPublisher(cfg.SNSRegion, cfg.SNSTopicARN); err == nil {
			publisher = p
		} else {
			log.Printf("WARN: SNS publisher not available: %v", err)
		}
	}

	settingsRepo := dynamo.NewSettingsRepo(dynamoClient, cfg.DynamoTables.UserSettings)
	notificationRepo := dynamo.NewNotificationRepo(dynamoClient, cfg.DynamoTables.SmileNotifications)
	sharedSmileRepo := dynamo.NewSharedSmileRepo(dynamoClient, cfg.DynamoTables.SharedSmiles)
	curatedRepo := dynamo.NewCuratedSmileRepo(dynamoClient, cfg.DynamoTables.CuratedSmiles)

	// Background workers share one cancellable context so shutdown stops them
	// together with the HTTP server.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	catalogSvc := catalog.NewService(curatedRepo)
	if err := catalogSvc.EnsureSeeded(workerCtx); err != nil {
		log.Printf("WARN: could not seed curated catalog: %v", err)
	}

	schedulerSvc := scheduler.NewService(settingsRepo, notificationRepo, catalogSvc, publisher, cfg.SchedulerInterval)
	go schedulerSvc.Run(workerCtx)

	mapSvc := mapstats.NewService(notificationRepo, sharedSmileRepo, cfg.MapRefreshInterval)
	go mapSvc.Run(workerCtx)

	deps := &transporthttp.Deps{
		UserRepo:         dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		SessionRepo:      dynamo.NewSessionRepo(dynamoClient, cfg.DynamoTables.Sessions),
		SettingsRepo:     settingsRepo,
		NotificationRepo: notificationRepo,
		SharedSmileRepo:  sharedSmileRepo,
		ReportRepo:       dynamo.NewReportRepo(dynamoClient, cfg.DynamoTables.ContentReports),
		FeedbackRepo:     dynamo.NewFeedbackRepo(dynamoClient, cfg.DynamoTables.Feedback),
		CuratedRepo:      curatedRepo,
		NewsletterRepo:   dynamo.NewNewsletterRepo(dynamoClient, cfg.DynamoTables.NewsletterConfirmations),
		S3Store:          s3Store,
		Mailer:           mailer,
		Geocoder:         geocoder,
		JWTProvider:      jwtProvider,
		MapStats:         mapSvc,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopWorkers()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
