package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mysmileproject/api/internal/domain"
	pkgtoken "github.com/mysmileproject/api/internal/pkg/token"
)

const confirmationTTL = 48 * time.Hour

type Service interface {
	// Load returns the user's stored settings, or an unsaved default record
	// when none exists yet. The bool reports whether the record is stored.
	Load(ctx context.Context, userID, email, timezoneHint string) (*domain.UserSettings, bool, error)
	Save(ctx context.Context, userID, email string, req domain.SaveSettingsRequest) (*domain.UserSettings, error)
	ConfirmNewsletter(ctx context.Context, userID, token string) error
}

type settingsStore interface {
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	Put(ctx context.Context, s *domain.UserSettings) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type newsletterStore interface {
	Put(ctx context.Context, c *domain.NewsletterConfirmation) error
	Get(ctx context.Context, userID string) (*domain.NewsletterConfirmation, error)
	Delete(ctx context.Context, userID string) error
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type service struct {
	repo       settingsStore
	newsletter newsletterStore
	mailer     mailer
}

func NewService(repo settingsStore, newsletter newsletterStore, m mailer) Service {
	return &service{repo: repo, newsletter: newsletter, mailer: m}
}

func (s *service) Load(ctx context.Context, userID, email, timezoneHint string) (*domain.UserSettings, bool, error) {
	stored, err := s.repo.Get(ctx, userID)
	if err == nil {
		return stored, true, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}
	return domain.DefaultSettings(userID, email, timezoneHint), false, nil
}

// Save creates the record on the user's first save and updates it afterwards.
// The create happens at most once per user; the partition key is the user id,
// so a concurrent double-save degenerates to two idempotent writes rather
// than two records.
func (s *service) Save(ctx context.Context, userID, email string, req domain.SaveSettingsRequest) (*domain.UserSettings, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	if existing == nil {
		record := &domain.UserSettings{
			UserID:               userID,
			CreatedBy:            email,
			NotificationsEnabled: req.NotificationsEnabled,
			NotificationsPerDay:  req.NotificationsPerDay,
			StartHour:            req.StartHour,
			EndHour:              req.EndHour,
			Timezone:             req.Timezone,
			NewsletterSubscribed: req.NewsletterSubscribed,
			SubscriptionEmail:    req.SubscriptionEmail,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := s.repo.Put(ctx, record); err != nil {
			return nil, err
		}
		s.maybeStartConfirmation(ctx, record, false)
		return record, nil
	}

	wasSubscribed := existing.NewsletterSubscribed
	if err := s.repo.Update(ctx, userID, map[string]interface{}{
		"notifications_enabled": req.NotificationsEnabled,
		"notifications_per_day": req.NotificationsPerDay,
		"start_hour":            req.StartHour,
		"end_hour":              req.EndHour,
		"timezone":              req.Timezone,
		"newsletter_subscribed": req.NewsletterSubscribed,
		"subscription_email":    req.SubscriptionEmail,
	}); err != nil {
		return nil, err
	}

	existing.NotificationsEnabled = req.NotificationsEnabled
	existing.NotificationsPerDay = req.NotificationsPerDay
	existing.StartHour = req.StartHour
	existing.EndHour = req.EndHour
	existing.Timezone = req.Timezone
	existing.NewsletterSubscribed = req.NewsletterSubscribed
	existing.SubscriptionEmail = req.SubscriptionEmail
	existing.UpdatedAt = now
	s.maybeStartConfirmation(ctx, existing, wasSubscribed)
	return existing, nil
}

// maybeStartConfirmation kicks off the double-opt-in email when a user turns
// the newsletter on. A failure here never fails the save; the user can
// re-toggle the subscription to retry.
func (s *service) maybeStartConfirmation(ctx context.Context, record *domain.UserSettings, wasSubscribed bool) {
	if !record.NewsletterSubscribed || wasSubscribed {
		return
	}
	tok, err := pkgtoken.New()
	if err != nil {
		slog.Error("newsletter token generation failed", "user_id", record.UserID, "err", err)
		return
	}
	now := time.Now().UTC()
	if err := s.newsletter.Put(ctx, &domain.NewsletterConfirmation{
		UserID:    record.UserID,
		Email:     record.SubscriptionEmail,
		Token:     tok,
		ExpiresAt: now.Add(confirmationTTL).Unix(),
		CreatedAt: now,
	}); err != nil {
		slog.Error("could not store newsletter confirmation", "user_id", record.UserID, "err", err)
		return
	}
	body := fmt.Sprintf(
		"Hi!\n\nPlease confirm your MySmileProject newsletter subscription by opening:\n\n"+
			"https://mysmileproject.app/newsletter/confirm?user=%s&token=%s\n\n"+
			"The link expires in 48 hours. If you didn't request this, ignore this email.",
		record.UserID, tok)
	if err := s.mailer.SendEmail(record.SubscriptionEmail, "Confirm your newsletter subscription", body); err != nil {
		slog.Error("could not send newsletter confirmation", "user_id", record.UserID, "err", err)
	}
}

func (s *service) ConfirmNewsletter(ctx context.Context, userID, token string) error {
	pending, err := s.newsletter.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("no pending confirmation: %w", domain.ErrNotFound)
	}
	if pending.Token != token {
		return fmt.Errorf("invalid confirmation token: %w", domain.ErrForbidden)
	}
	if pending.ExpiresAt < time.Now().Unix() {
		return fmt.Errorf("confirmation token expired: %w", domain.ErrForbidden)
	}
	return s.newsletter.Delete(ctx, userID)
}
