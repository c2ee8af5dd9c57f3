package domain

import (
	"fmt"
	"time"
)

// UserSettings is the single notification-preferences record each user owns.
// The partition key is the owning user's id, so "my settings" is a keyed
// lookup rather than a scan over everyone's records.
type UserSettings struct {
	UserID               string     `json:"user_id" dynamodbav:"user_id"`
	CreatedBy            string     `json:"created_by" dynamodbav:"created_by"` // owner email
	NotificationsEnabled bool       `json:"notifications_enabled" dynamodbav:"notifications_enabled"`
	NotificationsPerDay  int        `json:"notifications_per_day" dynamodbav:"notifications_per_day"`
	StartHour            int        `json:"start_hour" dynamodbav:"start_hour"`
	EndHour              int        `json:"end_hour" dynamodbav:"end_hour"`
	Timezone             string     `json:"timezone" dynamodbav:"timezone"`
	LastNotificationSent *time.Time `json:"last_notification_sent,omitempty" dynamodbav:"last_notification_sent"`
	NewsletterSubscribed bool       `json:"newsletter_subscribed" dynamodbav:"newsletter_subscribed"`
	SubscriptionEmail    string     `json:"subscription_email" dynamodbav:"subscription_email"`
	CreatedAt            time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt            time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type SaveSettingsRequest struct {
	NotificationsEnabled bool   `json:"notifications_enabled"`
	NotificationsPerDay  int    `json:"notifications_per_day" validate:"required,min=1,max=24"`
	StartHour            int    `json:"start_hour" validate:"min=0,max=23"`
	EndHour              int    `json:"end_hour" validate:"min=0,max=23"`
	Timezone             string `json:"timezone" validate:"required"`
	NewsletterSubscribed bool   `json:"newsletter_subscribed"`
	SubscriptionEmail    string `json:"subscription_email" validate:"omitempty,email"`
}

// Validate applies the cross-field rules the struct tags can't express.
func (r SaveSettingsRequest) Validate() error {
	if r.StartHour > r.EndHour {
		return fmt.Errorf("start_hour must not be after end_hour: %w", ErrBadRequest)
	}
	if _, err := time.LoadLocation(r.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", r.Timezone, ErrBadRequest)
	}
	if r.NewsletterSubscribed && r.SubscriptionEmail == "" {
		return fmt.Errorf("subscription_email required to subscribe: %w", ErrBadRequest)
	}
	return nil
}

// DefaultSettings seeds an unsaved settings record for a user who has never
// saved one. timezone may be empty, in which case UTC is used.
func DefaultSettings(userID, email, timezone string) *UserSettings {
	if timezone == "" {
		timezone = "UTC"
	}
	return &UserSettings{
		UserID:               userID,
		CreatedBy:            email,
		NotificationsEnabled: true,
		NotificationsPerDay:  3,
		StartHour:            8,
		EndHour:              20,
		Timezone:             timezone,
		SubscriptionEmail:    email,
	}
}

// InWindow reports whether hour falls inside the record's inclusive
// [StartHour, EndHour] notification window.
func (s *UserSettings) InWindow(hour int) bool {
	return hour >= s.StartHour && hour <= s.EndHour
}

// SendProbability is the per-tick chance of emitting a notification, the
// expected number of sends per active hour. The draw is memoryless, so the
// realized daily count can drift from NotificationsPerDay.
func (s *UserSettings) SendProbability() float64 {
	return float64(s.NotificationsPerDay) / float64(s.EndHour-s.StartHour+1)
}
