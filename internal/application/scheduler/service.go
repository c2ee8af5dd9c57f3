package scheduler

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mysmileproject/api/internal/domain"
	"github.com/mysmileproject/api/internal/infrastructure/sns"
	"github.com/mysmileproject/api/internal/pkg/id"
)

type settingsStore interface {
	ScanEnabled(ctx context.Context) ([]domain.UserSettings, error)
	StampLastSent(ctx context.Context, userID string, at time.Time) error
}

type notificationStore interface {
	Put(ctx context.Context, n *domain.SmileNotification) error
}

type smilePicker interface {
	RandomEnabled(ctx context.Context) (*domain.CuratedSmile, error)
}

// Service emits smile notifications on a fixed tick. Each enabled user gets
// an independent probability draw per tick, sized so the expected daily count
// matches their notifications_per_day inside their hour window.
type Service struct {
	settings      settingsStore
	notifications notificationStore
	catalog       smilePicker
	publisher     sns.EventPublisher // optional
	interval      time.Duration

	now func() time.Time
	rng *rand.Rand
}

func NewService(settings settingsStore, notifications notificationStore, catalog smilePicker, publisher sns.EventPublisher, interval time.Duration) *Service {
	return &Service{
		settings:      settings,
		notifications: notifications,
		catalog:       catalog,
		publisher:     publisher,
		interval:      interval,
		now:           time.Now,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run ticks until ctx is cancelled. Tick errors are logged and swallowed; the
// next tick is the only retry.
func (s *Service) Run(ctx context.Context) {
	slog.Info("notification scheduler started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("notification scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick walks every enabled settings record and decides per user whether to
// emit a smile right now.
func (s *Service) Tick(ctx context.Context) {
	records, err := s.settings.ScanEnabled(ctx)
	if err != nil {
		slog.Error("scheduler: scanning settings failed", "err", err)
		return
	}
	for i := range records {
		s.tickUser(ctx, &records[i])
	}
}

func (s *Service) tickUser(ctx context.Context, settings *domain.UserSettings) {
	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		slog.Warn("scheduler: skipping user with bad timezone",
			"user_id", settings.UserID, "timezone", settings.Timezone)
		return
	}
	if !settings.InWindow(s.now().In(loc).Hour()) {
		return
	}
	if s.rng.Float64() >= settings.SendProbability() {
		return
	}
	if err := s.send(ctx, settings); err != nil {
		slog.Error("scheduler: sending notification failed", "user_id", settings.UserID, "err", err)
	}
}

func (s *Service) send(ctx context.Context, settings *domain.UserSettings) error {
	smile, err := s.catalog.RandomEnabled(ctx)
	if err != nil {
		return err
	}
	city := cities[s.rng.Intn(len(cities))]
	now := s.now().UTC()
	n := &domain.SmileNotification{
		NotificationID:   id.New(),
		ImageURL:         smile.ImageURL,
		ImageDescription: smile.Description,
		Latitude:         city.Latitude,
		Longitude:        city.Longitude,
		LocationName:     city.Name,
		SentAt:           now,
	}
	if err := s.notifications.Put(ctx, n); err != nil {
		return err
	}
	// Independent writes: a failed stamp or publish never undoes the
	// notification.
	if err := s.settings.StampLastSent(ctx, settings.UserID, now); err != nil {
		slog.Error("scheduler: stamping last_notification_sent failed", "user_id", settings.UserID, "err", err)
	}
	if s.publisher != nil {
		ev := sns.DeliveryEvent{
			NotificationID: n.NotificationID,
			UserID:         settings.UserID,
			ImageURL:       n.ImageURL,
			Description:    n.ImageDescription,
			LocationName:   n.LocationName,
			SentAt:         n.SentAt,
		}
		if err := s.publisher.PublishDelivery(ctx, ev); err != nil {
			slog.Error("scheduler: publishing delivery event failed", "user_id", settings.UserID, "err", err)
		}
	}
	slog.Info("smile notification sent", "user_id", settings.UserID, "description", n.ImageDescription)
	return nil
}
