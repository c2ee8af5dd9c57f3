package mapstats

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mysmileproject/api/internal/domain"
)

const snapshotLimit = 500

// Point is a plottable smile on the world map.
type Point struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	ImageURL     string    `json:"image_url"`
	Description  string    `json:"description"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	LocationName string    `json:"location_name"`
	Timestamp    time.Time `json:"timestamp"`
}

// Snapshot is one refresh of the map view. Flagged items are included; the
// map deliberately mirrors the raw tables, not the feed's moderation filter.
type Snapshot struct {
	TotalCount  int       `json:"total_count"`
	TodayCount  int       `json:"today_count"`
	Points      []Point   `json:"points"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

type Service interface {
	// Current returns the latest snapshot. Before the first refresh completes
	// it is empty but valid.
	Current() Snapshot
	Refresh(ctx context.Context) error
	Run(ctx context.Context)
}

type notificationStore interface {
	ListRecent(ctx context.Context, limit int) ([]domain.SmileNotification, error)
}

type sharedSmileStore interface {
	ListRecent(ctx context.Context, limit int) ([]domain.SharedSmile, error)
}

type service struct {
	notifications notificationStore
	shared        sharedSmileStore
	interval      time.Duration
	now           func() time.Time

	mu       sync.RWMutex
	snapshot Snapshot
}

func NewService(notifications notificationStore, shared sharedSmileStore, interval time.Duration) Service {
	return &service{
		notifications: notifications,
		shared:        shared,
		interval:      interval,
		now:           time.Now,
	}
}

func (s *service) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *service) Refresh(ctx context.Context) error {
	notifications, err := s.notifications.ListRecent(ctx, snapshotLimit)
	if err != nil {
		return err
	}
	shared, err := s.shared.ListRecent(ctx, snapshotLimit)
	if err != nil {
		return err
	}

	now := s.now()
	snap := Snapshot{
		TotalCount:  len(notifications) + len(shared),
		Points:      make([]Point, 0, len(notifications)+len(shared)),
		RefreshedAt: now,
	}
	for _, n := range notifications {
		snap.Points = append(snap.Points, Point{
			ID:           n.NotificationID,
			Type:         domain.ItemTypeNotification,
			ImageURL:     n.ImageURL,
			Description:  n.ImageDescription,
			Latitude:     n.Latitude,
			Longitude:    n.Longitude,
			LocationName: n.LocationName,
			Timestamp:    n.SentAt,
		})
	}
	for _, sm := range shared {
		snap.Points = append(snap.Points, Point{
			ID:           sm.SmileID,
			Type:         domain.ItemTypeSharedSmile,
			ImageURL:     sm.ImageURL,
			Description:  sm.Description,
			Latitude:     sm.Latitude,
			Longitude:    sm.Longitude,
			LocationName: sm.LocationName,
			Timestamp:    sm.CreatedDate,
		})
	}
	for _, p := range snap.Points {
		if sameLocalDay(p.Timestamp, now) {
			snap.TodayCount++
		}
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
	return nil
}

// Run refreshes immediately, then on every tick until ctx is cancelled.
// Refresh errors are logged; the stale snapshot keeps serving.
func (s *service) Run(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		slog.Error("map snapshot refresh failed", "err", err)
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				slog.Error("map snapshot refresh failed", "err", err)
			}
		}
	}
}

func sameLocalDay(ts, now time.Time) bool {
	ty, tm, td := ts.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}
