package feed

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/mysmileproject/api/internal/domain"
)

// Feed tabs.
const (
	TabReceived = "received" // system-emitted notifications
	TabShared   = "shared"   // the caller's own shared smiles
	TabAll      = "all"
)

// Time windows.
const (
	WindowToday = "today"
	WindowWeek  = "week"
	WindowMonth = "month"
	WindowAll   = "all"
)

const fetchLimit = 100

type Query struct {
	Tab    string
	Search string
	Window string
}

type Service interface {
	Feed(ctx context.Context, ownerEmail string, q Query) ([]domain.FeedItem, error)
}

type notificationStore interface {
	ListRecent(ctx context.Context, limit int) ([]domain.SmileNotification, error)
}

type sharedSmileStore interface {
	ListRecent(ctx context.Context, limit int) ([]domain.SharedSmile, error)
	ListByOwner(ctx context.Context, ownerEmail string, limit int) ([]domain.SharedSmile, error)
}

type service struct {
	notifications notificationStore
	shared        sharedSmileStore
	now           func() time.Time
}

func NewService(notifications notificationStore, shared sharedSmileStore) Service {
	return &service{notifications: notifications, shared: shared, now: time.Now}
}

// Feed fetches the tab's collections concurrently and filters them in memory.
// A failed fetch degrades that branch to an empty slice so one bad table
// doesn't blank the whole feed.
func (s *service) Feed(ctx context.Context, ownerEmail string, q Query) ([]domain.FeedItem, error) {
	var (
		wg            sync.WaitGroup
		notifications []domain.SmileNotification
		everyone      []domain.SharedSmile
		mine          []domain.SharedSmile
	)

	if q.Tab == TabReceived || q.Tab == TabAll {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if notifications, err = s.notifications.ListRecent(ctx, fetchLimit); err != nil {
				slog.Error("feed: listing notifications failed", "err", err)
				notifications = nil
			}
		}()
	}
	if q.Tab == TabAll {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if everyone, err = s.shared.ListRecent(ctx, fetchLimit); err != nil {
				slog.Error("feed: listing shared smiles failed", "err", err)
				everyone = nil
			}
		}()
	}
	if q.Tab == TabShared {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if mine, err = s.shared.ListByOwner(ctx, ownerEmail, fetchLimit); err != nil {
				slog.Error("feed: listing own shared smiles failed", "owner", ownerEmail, "err", err)
				mine = nil
			}
		}()
	}
	wg.Wait()

	now := s.now()
	items := make([]domain.FeedItem, 0, len(notifications)+len(everyone)+len(mine))
	for _, n := range notifications {
		items = append(items, n.Item())
	}
	for _, sm := range everyone {
		items = append(items, sm.Item())
	}
	for _, sm := range mine {
		items = append(items, sm.Item())
	}

	items = FilterItems(items, q.Search, q.Window, now)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items, nil
}

// FilterItems applies the moderation grace window, the search term, and the
// time window. Pure: no store calls, no mutation of the input.
func FilterItems(items []domain.FeedItem, search, window string, now time.Time) []domain.FeedItem {
	out := make([]domain.FeedItem, 0, len(items))
	for _, it := range items {
		if !it.VisibleAt(now) {
			continue
		}
		if !it.Matches(search) {
			continue
		}
		if !inWindow(it.Timestamp, window, now) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func inWindow(ts time.Time, window string, now time.Time) bool {
	switch window {
	case WindowToday:
		ty, tm, td := ts.In(now.Location()).Date()
		ny, nm, nd := now.Date()
		return ty == ny && tm == nm && td == nd
	case WindowWeek:
		return !ts.Before(now.Add(-7 * 24 * time.Hour))
	case WindowMonth:
		return !ts.Before(now.Add(-30 * 24 * time.Hour))
	default:
		return true
	}
}
