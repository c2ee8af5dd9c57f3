package mapstats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mysmileproject/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifications struct {
	items []domain.SmileNotification
	err   error
}

func (s *stubNotifications) ListRecent(context.Context, int) ([]domain.SmileNotification, error) {
	return s.items, s.err
}

type stubShared struct {
	items []domain.SharedSmile
	err   error
}

func (s *stubShared) ListRecent(context.Context, int) ([]domain.SharedSmile, error) {
	return s.items, s.err
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRefresh_CountsAndPoints(t *testing.T) {
	now := at("2026-03-10T12:00:00Z")
	flagged := now.Add(-time.Hour)
	n := &stubNotifications{items: []domain.SmileNotification{
		{NotificationID: "n1", SentAt: at("2026-03-10T08:00:00Z")},
		{NotificationID: "n2", SentAt: at("2026-03-09T08:00:00Z")},
	}}
	sh := &stubShared{items: []domain.SharedSmile{
		{SmileID: "s1", CreatedDate: at("2026-03-10T09:00:00Z")},
		// freshly flagged and unreviewed: still plotted, the map is unmoderated
		{SmileID: "s2", CreatedDate: at("2026-02-01T09:00:00Z"), IsFlagged: true, FlaggedAt: &flagged},
	}}

	svc := NewService(n, sh, time.Minute).(*service)
	svc.now = func() time.Time { return now }

	require.NoError(t, svc.Refresh(context.Background()))
	snap := svc.Current()
	assert.Equal(t, 4, snap.TotalCount)
	assert.Equal(t, 2, snap.TodayCount)
	assert.Len(t, snap.Points, 4)
}

func TestRefresh_ErrorKeepsPreviousSnapshot(t *testing.T) {
	now := at("2026-03-10T12:00:00Z")
	n := &stubNotifications{items: []domain.SmileNotification{{NotificationID: "n1", SentAt: now}}}
	sh := &stubShared{}

	svc := NewService(n, sh, time.Minute).(*service)
	svc.now = func() time.Time { return now }
	require.NoError(t, svc.Refresh(context.Background()))

	n.err = errors.New("throttled")
	require.Error(t, svc.Refresh(context.Background()))
	assert.Equal(t, 1, svc.Current().TotalCount)
}

func TestCurrent_EmptyBeforeFirstRefresh(t *testing.T) {
	svc := NewService(&stubNotifications{}, &stubShared{}, time.Minute)
	snap := svc.Current()
	assert.Zero(t, snap.TotalCount)
	assert.Empty(t, snap.Points)
}
