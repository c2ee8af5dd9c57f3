package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func flaggedSmile(flaggedAgo time.Duration, reviewed bool, now time.Time) SharedSmile {
	at := now.Add(-flaggedAgo)
	return SharedSmile{
		SmileID:       "s1",
		IsFlagged:     true,
		FlaggedAt:     &at,
		AdminReviewed: reviewed,
	}
}

func TestVisibleAt_GraceWindow(t *testing.T) {
	now := time.Now()

	assert.False(t, flaggedSmile(11*time.Hour, false, now).Item().VisibleAt(now),
		"flagged 11h ago and unreviewed should be hidden")
	assert.True(t, flaggedSmile(13*time.Hour, false, now).Item().VisibleAt(now),
		"flagged 13h ago without review reverts to visible")
	assert.True(t, flaggedSmile(11*time.Hour, true, now).Item().VisibleAt(now),
		"admin review makes the item visible regardless of flag age")
}

func TestVisibleAt_Unflagged(t *testing.T) {
	now := time.Now()
	assert.True(t, SharedSmile{SmileID: "s2"}.Item().VisibleAt(now))
	assert.True(t, SmileNotification{NotificationID: "n1"}.Item().VisibleAt(now))
}

func TestVisibleAt_FlaggedWithoutTimestamp(t *testing.T) {
	now := time.Now()
	s := SharedSmile{SmileID: "s3", IsFlagged: true}
	assert.True(t, s.Item().VisibleAt(now), "a flag with no flagged_at cannot start a grace window")
}

func TestMatches_CaseInsensitiveSubstring(t *testing.T) {
	dog := FeedItem{Description: "Happy dog"}
	cat := FeedItem{Description: "Sad cat"}

	assert.True(t, dog.Matches("happy"))
	assert.False(t, cat.Matches("happy"))
	assert.True(t, cat.Matches(""))
}

func TestMatches_LocationName(t *testing.T) {
	item := FeedItem{Description: "x", LocationName: "Tokyo, Japan"}
	assert.True(t, item.Matches("tokyo"))
}
