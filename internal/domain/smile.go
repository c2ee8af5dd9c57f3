package domain

import (
	"strings"
	"time"
)

// ModerationGraceWindow is how long a flagged-but-unreviewed item stays
// hidden. Items flagged longer ago without review are treated as resolved and
// become visible again.
const ModerationGraceWindow = 12 * time.Hour

// DefaultShareCaption fills in for a blank description on a shared smile.
const DefaultShareCaption = "A beautiful smile"

// SmileNotification is a system-emitted smile delivery: a curated image paired
// with a simulated location. Immutable once created; only the scheduler
// creates them.
type SmileNotification struct {
	NotificationID   string    `json:"id" dynamodbav:"notification_id"`
	ImageURL         string    `json:"image_url" dynamodbav:"image_url"`
	ImageDescription string    `json:"image_description" dynamodbav:"image_description"`
	Latitude         float64   `json:"latitude" dynamodbav:"latitude"`
	Longitude        float64   `json:"longitude" dynamodbav:"longitude"`
	LocationName     string    `json:"location_name" dynamodbav:"location_name"`
	SentAt           time.Time `json:"sent_at" dynamodbav:"sent_at"`
}

// SharedSmile is a user-submitted photo post with geolocation and caption.
type SharedSmile struct {
	SmileID       string     `json:"id" dynamodbav:"smile_id"`
	ImageURL      string     `json:"image_url" dynamodbav:"image_url"`
	Description   string     `json:"description" dynamodbav:"description"`
	Latitude      float64    `json:"latitude" dynamodbav:"latitude"`
	Longitude     float64    `json:"longitude" dynamodbav:"longitude"`
	LocationName  string     `json:"location_name" dynamodbav:"location_name"`
	CreatedBy     string     `json:"created_by" dynamodbav:"created_by"` // owner email
	CreatedDate   time.Time  `json:"created_date" dynamodbav:"created_date"`
	IsFlagged     bool       `json:"is_flagged,omitempty" dynamodbav:"is_flagged"`
	FlaggedAt     *time.Time `json:"flagged_at,omitempty" dynamodbav:"flagged_at"`
	AdminReviewed bool       `json:"admin_reviewed,omitempty" dynamodbav:"admin_reviewed"`
}

// CuratedSmile is a catalog entry the scheduler draws deliveries from.
type CuratedSmile struct {
	SmileID     string    `json:"id" dynamodbav:"smile_id"`
	ImageURL    string    `json:"image_url" dynamodbav:"image_url"`
	Description string    `json:"description" dynamodbav:"description"`
	Enable      bool      `json:"enable" dynamodbav:"enable"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated" dynamodbav:"updated_at"`
}

// Feed item types.
const (
	ItemTypeNotification = "notification"
	ItemTypeSharedSmile  = "shared_smile"
)

// FeedItem is the unified shape notifications and shared smiles take in the
// home feed. Timestamp is the effective timestamp: sent_at for notifications,
// created_date for shared smiles.
type FeedItem struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	ImageURL     string    `json:"image_url"`
	Description  string    `json:"description"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	LocationName string    `json:"location_name"`
	CreatedBy    string    `json:"created_by,omitempty"`
	Timestamp    time.Time `json:"timestamp"`

	flagged       bool
	flaggedAt     *time.Time
	adminReviewed bool
}

// Item converts a notification to its feed shape.
func (n SmileNotification) Item() FeedItem {
	return FeedItem{
		ID:           n.NotificationID,
		Type:         ItemTypeNotification,
		ImageURL:     n.ImageURL,
		Description:  n.ImageDescription,
		Latitude:     n.Latitude,
		Longitude:    n.Longitude,
		LocationName: n.LocationName,
		Timestamp:    n.SentAt,
	}
}

// Item converts a shared smile to its feed shape, carrying its moderation
// state along for visibility checks.
func (s SharedSmile) Item() FeedItem {
	return FeedItem{
		ID:            s.SmileID,
		Type:          ItemTypeSharedSmile,
		ImageURL:      s.ImageURL,
		Description:   s.Description,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		LocationName:  s.LocationName,
		CreatedBy:     s.CreatedBy,
		Timestamp:     s.CreatedDate,
		flagged:       s.IsFlagged,
		flaggedAt:     s.FlaggedAt,
		adminReviewed: s.AdminReviewed,
	}
}

// VisibleAt applies the moderation grace window: an item is hidden only while
// it is flagged, unreviewed, and the flag is younger than the grace window.
func (f FeedItem) VisibleAt(now time.Time) bool {
	if !f.flagged || f.adminReviewed {
		return true
	}
	if f.flaggedAt == nil {
		return true
	}
	return now.Sub(*f.flaggedAt) >= ModerationGraceWindow
}

// Matches reports whether the item's description or location contains term
// case-insensitively. An empty term matches everything.
func (f FeedItem) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(f.Description), term) ||
		strings.Contains(strings.ToLower(f.LocationName), term)
}
