package dynamo

// DynamoDB attribute names used in update expressions across all repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldEnable               = "enable"
	fieldDeletedAt            = "deleted_at"
	fieldRefreshToken         = "refresh_token"
	fieldRefreshExpiresAt     = "refresh_expires_at"
	fieldLastNotificationSent = "last_notification_sent"
	fieldIsFlagged            = "is_flagged"
	fieldFlaggedAt            = "flagged_at"
	fieldAdminReviewed        = "admin_reviewed"
)
