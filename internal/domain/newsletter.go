package domain

import "time"

// NewsletterConfirmation is a pending double-opt-in token. Rows expire via
// DynamoDB TTL on expires_at.
type NewsletterConfirmation struct {
	UserID    string    `json:"user_id" dynamodbav:"user_id"`
	Email     string    `json:"email" dynamodbav:"email"`
	Token     string    `json:"-" dynamodbav:"token"`
	ExpiresAt int64     `json:"expires_at" dynamodbav:"expires_at"` // unix seconds, TTL attribute
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}
