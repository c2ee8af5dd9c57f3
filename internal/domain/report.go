package domain

import "time"

// Report reasons offered to users. Fixed enum; anything else is rejected.
const (
	ReasonInappropriate = "inappropriate"
	ReasonOffensive     = "offensive"
	ReasonSpam          = "spam"
	ReasonNotSmile      = "not_smile"
	ReasonOther         = "other"
)

type ContentReport struct {
	ReportID            string    `json:"id" dynamodbav:"report_id"`
	ReportedContentType string    `json:"reported_content_type" dynamodbav:"reported_content_type"`
	ReportedContentID   string    `json:"reported_content_id" dynamodbav:"reported_content_id"`
	ReportReason        string    `json:"report_reason" dynamodbav:"report_reason"`
	AdditionalDetails   string    `json:"additional_details,omitempty" dynamodbav:"additional_details"`
	CreatedBy           string    `json:"created_by" dynamodbav:"created_by"`
	CreatedAt           time.Time `json:"created" dynamodbav:"created_at"`
}

type CreateReportRequest struct {
	ReportedContentType string `json:"reported_content_type" validate:"required,oneof=notification shared_smile"`
	ReportedContentID   string `json:"reported_content_id" validate:"required"`
	ReportReason        string `json:"report_reason" validate:"required,oneof=inappropriate offensive spam not_smile other"`
	AdditionalDetails   string `json:"additional_details"`
}

// Feedback types offered on the about screen.
const (
	FeedbackFeatureRequest = "feature_request"
	FeedbackBugReport      = "bug_report"
	FeedbackGeneral        = "general_feedback"
)

type Feedback struct {
	FeedbackID   string    `json:"id" dynamodbav:"feedback_id"`
	FeedbackType string    `json:"feedback_type" dynamodbav:"feedback_type"`
	Message      string    `json:"message" dynamodbav:"message"`
	ContactEmail string    `json:"contact_email,omitempty" dynamodbav:"contact_email"`
	CreatedBy    string    `json:"created_by" dynamodbav:"created_by"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
}

type CreateFeedbackRequest struct {
	FeedbackType string `json:"feedback_type" validate:"required,oneof=feature_request bug_report general_feedback"`
	Message      string `json:"message" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}
