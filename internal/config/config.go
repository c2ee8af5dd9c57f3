package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables
	S3BucketName string
	// S3PublicBaseURL is prepended to object keys when building the public
	// image URL stored on shared smiles. Falls back to the standard
	// https://<bucket>.s3.<region>.amazonaws.com form when empty.
	S3PublicBaseURL string

	JWTPrivateKeyPath      string
	JWTPublicKeyPath       string
	JWTExpiry              time.Duration
	RefreshTokenExpiryDays int

	// SchedulerInterval is how often the smile scheduler evaluates every
	// enabled settings record. MapRefreshInterval is how often the map
	// snapshot is rebuilt.
	SchedulerInterval  time.Duration
	MapRefreshInterval time.Duration

	// GeocodeModel and GeocodeAPIKey configure the LLM used for reverse
	// geocoding. GeocodeTimeout bounds a single geocode call.
	GeocodeModel   string
	GeocodeAPIKey  string
	GeocodeBaseURL string
	GeocodeTimeout time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	SNSRegion   string
	SNSTopicARN string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users                   string
	Sessions                string
	UserSettings            string
	SmileNotifications      string
	SharedSmiles            string
	ContentReports          string
	Feedback                string
	CuratedSmiles           string
	NewsletterConfirmations string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			Users:                   getEnv("DYNAMO_TABLE_USERS", "users"),
			Sessions:                getEnv("DYNAMO_TABLE_SESSIONS", "sessions"),
			UserSettings:            getEnv("DYNAMO_TABLE_USER_SETTINGS", "user_settings"),
			SmileNotifications:      getEnv("DYNAMO_TABLE_SMILE_NOTIFICATIONS", "smile_notifications"),
			SharedSmiles:            getEnv("DYNAMO_TABLE_SHARED_SMILES", "shared_smiles"),
			ContentReports:          getEnv("DYNAMO_TABLE_CONTENT_REPORTS", "content_reports"),
			Feedback:                getEnv("DYNAMO_TABLE_FEEDBACK", "feedback"),
			CuratedSmiles:           getEnv("DYNAMO_TABLE_CURATED_SMILES", "curated_smiles"),
			NewsletterConfirmations: getEnv("DYNAMO_TABLE_NEWSLETTER_CONFIRMATIONS", "newsletter_confirmations"),
		},
		S3BucketName:    getEnv("S3_BUCKET_NAME", "mysmileproject-images"),
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),

		JWTPrivateKeyPath:      getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:       getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiry:              time.Duration(getEnvInt("JWT_EXPIRY_DAYS", 7)) * 24 * time.Hour,
		RefreshTokenExpiryDays: getEnvInt("REFRESH_TOKEN_EXPIRY_DAYS", 30),

		SchedulerInterval:  getEnvDuration("SCHEDULER_INTERVAL", time.Minute),
		MapRefreshInterval: getEnvDuration("MAP_REFRESH_INTERVAL", 30*time.Second),

		GeocodeModel:   getEnv("GEOCODE_MODEL", "gpt-4o-mini"),
		GeocodeAPIKey:  getEnv("GEOCODE_API_KEY", ""),
		GeocodeBaseURL: getEnv("GEOCODE_BASE_URL", ""),
		GeocodeTimeout: getEnvDuration("GEOCODE_TIMEOUT", 10*time.Second),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "hello@mysmileproject.app"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SNSRegion:   getEnv("SNS_REGION", "us-east-1"),
		SNSTopicARN: getEnv("SNS_TOPIC_ARN", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
