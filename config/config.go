package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds everything the server reads from the environment.
type Configuration struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"5001"`

	// Database
	DBDriver    string `env:"DB_DRIVER" envDefault:"postgres"` // postgres | sqlite
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"gshock.db"`

	// Session tokens
	JWTSecret   string `env:"JWT_SECRET,required"`
	JWTTTLHours int    `env:"JWT_TTL_HOURS" envDefault:"168"`
	AdminEmails string `env:"ADMIN_EMAILS"` // comma separated

	// Firebase
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsJSON string `env:"FIREBASE_CREDENTIALS_JSON"`

	// Razorpay
	RazorpayKeyID         string `env:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret     string `env:"RAZORPAY_KEY_SECRET"`
	RazorpayWebhookSecret string `env:"RAZORPAY_WEBHOOK_SECRET"`
	RazorpayAPIURL        string `env:"RAZORPAY_API_URL" envDefault:"https://api.razorpay.com/v1"`
	PaymentCurrency       string `env:"PAYMENT_CURRENCY" envDefault:"INR"`

	// Gemini
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// Chat rate limit per client
	ChatRatePerMinute int `env:"CHAT_RATE_PER_MINUTE" envDefault:"20"`
	ChatRateBurst     int `env:"CHAT_RATE_BURST" envDefault:"5"`

	// Email
	SMTPHost           string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort           int    `env:"SMTP_PORT" envDefault:"587"`
	EmailUser          string `env:"EMAIL_USER"`
	EmailPass          string `env:"EMAIL_PASS"`
	EmailFromName      string `env:"EMAIL_FROM_NAME" envDefault:"Robusta Admin"`
	BroadcastBatchSize int    `env:"BROADCAST_BATCH_SIZE" envDefault:"50"`

	// Google reviews
	GooglePlaceID       string `env:"GOOGLE_PLACE_ID"`
	GoogleAPIKey        string `env:"GOOGLE_API_KEY"`
	GooglePlacesURL     string `env:"GOOGLE_PLACES_URL" envDefault:"https://maps.googleapis.com/maps/api/place/details/json"`
	RedisURL            string `env:"REDIS_URL"`
	ReviewsCacheMinutes int    `env:"REVIEWS_CACHE_MINUTES" envDefault:"60"`

	// Uploads and backups
	UploadDir            string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	BackupDir            string `env:"BACKUP_DIR" envDefault:"./backup/uploads"`
	BackupSchedule       string `env:"BACKUP_SCHEDULE" envDefault:"0 2 * * *"`
	BackupRetentionHours int    `env:"BACKUP_RETENTION_HOURS" envDefault:"96"`
	MaxUploadMB          int    `env:"MAX_UPLOAD_MB" envDefault:"32"`

	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:5001"`
	FrontendURL   string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	CORSOrigins   string `env:"CORS_ORIGINS" envDefault:"*"`

	// Order event stream; empty brokers disables it
	KafkaBrokers    string `env:"KAFKA_BROKERS"`
	KafkaOrderTopic string `env:"KAFKA_ORDER_TOPIC" envDefault:"cafe.orders"`

	MetricsAPIKey string `env:"METRICS_API_KEY"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // text | json
	LogFile   string `env:"LOG_FILE"`
}

// Load reads an optional .env file and parses the environment.
func Load(files ...string) (*Configuration, error) {
	_ = godotenv.Load(files...)

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (c *Configuration) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// AdminEmailList returns the lowercased admin emails.
func (c *Configuration) AdminEmailList() []string {
	return splitList(c.AdminEmails, true)
}

// CORSOriginList returns the allowed origins; "*" means all.
func (c *Configuration) CORSOriginList() []string {
	origins := splitList(c.CORSOrigins, false)
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func (c *Configuration) JWTTTL() time.Duration {
	if c.JWTTTLHours <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(c.JWTTTLHours) * time.Hour
}

func (c *Configuration) ReviewsCacheTTL() time.Duration {
	return time.Duration(c.ReviewsCacheMinutes) * time.Minute
}

func (c *Configuration) BackupRetention() time.Duration {
	return time.Duration(c.BackupRetentionHours) * time.Hour
}

// PostgresDSN builds a DSN from the discrete DB_* fields when DATABASE_URL is unset.
func (c *Configuration) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func splitList(raw string, lower bool) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lower {
			part = strings.ToLower(part)
		}
		out = append(out, part)
	}
	return out
}
