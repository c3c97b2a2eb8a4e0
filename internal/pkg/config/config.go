package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
//
// Stripe, Redis, Kafka and Resend are all optional: an empty key disables the
// corresponding integration and the affected endpoints degrade as documented
// (checkout returns 503, idempotency dedup is skipped, events/mail are dropped
// with a warning).
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Stripe  StripeConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Email   EmailConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" required:"true"`
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Bangkok"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Bangkok"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// AdminConfig holds the single dashboard operator credential. The password is
// stored as a bcrypt hash, never in the clear.
type AdminConfig struct {
	Email        string `envconfig:"ADMIN_EMAIL" default:""`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" default:""`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY" default:""`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" default:""`
	Currency      string `envconfig:"STRIPE_CURRENCY" default:"thb"`
}

func (c StripeConfig) Configured() bool {
	return c.SecretKey != ""
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Configured() bool {
	return c.Addr != ""
}

type KafkaConfig struct {
	Brokers            []string `envconfig:"KAFKA_BROKERS" default:""`
	NotificationsTopic string   `envconfig:"KAFKA_NOTIFICATIONS_TOPIC" default:"booking-notifications"`
	GroupID            string   `envconfig:"KAFKA_GROUP_ID" default:"landwise-worker"`
}

func (c KafkaConfig) Configured() bool {
	return len(c.Brokers) > 0 && c.Brokers[0] != ""
}

type EmailConfig struct {
	ResendAPIKey string `envconfig:"RESEND_API_KEY" default:""`
	FromAddress  string `envconfig:"RESEND_FROM_EMAIL" default:"LandWise <onboarding@resend.dev>"`
	NotifyTo     string `envconfig:"LANDWISE_EMAIL" default:""`
}

func (c EmailConfig) Configured() bool {
	return c.ResendAPIKey != "" && c.NotifyTo != ""
}

type BookingConfig struct {
	EarlyAccessLimit  int           `envconfig:"BOOKING_EARLY_ACCESS_LIMIT" default:"10"`
	PendingSweepAfter time.Duration `envconfig:"BOOKING_PENDING_SWEEP_AFTER" default:"24h"`
	SweepInterval     time.Duration `envconfig:"BOOKING_SWEEP_INTERVAL" default:"15m"`
	IdempotencyTTL    time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8889", // Test port
			BaseURL: "http://localhost:3000",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Bangkok",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Bangkok",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Booking: BookingConfig{
			EarlyAccessLimit:  10,
			PendingSweepAfter: 24 * time.Hour,
			SweepInterval:     15 * time.Minute,
			IdempotencyTTL:    24 * time.Hour,
		},
	}
}
