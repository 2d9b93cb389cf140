package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for our application
type Config struct {
	AppName    string `envconfig:"APP_NAME" default:"Waitlist Management API"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`

	// Server configuration
	Port           string        `envconfig:"PORT" default:"8080"`
	GinMode        string        `envconfig:"GIN_MODE" default:"debug"`
	APIVersion     string        `envconfig:"API_VERSION" default:"v1"`
	APIPrefix      string        `envconfig:"API_PREFIX" default:""`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout   time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout    time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	MaxHeaderBytes int           `envconfig:"MAX_HEADER_BYTES" default:"1048576"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"debug"`

	CORSAllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173"`

	// Seed the demo events on startup
	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`

	Auth      AuthConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig
}

// AuthConfig holds the demo credentials accepted by staff routes
type AuthConfig struct {
	DemoToken  string        `envconfig:"AUTH_DEMO_TOKEN" default:"demo-token"`
	DemoAPIKey string        `envconfig:"AUTH_DEMO_API_KEY" default:"demo-api-key"`
	TokenTTL   time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"24h"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`

	// TTL values for different operations
	DashboardTTL   time.Duration `envconfig:"REDIS_DASHBOARD_TTL" default:"10s"`
	IdempotencyTTL time.Duration `envconfig:"REDIS_IDEMPOTENCY_TTL" default:"2h"`
}

// Addr returns the host:port pair go-redis dials
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled         bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	WindowDuration  time.Duration `envconfig:"RATE_LIMIT_WINDOW_DURATION" default:"60s"`
	DefaultRequests int           `envconfig:"RATE_LIMIT_DEFAULT_REQUESTS" default:"60"`
	GuestRequests   int           `envconfig:"RATE_LIMIT_GUEST_REQUESTS" default:"30"`
	StaffRequests   int           `envconfig:"RATE_LIMIT_STAFF_REQUESTS" default:"200"`
	AuthRequests    int           `envconfig:"RATE_LIMIT_AUTH_REQUESTS" default:"10"`
	SyncRequests    int           `envconfig:"RATE_LIMIT_SYNC_REQUESTS" default:"20"`
	WhitelistedIPs  []string      `envconfig:"RATE_LIMIT_WHITELISTED_IPS" default:""`
}

// KafkaConfig holds the domain event producer configuration
type KafkaConfig struct {
	Enabled  bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers  []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic    string   `envconfig:"KAFKA_TOPIC" default:"waitlist-events"`
	ClientID string   `envconfig:"KAFKA_CLIENT_ID" default:"waitwise"`

	// Guest alert workers reading the same topic
	AlertsEnabled bool   `envconfig:"KAFKA_ALERTS_ENABLED" default:"false"`
	AlertsGroupID string `envconfig:"KAFKA_ALERTS_GROUP_ID" default:"waitwise-guest-alerts"`
	AlertWorkers  int    `envconfig:"KAFKA_ALERT_WORKERS" default:"2"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.CORSAllowOrigins = trimAll(cfg.CORSAllowOrigins)
	cfg.RateLimit.WhitelistedIPs = trimAll(cfg.RateLimit.WhitelistedIPs)
	cfg.Kafka.Brokers = trimAll(cfg.Kafka.Brokers)

	return &cfg, nil
}

// trimAll drops blanks left by comma-separated env values
func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return strings.TrimSuffix(c.APIPrefix, "/") + "/" + c.APIVersion
}
