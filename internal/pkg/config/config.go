package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8000"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Admin  AdminConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Notify NotifyConfig

	// ReceiptBaseURL points at the external receipt collaborator.
	ReceiptBaseURL string `env:"RECEIPT_BASE_URL, default=http://localhost:9090"`
}

// AdminConfig seeds the single admin identity at boot. The identity store is
// never mutated by runtime traffic.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin@cargoconnect.com"`
	Password string `env:"ADMIN_PASSWORD"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cargoconnect"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// NotifyConfig controls the outbound notification path.
type NotifyConfig struct {
	WebhookURL string        `env:"NOTIFY_WEBHOOK_URL, default=http://localhost:9091/notify"`
	Timeout    time.Duration `env:"NOTIFY_TIMEOUT,     default=5s"`
	Workers    int           `env:"NOTIFY_WORKERS,     default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
