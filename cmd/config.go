package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const defaultAllowedOrigins = "http://localhost:3000,http://127.0.0.1:3000"

// Config is the process configuration read from the environment.
type Config struct {
	AppHost  string `env:"APP_HOST,default=0.0.0.0"`
	AppPort  string `env:"PORT,default=8080"`
	LogLevel string `env:"APP_LOG_LEVEL,default=info"`

	// Comma separated, defaults to the local frontend dev servers.
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	SupabaseURL            string `env:"SUPABASE_URL,required"`
	SupabaseAnonKey        string `env:"SUPABASE_ANON_KEY,required"`
	SupabaseServiceRoleKey string `env:"SUPABASE_SERVICE_ROLE_KEY,required"`
	SupabaseJWTSecret      string `env:"SUPABASE_JWT_SECRET"`
	HTTPClientTimeoutSec   int    `env:"HTTP_CLIENT_TIMEOUT_SECONDS,default=0"`

	PGHost     string `env:"PG_HOST,required"`
	PGPort     int    `env:"PG_PORT,default=5432"`
	PGUser     string `env:"PG_USER,required"`
	PGPassword string `env:"PG_PASS"`
	PGDB       string `env:"PG_DB,required"`
	PGPoolSize int    `env:"PG_POOL_SIZE,default=16"`

	UploadDir      string `env:"UPLOAD_DIR,default=uploads/profile_pictures"`
	PostsListLimit int    `env:"POSTS_LIST_LIMIT,default=50"`

	RedisAddr          string `env:"REDIS_ADDR"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB,default=0"`
	ProfileCacheTTLSec int    `env:"PROFILE_CACHE_TTL_SECONDS,default=60"`

	KafkaBrokers string `env:"KAFKA_BROKERS"`
	KafkaTopic   string `env:"KAFKA_TOPIC,default=barterup.events"`
}

// Origins returns the allowed CORS origins.
func (c *Config) Origins() []string {
	raw := c.AllowedOrigins
	if strings.TrimSpace(raw) == "" {
		raw = defaultAllowedOrigins
	}
	return splitList(raw)
}

// Brokers returns the Kafka broker addresses, empty when publishing is off.
func (c *Config) Brokers() []string {
	return splitList(c.KafkaBrokers)
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file, if present, and
// decodes the environment into a Config.
func parseConfig(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
