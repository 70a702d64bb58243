package config

import (
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	StaticDir string

	// DatabaseURL selects the postgres driver when set; otherwise the
	// credential store falls back to a local sqlite file.
	DatabaseURL string
	SQLitePath  string

	// SessionStore is "memory" or "redis".
	SessionStore  string
	SessionTTL    time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RapidAPIKey     string
	RapidAPIHost    string
	SearchPages     int
	UpstreamTimeout time.Duration

	PageSize int

	AuthRatePerMinute int
	AuthRateBurst     int
}

func Load() *Config {
	// Missing .env is fine, real deployments use actual env vars.
	_ = godotenv.Load()

	return &Config{
		Addr:      GetEnvAsString("ADDR", ":8080"),
		StaticDir: GetEnvAsString("STATIC_DIR", "./views"),

		DatabaseURL: GetEnvAsString("DATABASE_URL", ""),
		SQLitePath:  GetEnvAsString("SQLITE_PATH", "quickhire.db"),

		SessionStore:  GetEnvAsString("SESSION_STORE", "memory"),
		SessionTTL:    GetEnvAsDuration("SESSION_TTL", 24*time.Hour),
		RedisAddr:     GetEnvAsString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: GetEnvAsString("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),

		RapidAPIKey:     GetEnvAsString("RAPIDAPI_KEY", ""),
		RapidAPIHost:    GetEnvAsString("RAPIDAPI_HOST", "jsearch.p.rapidapi.com"),
		SearchPages:     GetEnvAsInt("SEARCH_PAGES", 5),
		UpstreamTimeout: GetEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),

		PageSize: GetEnvAsInt("JOBS_PER_PAGE", 2),

		AuthRatePerMinute: GetEnvAsInt("AUTH_RATE_PER_MINUTE", 30),
		AuthRateBurst:     GetEnvAsInt("AUTH_RATE_BURST", 10),
	}
}
