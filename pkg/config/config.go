package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Session struct {
		StoragePath  string        `env:"SESSION_STORAGE_PATH" env-default:"./dharmayuga-session.json"`
		CookieName   string        `env:"SESSION_COOKIE_NAME" env-default:"user_session_id"`
		CookieMaxAge time.Duration `env:"SESSION_COOKIE_MAX_AGE" env-default:"8760h"`
	}
	Hero struct {
		RotationInterval time.Duration `env:"HERO_ROTATION_INTERVAL" env-default:"5s"`
		PauseCooldown    time.Duration `env:"HERO_PAUSE_COOLDOWN" env-default:"3s"`
		SwipeThreshold   float64       `env:"HERO_SWIPE_THRESHOLD" env-default:"50"`
	}
	Refresh struct {
		// Interval of the background refetch of hero pages and reels, 0 disables it.
		Interval time.Duration `env:"REFRESH_INTERVAL" env-default:"5m"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"10"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"1m"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"5"`
	}
	Retry struct {
		MaxRetries      uint64        `env:"RETRY_MAX_RETRIES" env-default:"2"`
		InitialInterval time.Duration `env:"RETRY_INITIAL_INTERVAL" env-default:"300ms"`
		MaxInterval     time.Duration `env:"RETRY_MAX_INTERVAL" env-default:"3s"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the postgres connection string for database/sql and pgx.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
