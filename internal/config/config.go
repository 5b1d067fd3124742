package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

const (
	StoreNone     = "none"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Database struct {
	Host         string `env:"DB_HOST"`
	Port         int    `env:"DB_PORT" envDefault:"5432"`
	User         string `env:"DB_USER"`
	Password     string `env:"DB_PASSWORD"`
	Name         string `env:"DB_NAME"`
	SSLMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"5"`
}

// DSN returns a lib/pq keyword/value connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type Redis struct {
	Addr         string `env:"REDIS_ADDR"`
	Password     string `env:"REDIS_PASSWORD"`
	DB           int    `env:"REDIS_DB" envDefault:"0"`
	QuestionsKey string `env:"REDIS_QUESTIONS_KEY" envDefault:"archive-bot:questions"`
	QuestionsMax int64  `env:"REDIS_QUESTIONS_MAX" envDefault:"1000"`
}

type Config struct {
	TelegramToken       string        `env:"BOT_TOKEN,required"`
	Debug               bool          `env:"BOT_DEBUG" envDefault:"false"`
	PollTimeout         int           `env:"POLL_TIMEOUT" envDefault:"60"`
	Workers             int           `env:"WORKERS" envDefault:"8"`
	SendRetryMaxElapsed time.Duration `env:"SEND_RETRY_MAX_ELAPSED" envDefault:"30s"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	AdminChatID         int64         `env:"ADMIN_CHAT_ID" envDefault:"0"`
	QuestionStore       string        `env:"QUESTION_STORE" envDefault:"none"`
	Database            Database
	Redis               Redis
}

// Load reads an optional .env file and then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.TelegramToken) == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("WORKERS must be > 0, got %d", c.Workers)
	}
	if c.PollTimeout < 0 {
		return fmt.Errorf("POLL_TIMEOUT must be >= 0, got %d", c.PollTimeout)
	}

	c.QuestionStore = strings.ToLower(strings.TrimSpace(c.QuestionStore))
	switch c.QuestionStore {
	case "", StoreNone:
		c.QuestionStore = StoreNone
	case StorePostgres:
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
			return errors.New("DB_HOST, DB_USER and DB_NAME are required for QUESTION_STORE=postgres")
		}
	case StoreRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is required for QUESTION_STORE=redis")
		}
	default:
		return fmt.Errorf("invalid QUESTION_STORE %q; allowed: none, postgres, redis", c.QuestionStore)
	}
	return nil
}
