package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Tillbook"`
		Port int    `envconfig:"PORT" default:"8080"`
		// OwnerID is attributed to records when a request carries no X-Owner-ID.
		OwnerID string `envconfig:"OWNER_ID" default:"00000000-0000-0000-0000-000000000000"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"tillbook"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	}

	Redis struct {
		Addr     string        `envconfig:"REDIS_ADDR" default:""`
		Password string        `envconfig:"REDIS_PASSWORD" default:""`
		DB       int           `envconfig:"REDIS_DB" default:"0"`
		TTL      time.Duration `envconfig:"CACHE_TTL" default:"30s"`
	}

	Storage struct {
		Dir string `envconfig:"STORAGE_DIR" default:"./data"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
