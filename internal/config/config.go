package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Buxfer"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"buxfer"`

		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
	}

	Auth struct {
		Secret   string        `envconfig:"AUTH_SECRET" required:"true"`
		TokenTTL time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"168h"`
	}

	Household struct {
		Members     []string `envconfig:"HOUSEHOLD_MEMBERS" default:"ray,amber"`
		DebtViewers []string `envconfig:"HOUSEHOLD_DEBT_VIEWERS" default:"ray"`
	}

	Categories struct {
		Default string `envconfig:"CATEGORY_DEFAULT" default:"Other"`
		// first | longest
		Match string `envconfig:"CATEGORY_MATCH" default:"first"`
	}

	LocalState struct {
		// sqlite | redis
		Backend    string `envconfig:"LOCAL_STATE_BACKEND" default:"sqlite"`
		SQLitePath string `envconfig:"LOCAL_STATE_PATH" default:"./data/local.db"`
		RedisAddr  string `envconfig:"LOCAL_STATE_REDIS_ADDR" default:"localhost:6379"`
	}

	AMQP struct {
		URL      string `envconfig:"AMQP_URL"`
		Exchange string `envconfig:"AMQP_EXCHANGE" default:"buxfer.changes"`
	}

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return fmt.Errorf("AUTH_SECRET must not be empty")
	}

	if len(c.Household.Members) == 0 {
		return fmt.Errorf("HOUSEHOLD_MEMBERS must list at least one member")
	}

	switch c.Categories.Match {
	case "first", "longest":
	default:
		return fmt.Errorf("invalid CATEGORY_MATCH %q: must be first or longest", c.Categories.Match)
	}

	switch c.LocalState.Backend {
	case "sqlite", "redis":
	default:
		return fmt.Errorf("invalid LOCAL_STATE_BACKEND %q: must be sqlite or redis", c.LocalState.Backend)
	}

	return nil
}
