package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	// Port is the HTTP listen port.
	Port string `envconfig:"PORT" default:"8080"`

	// DevMode switches gin to debug mode and the logger to console output.
	DevMode bool `split_words:"true"`

	LogLevel  string `split_words:"true" default:"info"`
	LogFormat string `split_words:"true" default:"json"`

	// DBDriver selects the relational store: postgres or sqlite.
	DBDriver string `envconfig:"DB_DRIVER" default:"postgres"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"exerciselog"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBTimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`

	// SQLitePath is only used when DBDriver is sqlite.
	SQLitePath string `envconfig:"SQLITE_PATH" default:"exerciselog.db"`

	// RedisURL enables the exercise catalog cache when set. See
	// https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL for the format.
	RedisURL string        `envconfig:"REDIS_URL"`
	CacheTTL time.Duration `split_words:"true" default:"5m"`

	// LegacyErrors answers catalog and delete failures with HTTP 200 and the
	// bare error text as a JSON string, as older web clients expect.
	LegacyErrors bool `split_words:"true"`

	ShutdownTimeout time.Duration `split_words:"true" default:"30s"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", c.DBDriver, DriverPostgres, DriverSQLite)
	}
	return nil
}

// PostgresDSN builds the key/value DSN understood by gorm.io/driver/postgres.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s "+
			"application_name=exerciselog TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimeZone,
	)
}
