package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/dzoniops/room-booking-service/db"
)

type Config struct {
	Port        string `validate:"required,numeric"`
	MetricsPort string `validate:"required,numeric"`

	DBDriver   string `validate:"oneof=postgres sqlite"`
	PGHost     string `validate:"required_if=DBDriver postgres"`
	PGPort     string `validate:"required_if=DBDriver postgres"`
	PGUser     string `validate:"required_if=DBDriver postgres"`
	PGPassword string
	PGDatabase string `validate:"required_if=DBDriver postgres"`
	SQLitePath string `validate:"required_if=DBDriver sqlite"`
	LogSQL     bool

	RedisAddr     string
	RedisPassword string

	LockWait time.Duration `validate:"gte=0"`
	LockTTL  time.Duration `validate:"gte=0"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	cfg := &Config{
		Port:          getEnv("PORT", "50051"),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
		DBDriver:      getEnv("DB_DRIVER", db.DriverPostgres),
		PGHost:        os.Getenv("PGHOST"),
		PGPort:        getEnv("PGPORT", "5432"),
		PGUser:        os.Getenv("PGUSER"),
		PGPassword:    os.Getenv("PGPASSWORD"),
		PGDatabase:    os.Getenv("PGDATABASE"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	var err error
	if cfg.LogSQL, err = parseBool("LOG_SQL"); err != nil {
		return nil, err
	}
	if cfg.LockWait, err = parseDuration("LOCK_WAIT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.LockTTL, err = parseDuration("LOCK_TTL", 30*time.Second); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Database() db.Config {
	dsn := db.SQLiteDSN(c.SQLitePath)
	if c.DBDriver == db.DriverPostgres {
		dsn = db.PostgresDSN(c.PGHost, c.PGPort, c.PGUser, c.PGPassword, c.PGDatabase)
	}
	return db.Config{Driver: c.DBDriver, DSN: dsn, LogSQL: c.LogSQL}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func parseBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", key, err)
	}
	return b, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return d, nil
}
