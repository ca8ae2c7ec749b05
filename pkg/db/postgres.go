package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AccelByte/extend-leaderboard-common/pkg/common"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Default connection settings.
const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 300 * time.Second
	defaultConnMaxIdleTime = 300 * time.Second

	// pingTimeout bounds the startup connectivity check so a database outage
	// cannot stall process startup indefinitely.
	pingTimeout = 5 * time.Second
)

// Config holds PostgreSQL connection settings.
type Config struct {
	Host            string
	Port            int
	Database        string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// NewConfigFromEnv builds a Config from environment variables, falling back
// to defaults for anything unset:
//
//	DB_HOST (localhost), DB_PORT (5432), DB_NAME (leaderboard_service),
//	DB_USER (postgres), DB_PASSWORD (empty), DB_SSLMODE (disable),
//	DB_MAX_OPEN_CONNS (25), DB_MAX_IDLE_CONNS (5),
//	DB_CONN_MAX_LIFETIME (300 seconds), DB_CONN_MAX_IDLE_TIME (300 seconds)
func NewConfigFromEnv() *Config {
	return &Config{
		Host:            common.GetEnv("DB_HOST", "localhost"),
		Port:            common.GetEnvAsInt("DB_PORT", 5432),
		Database:        common.GetEnv("DB_NAME", "leaderboard_service"),
		User:            common.GetEnv("DB_USER", "postgres"),
		Password:        common.GetEnv("DB_PASSWORD", ""),
		SSLMode:         common.GetEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    common.GetEnvAsInt("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
		MaxIdleConns:    common.GetEnvAsInt("DB_MAX_IDLE_CONNS", defaultMaxIdleConns),
		ConnMaxLifetime: common.GetEnvAsSeconds("DB_CONN_MAX_LIFETIME", defaultConnMaxLifetime),
		ConnMaxIdleTime: common.GetEnvAsSeconds("DB_CONN_MAX_IDLE_TIME", defaultConnMaxIdleTime),
	}
}

// DSN returns the PostgreSQL connection string for this config.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Database, c.User, c.Password, c.SSLMode,
	)
}

// Connect opens a database connection pool, applies pool settings, and
// verifies connectivity with a bounded ping. The returned handle is the
// single durable-store resource for the process; it is constructed once at
// startup and passed into the repository by injection.
func Connect(cfg *Config) (*sql.DB, error) {
	database, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	database.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	database.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return database, nil
}

// Health verifies the database connection is alive. Used by callers that
// expose liveness/readiness checks.
func Health(database *sql.DB) error {
	if database == nil {
		return fmt.Errorf("database unhealthy: no connection")
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		return fmt.Errorf("database unhealthy: %w", err)
	}

	return nil
}
