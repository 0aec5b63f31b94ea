package database

import (
	"context"
	"fmt"
	"time"

	"kirana/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	applicationName   = "kirana"
	connMaxIdleTime   = 30 * time.Minute
	healthCheckPeriod = time.Minute
)

// NewPool opens the shared connection pool and verifies it with a ping.
// Repositories receive the pool explicitly; there is no package-level handle.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := newPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	conn := poolConfig.ConnConfig
	log := logger.With().
		Str("component", "database").
		Str("host", conn.Host).
		Uint16("port", conn.Port).
		Str("database", conn.Database).
		Logger()

	log.Info().
		Int32("max_conns", poolConfig.MaxConns).
		Int32("min_conns", poolConfig.MinConns).
		Dur("max_conn_lifetime", poolConfig.MaxConnLifetime).
		Msg("opening connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error().Err(err).Msg("database unreachable")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Int32("total_conns", pool.Stat().TotalConns()).Msg("connection pool ready")

	return pool, nil
}

// newPoolConfig turns the application settings into a pgxpool configuration.
// The URL is never logged here or by callers since it carries credentials.
func newPoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	if cfg.MaxConnections < 1 {
		return nil, fmt.Errorf("invalid database config: max connections must be at least 1")
	}
	if cfg.MinConnections < 0 || cfg.MinConnections > cfg.MaxConnections {
		return nil, fmt.Errorf("invalid database config: min connections must be between 0 and %d", cfg.MaxConnections)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = connMaxIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod

	// Shows up in pg_stat_activity next to every query.
	if _, ok := poolConfig.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolConfig.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	return poolConfig, nil
}
