package db

import (
	"context"
	"fmt"
	"time"

	"github.com/TOOL2U/LandWise/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds a pgx pool from config. The pool connects lazily; an
// unreachable database shows up as query errors, which the read paths with
// safe defaults absorb (early-access and availability stay answerable).
func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = 20
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}
