// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers for
// Postgres (production) and SQLite (pure Go driver, dev and tests), the
// pool policy shared by both, and schema migrations.
package repo

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/gchan/gchan-backend/internal/config"
	"github.com/gchan/gchan-backend/internal/domain"
)

// Open builds the connection pool described by cfg, registers statement
// tracing, and verifies connectivity with a ping bounded by ctx.
func Open(ctx context.Context, cfg config.DBConfig) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "postgres":
		db, err = OpenPostgres(cfg)
	case "sqlite":
		db, err = OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Use(tracing.NewPlugin()); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("register tracing: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	tunePool(sqlDB, cfg.MaxOpenConns, cfg.MaxIdleConns)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return db, nil
}

// PostgresConnConfig parses the connection string and applies the TLS policy:
// disableTLS talks plain TCP (local dev), insecure keeps TLS but skips
// certificate verification (hosted Postgres with self-signed chains).
func PostgresConnConfig(url string, disableTLS, insecure bool) (*pgx.ConnConfig, error) {
	if url == "" {
		return nil, errors.New("empty postgres connection string")
	}
	cc, err := pgx.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	switch {
	case disableTLS:
		cc.TLSConfig = nil
		cc.Fallbacks = nil
	case insecure:
		cc.TLSConfig = &tls.Config{
			InsecureSkipVerify: true,
			ServerName:         cc.Host,
		}
		cc.Fallbacks = nil
	}
	return cc, nil
}

// OpenPostgres opens a pgx-backed pool and hands it to GORM.
func OpenPostgres(cfg config.DBConfig) (*gorm.DB, error) {
	cc, err := PostgresConnConfig(cfg.URL, cfg.DisableTLS, cfg.InsecureTLS)
	if err != nil {
		return nil, err
	}
	sqlDB := stdlib.OpenDB(*cc)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	return db, nil
}

// tunePool applies the shared pool policy. Connections are checked out per
// statement and returned by database/sql on every exit path.
func tunePool(sqlDB *sql.DB, maxOpen, maxIdle int) {
	if maxOpen <= 0 {
		maxOpen = 10
	}
	if maxIdle < 0 {
		maxIdle = 0
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}

// AutoMigrate creates or updates every board table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Message{},
		&domain.Reply{},
		&domain.Marquee{},
		&domain.Placeholder{},
		&domain.Idempotency{},
	)
}

// Close releases the pool. Safe to call with a nil handle.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
