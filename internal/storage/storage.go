package storage

import (
	"database/sql"
	"fmt"
	"time"

	"cardstack/internal/config"
	"cardstack/internal/repository"
	"cardstack/internal/repository/migrations"
	"cardstack/internal/repository/postgres"
	"cardstack/internal/repository/sqlite"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Store is an opened, migrated key-value backend
type Store struct {
	KV    repository.KVStore
	close func() error
}

// Close releases the underlying database
func (s *Store) Close() error {
	return s.close()
}

// Open connects to the backend selected by cfg.StoreDriver and applies migrations
func Open(cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, err
		}
		if err := migrations.Up(db, "postgres", logger); err != nil {
			db.Close()
			return nil, err
		}
		return &Store{KV: postgres.NewKVRepo(db), close: db.Close}, nil

	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := migrations.Up(db.DB, "sqlite", logger); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("SQLite store opened", zap.String("path", cfg.SQLitePath))
		return &Store{KV: sqlite.NewKVRepo(db), close: db.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		logger.Info("Database connection established")
		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}
