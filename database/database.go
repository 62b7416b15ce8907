package database

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"exerciselog/internal/config"
)

// zerologWriter routes gorm's logger output through zerolog.
type zerologWriter struct{}

func (zerologWriter) Printf(format string, args ...interface{}) {
	log.Debug().Str("component", "gorm").Msgf(format, args...)
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(zerologWriter{}, logger.Config{
			SlowThreshold:             time.Millisecond * 500,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

// Connect opens the store selected by cfg.DBDriver and verifies it answers.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	default:
		return OpenPostgres(cfg.PostgresDSN())
	}
}

func OpenPostgres(dsn string) (*gorm.DB, error) {
	gormCfg := newGormConfig()
	gormCfg.PrepareStmt = true

	db, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(15 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().
		Str("driver", config.DriverPostgres).
		Int("max_open_conns", 50).
		Int("max_idle_conns", 10).
		Msg("connected to database")

	return db, nil
}

// OpenSQLite opens a pure-Go sqlite database. path may be a file name or a
// "file:...?mode=memory" URI.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	// sqlite allows a single writer
	sqlDB.SetMaxOpenConns(1)

	log.Info().Str("driver", config.DriverSQLite).Str("path", path).Msg("connected to database")
	return db, nil
}

// Ping reports whether the store answers a trivial query.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// MonitorDBConnections logs pool pressure every interval until ctx is done.
func MonitorDBConnections(ctx context.Context, db *gorm.DB, interval time.Duration) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn().Err(err).Msg("connection pool monitor disabled")
		return
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats := sqlDB.Stats()
				if stats.MaxOpenConnections > 0 && stats.InUse*4 >= stats.MaxOpenConnections*3 {
					log.Warn().
						Int("in_use", stats.InUse).
						Int("idle", stats.Idle).
						Int("open", stats.OpenConnections).
						Msg("database connection pool under pressure")
				}
			}
		}
	}()
}
