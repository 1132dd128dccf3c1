package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"savings-tracker/internal/config"
	"savings-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.NewSlogLogger(logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.BlacklistedToken{},
		&models.LedgerEntry{},
		&models.SalaryRecord{},
		&models.CategoryTotal{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping reports whether the database answers within ctx
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_user_kind ON ledger_entries(user_id, kind)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_user_date ON ledger_entries(user_id, date)",
		"CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))",
	}

	var failed int
	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to create %d of %d indexes", failed, len(queries))
	}
	return nil
}

// Initialize creates and configures the database connection
func Initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	db, err := New(&cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := RunMigrationsIfEnabled(ctx, &cfg.Database, logger); err != nil {
		logger.Warn("migration runner failed, falling back to GORM AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		logger.Warn("failed to create some indexes", "error", err)
	}

	logger.Info("database initialized")

	return db, nil
}
