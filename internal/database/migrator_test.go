package database

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"savings-tracker/internal/config"
	"savings-tracker/internal/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFastRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 50 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, logger.Discard())

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsDir, runner.sourcePath)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db, logger.Discard())
	err = runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	withFastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db, logger.Discard())
	err = runner.WaitForDatabase(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	withFastRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	runner := NewMigrationRunner(db, logger.Discard())
	err = runner.WaitForDatabase(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestWaitForDatabase_StopsOnCancelledContext(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	withFastRetries(t, 5)
	retryInterval = time.Hour

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	runner := NewMigrationRunner(db, logger.Discard())
	err = runner.WaitForDatabase(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMigrationRunner_EmbeddedVersions(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, logger.Discard())

	versions, err := runner.Versions()
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, versions)
}

func TestMigrationRunner_VersionsFromCustomSource(t *testing.T) {
	runner := &MigrationRunner{
		source: fstest.MapFS{
			"sql/000010_a.up.sql":   {Data: []byte("SELECT 1;")},
			"sql/000010_a.down.sql": {Data: []byte("SELECT 1;")},
			"sql/000020_b.up.sql":   {Data: []byte("SELECT 1;")},
		},
		sourcePath: "sql",
		logger:     logger.Discard(),
	}

	versions, err := runner.Versions()
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 20}, versions)
}

func TestMigrationRunner_MissingSourceDirectory(t *testing.T) {
	runner := &MigrationRunner{
		source:     fstest.MapFS{},
		sourcePath: "nowhere",
		logger:     logger.Discard(),
	}

	_, err := runner.Versions()
	assert.Error(t, err)
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	cfg := &config.DatabaseConfig{AutoMigrate: false}

	err := RunMigrationsIfEnabled(context.Background(), cfg, logger.Discard())

	assert.NoError(t, err)
}

func TestRunMigrations_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	withFastRetries(t, 2)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = runMigrations(context.Background(), db, logger.Discard())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}
