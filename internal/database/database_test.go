package database

import (
	"context"
	"testing"

	"savings-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_MigratesAllTables(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	for _, table := range []string{"users", "blacklisted_tokens", "ledger_entries", "salary_records", "category_totals"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestDB_PingAndCreateIndexes(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	require.NoError(t, db.Ping(context.Background()))
	require.NoError(t, db.CreateIndexes())
}

func TestCleanupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	user := CreateTestUser(t, db, "cleanup@example.com", "cleanup")
	entry := &models.LedgerEntry{
		UserID:   user.ID,
		Kind:     models.EntryKindExpense,
		Amount:   decimal.NewFromInt(5),
		Category: "Food",
		Date:     "2024-01-02",
	}
	require.NoError(t, db.Create(entry).Error)

	CleanupTestDB(t, db)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.LedgerEntry{}).Count(&count)
	assert.Zero(t, count)
}
