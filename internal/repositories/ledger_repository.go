package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savings-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) LedgerRepositoryInterface {
	return &ledgerRepository{db: db}
}

// RecordEntry stores entry and, for categorised expenses, adds its amount to
// the matching category total. Both writes commit or neither does.
func (r *ledgerRepository) RecordEntry(ctx context.Context, entry *models.LedgerEntry) error {
	if entry == nil {
		return errors.New("ledger entry cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to create ledger entry: %w", err)
		}

		if !entry.TracksCategory() {
			return nil
		}

		total := &models.CategoryTotal{
			UserID:   entry.UserID,
			Month:    entry.Month,
			Category: entry.Category,
			Total:    entry.Amount,
		}
		if err := incrementCategoryTotal(tx, total); err != nil {
			return fmt.Errorf("failed to update category total: %w", err)
		}
		return nil
	})
}

func incrementCategoryTotal(tx *gorm.DB, total *models.CategoryTotal) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "category"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total":      gorm.Expr("category_totals.total + excluded.total"),
			"updated_at": gorm.Expr("excluded.updated_at"),
		}),
	}).Create(total).Error
}

// GetEntriesByMonth returns the user's entries for month ordered by date
func (r *ledgerRepository) GetEntriesByMonth(ctx context.Context, userID uuid.UUID, month string) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("date ASC, created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	return entries, nil
}

// GetExpenses returns at most limit expense entries across all months
func (r *ledgerRepository) GetExpenses(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, models.EntryKindExpense).
		Order("date ASC, created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	return entries, nil
}

func (r *ledgerRepository) GetCategoryTotals(ctx context.Context, userID uuid.UUID, month string) ([]models.CategoryTotal, error) {
	var totals []models.CategoryTotal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("category ASC").
		Find(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}
	return totals, nil
}

// RebuildCategoryTotals recomputes the month's totals from its ledger entries
// and replaces the stored rows with them.
func (r *ledgerRepository) RebuildCategoryTotals(ctx context.Context, userID uuid.UUID, month string) ([]models.CategoryTotal, error) {
	var totals []models.CategoryTotal

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entries []models.LedgerEntry
		if err := tx.Where("user_id = ? AND month = ? AND kind = ?", userID, month, models.EntryKindExpense).
			Order("date ASC, created_at ASC").
			Find(&entries).Error; err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}

		if err := tx.Where("user_id = ? AND month = ?", userID, month).
			Delete(&models.CategoryTotal{}).Error; err != nil {
			return fmt.Errorf("failed to clear category totals: %w", err)
		}

		totals = models.SumByCategory(userID, month, entries)
		if len(totals) == 0 {
			return nil
		}

		now := time.Now().UTC()
		for i := range totals {
			totals[i].UpdatedAt = now
		}
		if err := tx.Create(&totals).Error; err != nil {
			return fmt.Errorf("failed to store category totals: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return totals, nil
}
