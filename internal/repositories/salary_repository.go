package repositories

import (
	"context"
	"errors"
	"fmt"

	"savings-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type salaryRepository struct {
	db *gorm.DB
}

// NewSalaryRepository creates a new salary repository
func NewSalaryRepository(db *gorm.DB) SalaryRepositoryInterface {
	return &salaryRepository{db: db}
}

// Upsert stores record, replacing the amount of an existing record for the
// same user and effective month.
func (r *salaryRepository) Upsert(ctx context.Context, record *models.SalaryRecord) error {
	if record == nil {
		return errors.New("salary record cannot be nil")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "effective_month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to save salary record: %w", err)
	}
	return nil
}

// GetByUserID returns the user's whole salary schedule, oldest first
func (r *salaryRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.SalaryRecord, error) {
	var records []models.SalaryRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("effective_month ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get salary records: %w", err)
	}
	return records, nil
}
