package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNegativeSalary = errors.New("monthly income cannot be negative")

// SalaryRecord declares the user's monthly income from EffectiveMonth onward,
// until a later record supersedes it.
type SalaryRecord struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_salary_user_month,priority:1" json:"user_id"`
	EffectiveMonth string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_salary_user_month,priority:2" json:"effective_month"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

func (s *SalaryRecord) BeforeCreate(tx *gorm.DB) error {
	s.PrepareForInsert()
	return s.Validate()
}

func (s *SalaryRecord) PrepareForInsert() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}
}

func (s *SalaryRecord) Validate() error {
	if s.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if s.Amount.IsNegative() {
		return ErrNegativeSalary
	}

	if _, err := ParseMonth(s.EffectiveMonth); err != nil {
		return err
	}

	return nil
}

func (s *SalaryRecord) TableName() string {
	return "salary_records"
}

// EffectiveSalary returns the amount of the record with the latest
// EffectiveMonth that is not after month, or zero when none applies.
// Records whose EffectiveMonth does not parse are skipped.
func EffectiveSalary(records []SalaryRecord, month string) decimal.Decimal {
	target, err := ParseMonth(month)
	if err != nil {
		return decimal.Zero
	}

	var (
		best   time.Time
		amount = decimal.Zero
		found  bool
	)
	for _, r := range records {
		effective, err := ParseMonth(r.EffectiveMonth)
		if err != nil {
			continue
		}
		if effective.After(target) {
			continue
		}
		if !found || effective.After(best) {
			best = effective
			amount = r.Amount
			found = true
		}
	}

	return amount
}
