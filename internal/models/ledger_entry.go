package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EntryKindExpense    = "expense"
	EntryKindSideIncome = "side-income"
)

var (
	ErrInvalidEntryKind  = errors.New("entry type must be expense or side-income")
	ErrInvalidAmount     = errors.New("entry amount must be positive")
	ErrCategoryRequired  = errors.New("category is required for expenses")
	ErrMonthDateMismatch = errors.New("entry month does not match its date")
)

// LedgerEntry is one recorded expense or side-income event. Entries are
// never updated once written.
type LedgerEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_ledger_user_month,priority:1" json:"user_id"`
	Kind        string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	Date        string          `gorm:"type:varchar(10);not null" json:"date"`
	Month       string          `gorm:"type:varchar(7);not null;index:idx_ledger_user_month,priority:2" json:"month"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	e.PrepareForInsert()
	return e.Validate()
}

// PrepareForInsert assigns an ID, the creation time and the month key derived
// from Date when they are not already set.
func (e *LedgerEntry) PrepareForInsert() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Month == "" && len(e.Date) >= len(MonthLayout) {
		e.Month = e.Date[:len(MonthLayout)]
	}
}

func (e *LedgerEntry) Validate() error {
	if e.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidEntryKind(e.Kind) {
		return ErrInvalidEntryKind
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if e.Kind == EntryKindExpense && e.Category == "" {
		return ErrCategoryRequired
	}

	date, err := ParseDate(e.Date)
	if err != nil {
		return err
	}

	if e.Month != MonthOf(date) {
		return ErrMonthDateMismatch
	}

	return nil
}

func (e *LedgerEntry) IsExpense() bool {
	return e.Kind == EntryKindExpense
}

// TracksCategory reports whether the entry contributes to a category total
func (e *LedgerEntry) TracksCategory() bool {
	return e.IsExpense() && e.Category != ""
}

func (e *LedgerEntry) TableName() string {
	return "ledger_entries"
}

// IsValidEntryKind checks if the kind is one of the canonical entry kinds
func IsValidEntryKind(kind string) bool {
	switch kind {
	case EntryKindExpense, EntryKindSideIncome:
		return true
	default:
		return false
	}
}
