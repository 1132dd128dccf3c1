package models

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryTotal is the running sum of expense amounts per user, month and
// category. It is derived from ledger entries and can be rebuilt from them.
type CategoryTotal struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_category_total_key,priority:1" json:"user_id"`
	Month     string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_category_total_key,priority:2" json:"month"`
	Category  string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_total_key,priority:3" json:"category"`
	Total     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (ct *CategoryTotal) BeforeCreate(tx *gorm.DB) error {
	ct.PrepareForInsert()
	return nil
}

func (ct *CategoryTotal) PrepareForInsert() {
	if ct.ID == uuid.Nil {
		ct.ID = uuid.New()
	}
	if ct.UpdatedAt.IsZero() {
		ct.UpdatedAt = time.Now().UTC()
	}
}

func (ct *CategoryTotal) TableName() string {
	return "category_totals"
}

// SumByCategory folds expense entries into per-category totals for one
// month, sorted by category like the stored totals are read back.
func SumByCategory(userID uuid.UUID, month string, entries []LedgerEntry) []CategoryTotal {
	index := make(map[string]int)
	totals := make([]CategoryTotal, 0)

	for _, e := range entries {
		if e.Month != month || !e.TracksCategory() {
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{
				UserID:   userID,
				Month:    month,
				Category: e.Category,
				Total:    decimal.Zero,
			})
		}
		totals[i].Total = totals[i].Total.Add(e.Amount)
	}

	slices.SortFunc(totals, func(a, b CategoryTotal) int {
		return strings.Compare(a.Category, b.Category)
	})
	return totals
}
