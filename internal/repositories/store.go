package repositories

import "savings-tracker/internal/database"

// NewGormStore wires the gorm repositories over db
func NewGormStore(db *database.DB) *Store {
	return &Store{
		Users:             NewUserRepository(db.DB),
		Ledger:            NewLedgerRepository(db.DB),
		Salaries:          NewSalaryRepository(db.DB),
		BlacklistedTokens: NewBlacklistedTokenRepository(db.DB),
		Health:            db,
	}
}
