package repositories

import (
	"context"

	"savings-tracker/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}

// LedgerRepositoryInterface defines the contract for ledger entries and the
// category totals derived from them
type LedgerRepositoryInterface interface {
	RecordEntry(ctx context.Context, entry *models.LedgerEntry) error
	GetEntriesByMonth(ctx context.Context, userID uuid.UUID, month string) ([]models.LedgerEntry, error)
	GetExpenses(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntry, error)
	GetCategoryTotals(ctx context.Context, userID uuid.UUID, month string) ([]models.CategoryTotal, error)
	RebuildCategoryTotals(ctx context.Context, userID uuid.UUID, month string) ([]models.CategoryTotal, error)
}

// SalaryRepositoryInterface defines the contract for the salary schedule
type SalaryRepositoryInterface interface {
	Upsert(ctx context.Context, record *models.SalaryRecord) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.SalaryRecord, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(ctx context.Context, token *models.BlacklistedToken) error
	GetByJTI(ctx context.Context, jti string) (*models.BlacklistedToken, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

// HealthChecker is implemented by every store backend
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Store bundles the repositories served by one backend
type Store struct {
	Users             UserRepositoryInterface
	Ledger            LedgerRepositoryInterface
	Salaries          SalaryRepositoryInterface
	BlacklistedTokens BlacklistedTokenRepositoryInterface
	Health            HealthChecker
}
