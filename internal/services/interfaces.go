package services

import (
	"context"
	"time"

	"savings-tracker/internal/dto"
	"savings-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthServiceInterface defines registration, credential checks and token revocation
type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, identifier, password string) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	PurgeExpiredTokens(ctx context.Context) (int64, error)
}

// TokenServiceInterface defines JWT token generation and validation
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateAccessTokenWithTTL(user *models.User, ttl time.Duration) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines password policy and hashing
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// TrackerServiceInterface defines the ledger and monthly aggregation operations
type TrackerServiceInterface interface {
	ComputeMonthSummary(ctx context.Context, userID uuid.UUID, month string) (*models.MonthSummary, error)
	RecordEntry(ctx context.Context, userID uuid.UUID, req *dto.EntryRequest) (*models.LedgerEntry, error)
	SetMonthlyIncome(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, month string) (*models.SalaryRecord, error)
	GetCategoryTotals(ctx context.Context, userID uuid.UUID, month string) ([]models.CategoryTotal, error)
	RebuildCategoryTotals(ctx context.Context, userID uuid.UUID, month string) ([]models.CategoryTotal, error)
}

// AdviceServiceInterface produces savings advice from a user's expenses
type AdviceServiceInterface interface {
	GenerateAdvice(ctx context.Context, userID uuid.UUID) (string, error)
}

// ProductIndex finds reference products similar to a query
type ProductIndex interface {
	TopK(ctx context.Context, query string, k int) ([]models.ReferenceProduct, error)
}

// TextGenerator completes a prompt with a language model
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ActivityLoggerInterface emits structured events for user-facing operations
type ActivityLoggerInterface interface {
	LogUserRegistered(ctx context.Context, userID uuid.UUID, email string)
	LogRegistrationRejected(ctx context.Context, reason string)
	LogLoginSucceeded(ctx context.Context, userID uuid.UUID)
	LogLoginFailed(ctx context.Context, identifier, reason string)
	LogLogout(ctx context.Context, userID uuid.UUID)
	LogEntryRecorded(ctx context.Context, userID uuid.UUID, kind, month string)
	LogMonthlyIncomeSet(ctx context.Context, userID uuid.UUID, month string)
	LogCategoryTotalsRebuilt(ctx context.Context, userID uuid.UUID, month string, categories int)
	LogAdviceGenerated(ctx context.Context, userID uuid.UUID, expenses, keywords, matches int, durationMs int64)
	LogAdviceFailed(ctx context.Context, userID uuid.UUID, errorMsg string, durationMs int64)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// LedgerGeneratorInterface generates realistic ledger data for development
type LedgerGeneratorInterface interface {
	GenerateMonth(userID uuid.UUID, month string, count int) ([]*models.LedgerEntry, error)
}
