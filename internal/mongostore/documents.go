package mongostore

import (
	"fmt"
	"time"

	"savings-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type userDocument struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	City         string    `bson:"city,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type ledgerDocument struct {
	ID          string          `bson:"_id"`
	UserID      string          `bson:"user_id"`
	Kind        string          `bson:"kind"`
	Amount      bson.Decimal128 `bson:"amount"`
	Category    string          `bson:"category,omitempty"`
	Description string          `bson:"description,omitempty"`
	Date        string          `bson:"date"`
	Month       string          `bson:"month"`
	CreatedAt   time.Time       `bson:"created_at"`
}

type salaryDocument struct {
	ID             string          `bson:"_id"`
	UserID         string          `bson:"user_id"`
	EffectiveMonth string          `bson:"effective_month"`
	Amount         bson.Decimal128 `bson:"amount"`
	CreatedAt      time.Time       `bson:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at"`
}

type categoryTotalDocument struct {
	ID        string          `bson:"_id"`
	UserID    string          `bson:"user_id"`
	Month     string          `bson:"month"`
	Category  string          `bson:"category"`
	Total     bson.Decimal128 `bson:"total"`
	UpdatedAt time.Time       `bson:"updated_at"`
}

type blacklistedTokenDocument struct {
	ID            string    `bson:"_id"`
	JTI           string    `bson:"jti"`
	UserID        string    `bson:"user_id"`
	ExpiresAt     time.Time `bson:"expires_at"`
	BlacklistedAt time.Time `bson:"blacklisted_at"`
}

func toDecimal128(d decimal.Decimal) (bson.Decimal128, error) {
	v, err := bson.ParseDecimal128(d.String())
	if err != nil {
		return bson.Decimal128{}, fmt.Errorf("failed to encode amount %s: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(v bson.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode amount %s: %w", v.String(), err)
	}
	return d, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid stored id %q: %w", raw, err)
	}
	return id, nil
}

func newUserDocument(u *models.User) userDocument {
	return userDocument{
		ID:           u.ID.String(),
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		City:         u.City,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDocument) toModel() (*models.User, error) {
	id, err := parseID(d.ID)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:           id,
		Email:        d.Email,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		City:         d.City,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func newLedgerDocument(e *models.LedgerEntry) (ledgerDocument, error) {
	amount, err := toDecimal128(e.Amount)
	if err != nil {
		return ledgerDocument{}, err
	}
	return ledgerDocument{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Kind:        e.Kind,
		Amount:      amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
		Month:       e.Month,
		CreatedAt:   e.CreatedAt,
	}, nil
}

func (d ledgerDocument) toModel() (models.LedgerEntry, error) {
	id, err := parseID(d.ID)
	if err != nil {
		return models.LedgerEntry{}, err
	}
	userID, err := parseID(d.UserID)
	if err != nil {
		return models.LedgerEntry{}, err
	}
	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return models.LedgerEntry{}, err
	}
	return models.LedgerEntry{
		ID:          id,
		UserID:      userID,
		Kind:        d.Kind,
		Amount:      amount,
		Category:    d.Category,
		Description: d.Description,
		Date:        d.Date,
		Month:       d.Month,
		CreatedAt:   d.CreatedAt,
	}, nil
}

func (d salaryDocument) toModel() (models.SalaryRecord, error) {
	id, err := parseID(d.ID)
	if err != nil {
		return models.SalaryRecord{}, err
	}
	userID, err := parseID(d.UserID)
	if err != nil {
		return models.SalaryRecord{}, err
	}
	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return models.SalaryRecord{}, err
	}
	return models.SalaryRecord{
		ID:             id,
		UserID:         userID,
		EffectiveMonth: d.EffectiveMonth,
		Amount:         amount,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}, nil
}

func newCategoryTotalDocument(t *models.CategoryTotal) (categoryTotalDocument, error) {
	total, err := toDecimal128(t.Total)
	if err != nil {
		return categoryTotalDocument{}, err
	}
	return categoryTotalDocument{
		ID:        t.ID.String(),
		UserID:    t.UserID.String(),
		Month:     t.Month,
		Category:  t.Category,
		Total:     total,
		UpdatedAt: t.UpdatedAt,
	}, nil
}

func (d categoryTotalDocument) toModel() (models.CategoryTotal, error) {
	id, err := parseID(d.ID)
	if err != nil {
		return models.CategoryTotal{}, err
	}
	userID, err := parseID(d.UserID)
	if err != nil {
		return models.CategoryTotal{}, err
	}
	total, err := fromDecimal128(d.Total)
	if err != nil {
		return models.CategoryTotal{}, err
	}
	return models.CategoryTotal{
		ID:        id,
		UserID:    userID,
		Month:     d.Month,
		Category:  d.Category,
		Total:     total,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func (d blacklistedTokenDocument) toModel() (*models.BlacklistedToken, error) {
	id, err := parseID(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := parseID(d.UserID)
	if err != nil {
		return nil, err
	}
	return &models.BlacklistedToken{
		ID:            id,
		JTI:           d.JTI,
		UserID:        userID,
		ExpiresAt:     d.ExpiresAt,
		BlacklistedAt: d.BlacklistedAt,
	}, nil
}
