package dto

import (
	"savings-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// EntryRequest records one expense or side-income event. Date defaults to
// today when omitted.
type EntryRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"gt=0,max_two_decimals"`
	Type        string          `json:"type" validate:"required,entry_kind"`
	Category    string          `json:"category" validate:"required_if=Type expense,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Date        string          `json:"date" validate:"omitempty,entry_date"`
}

// IncomeRequest sets the monthly salary from Month onward
type IncomeRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gte=0,max_two_decimals"`
	Month  string          `json:"month" validate:"required,month"`
}

// MonthQuery binds the optional ?month= parameter
type MonthQuery struct {
	Month string `query:"month" json:"month" validate:"omitempty,month"`
}

// MessageResponse is returned by write endpoints that have no body of their own
type MessageResponse struct {
	Message string `json:"message"`
}

// EntryResponse echoes a recorded entry
type EntryResponse struct {
	Message string             `json:"message"`
	Entry   models.LedgerEntry `json:"entry"`
}

// CategoryTotalResponse is one category row of a month
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Month    string          `json:"month"`
	Total    decimal.Decimal `json:"total"`
}

func NewCategoryTotalResponses(totals []models.CategoryTotal) []CategoryTotalResponse {
	out := make([]CategoryTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, CategoryTotalResponse{
			Category: t.Category,
			Month:    t.Month,
			Total:    t.Total.Round(2),
		})
	}
	return out
}

// AdviceResponse carries the generated savings advice
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// GenerateTestDataRequest controls the development data generator
type GenerateTestDataRequest struct {
	Month string `json:"month" validate:"omitempty,month"`
	Count int    `json:"count" validate:"omitempty,min=1,max=200"`
}

// GenerateTestDataResponse reports what the generator wrote
type GenerateTestDataResponse struct {
	Month   string `json:"month"`
	Created int    `json:"created"`
}
