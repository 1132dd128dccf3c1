package models

import "github.com/shopspring/decimal"

// MonthSummary is the aggregated view of one user's month
type MonthSummary struct {
	Month         string          `json:"month"`
	Entries       []LedgerEntry   `json:"entries"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	SideIncome    decimal.Decimal `json:"side_income"`
	TotalExpense  decimal.Decimal `json:"total_expense"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	NetSavings    decimal.Decimal `json:"net_savings"`
}

// Summarize computes the month's totals from its entries and the effective
// salary. Every amount is rounded to 2 decimal places.
func Summarize(month string, entries []LedgerEntry, salary decimal.Decimal) MonthSummary {
	side := decimal.Zero
	expense := decimal.Zero

	for _, e := range entries {
		switch e.Kind {
		case EntryKindSideIncome:
			side = side.Add(e.Amount)
		case EntryKindExpense:
			expense = expense.Add(e.Amount)
		}
	}

	income := salary.Add(side)

	if entries == nil {
		entries = []LedgerEntry{}
	}

	return MonthSummary{
		Month:         month,
		Entries:       entries,
		MonthlyIncome: salary.Round(2),
		SideIncome:    side.Round(2),
		TotalExpense:  expense.Round(2),
		TotalIncome:   income.Round(2),
		NetSavings:    income.Sub(expense).Round(2),
	}
}
