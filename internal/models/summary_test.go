package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	entries := []LedgerEntry{
		{Kind: EntryKindExpense, Amount: decimal.NewFromInt(200), Category: "Food", Month: "2024-03"},
		{Kind: EntryKindSideIncome, Amount: decimal.NewFromInt(50), Month: "2024-03"},
	}

	summary := Summarize("2024-03", entries, decimal.NewFromInt(1000))

	assert.Equal(t, "2024-03", summary.Month)
	assert.Len(t, summary.Entries, 2)
	assert.True(t, decimal.NewFromInt(1000).Equal(summary.MonthlyIncome))
	assert.True(t, decimal.NewFromInt(50).Equal(summary.SideIncome))
	assert.True(t, decimal.NewFromInt(200).Equal(summary.TotalExpense))
	assert.True(t, decimal.NewFromInt(1050).Equal(summary.TotalIncome))
	assert.True(t, decimal.NewFromInt(850).Equal(summary.NetSavings))
}

func TestSummarize_RoundsToTwoPlaces(t *testing.T) {
	entries := []LedgerEntry{
		{Kind: EntryKindExpense, Amount: decimal.RequireFromString("10.005")},
		{Kind: EntryKindExpense, Amount: decimal.RequireFromString("0.001")},
		{Kind: EntryKindSideIncome, Amount: decimal.RequireFromString("0.335")},
	}

	summary := Summarize("2024-03", entries, decimal.RequireFromString("99.999"))

	assert.Equal(t, "10.01", summary.TotalExpense.StringFixed(2))
	assert.Equal(t, "0.34", summary.SideIncome.StringFixed(2))
	assert.Equal(t, "100.00", summary.MonthlyIncome.StringFixed(2))
	assert.Equal(t, "100.33", summary.TotalIncome.StringFixed(2))
	assert.Equal(t, "90.33", summary.NetSavings.StringFixed(2))
}

func TestSummarize_EmptyMonth(t *testing.T) {
	summary := Summarize("2024-03", nil, decimal.Zero)

	assert.NotNil(t, summary.Entries)
	assert.Empty(t, summary.Entries)
	assert.True(t, summary.NetSavings.IsZero())
}

func TestSumByCategory(t *testing.T) {
	userID := uuid.New()
	entries := []LedgerEntry{
		{Kind: EntryKindExpense, Amount: decimal.NewFromInt(5), Category: "Fuel", Month: "2024-03"},
		{Kind: EntryKindExpense, Amount: decimal.NewFromInt(10), Category: "Food", Month: "2024-03"},
		{Kind: EntryKindExpense, Amount: decimal.NewFromInt(7), Category: "Food", Month: "2024-03"},
		{Kind: EntryKindExpense, Amount: decimal.NewFromInt(100), Category: "Food", Month: "2024-04"},
		{Kind: EntryKindSideIncome, Amount: decimal.NewFromInt(30), Category: "Food", Month: "2024-03"},
	}

	totals := SumByCategory(userID, "2024-03", entries)

	if assert.Len(t, totals, 2) {
		assert.Equal(t, "Food", totals[0].Category)
		assert.True(t, decimal.NewFromInt(17).Equal(totals[0].Total))
		assert.Equal(t, "Fuel", totals[1].Category)
		assert.True(t, decimal.NewFromInt(5).Equal(totals[1].Total))
		assert.Equal(t, userID, totals[0].UserID)
	}
}
