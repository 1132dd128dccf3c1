package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveSalary(t *testing.T) {
	records := []SalaryRecord{
		{EffectiveMonth: "2024-03", Amount: decimal.NewFromInt(1500)},
		{EffectiveMonth: "2024-01", Amount: decimal.NewFromInt(1000)},
	}

	tests := []struct {
		name  string
		month string
		want  decimal.Decimal
	}{
		{name: "between records uses the earlier one", month: "2024-02", want: decimal.NewFromInt(1000)},
		{name: "exact month", month: "2024-03", want: decimal.NewFromInt(1500)},
		{name: "after all records", month: "2025-07", want: decimal.NewFromInt(1500)},
		{name: "before all records", month: "2023-12", want: decimal.Zero},
		{name: "invalid target month", month: "March", want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveSalary(records, tt.month)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestEffectiveSalary_SkipsUnparseableRecords(t *testing.T) {
	records := []SalaryRecord{
		{EffectiveMonth: "2024-01", Amount: decimal.NewFromInt(1000)},
		{EffectiveMonth: "2024-13", Amount: decimal.NewFromInt(9999)},
		{EffectiveMonth: "garbage", Amount: decimal.NewFromInt(8888)},
	}

	got := EffectiveSalary(records, "2024-06")
	assert.True(t, decimal.NewFromInt(1000).Equal(got))
}

func TestEffectiveSalary_NoRecords(t *testing.T) {
	assert.True(t, EffectiveSalary(nil, "2024-06").IsZero())
}

func TestSalaryRecord_Validate(t *testing.T) {
	userID := uuid.New()

	valid := SalaryRecord{UserID: userID, EffectiveMonth: "2024-01", Amount: decimal.Zero}
	require.NoError(t, valid.Validate())

	negative := SalaryRecord{UserID: userID, EffectiveMonth: "2024-01", Amount: decimal.NewFromInt(-1)}
	require.ErrorIs(t, negative.Validate(), ErrNegativeSalary)

	badMonth := SalaryRecord{UserID: userID, EffectiveMonth: "2024/01", Amount: decimal.NewFromInt(1)}
	require.ErrorIs(t, badMonth.Validate(), ErrInvalidMonth)
}
