package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"savings-tracker/internal/dto"
	"savings-tracker/internal/models"
	"savings-tracker/internal/repositories/repository_mocks"
	"savings-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TrackerServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	ctx        context.Context
	userID     uuid.UUID
	ledgerRepo *repository_mocks.MockLedgerRepositoryInterface
	salaryRepo *repository_mocks.MockSalaryRepositoryInterface
	activity   *service_mocks.MockActivityLoggerInterface
	service    *TrackerService
}

func (s *TrackerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.ledgerRepo = repository_mocks.NewMockLedgerRepositoryInterface(s.ctrl)
	s.salaryRepo = repository_mocks.NewMockSalaryRepositoryInterface(s.ctrl)
	s.activity = service_mocks.NewMockActivityLoggerInterface(s.ctrl)
	s.service = NewTrackerService(s.ledgerRepo, s.salaryRepo, s.activity, NewNoopMetrics(), slog.Default())
	s.service.now = func() time.Time {
		return time.Date(2024, time.March, 15, 22, 30, 0, 0, time.UTC)
	}
}

func (s *TrackerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTrackerServiceSuite(t *testing.T) {
	suite.Run(t, new(TrackerServiceTestSuite))
}

func (s *TrackerServiceTestSuite) TestComputeMonthSummary() {
	entries := []models.LedgerEntry{
		{Kind: models.EntryKindExpense, Amount: decimal.NewFromInt(200), Category: "Food", Month: "2024-02"},
		{Kind: models.EntryKindSideIncome, Amount: decimal.NewFromInt(50), Month: "2024-02"},
	}
	salaries := []models.SalaryRecord{
		{EffectiveMonth: "2024-01", Amount: decimal.NewFromInt(1000)},
		{EffectiveMonth: "2024-03", Amount: decimal.NewFromInt(1500)},
	}

	s.ledgerRepo.EXPECT().GetEntriesByMonth(s.ctx, s.userID, "2024-02").Return(entries, nil)
	s.salaryRepo.EXPECT().GetByUserID(s.ctx, s.userID).Return(salaries, nil)

	summary, err := s.service.ComputeMonthSummary(s.ctx, s.userID, "2024-02")

	s.NoError(err)
	s.Require().NotNil(summary)
	s.Equal("2024-02", summary.Month)
	s.Len(summary.Entries, 2)
	s.True(decimal.NewFromInt(1000).Equal(summary.MonthlyIncome))
	s.True(decimal.NewFromInt(50).Equal(summary.SideIncome))
	s.True(decimal.NewFromInt(1050).Equal(summary.TotalIncome))
	s.True(decimal.NewFromInt(200).Equal(summary.TotalExpense))
	s.True(decimal.NewFromInt(850).Equal(summary.NetSavings))
}

func (s *TrackerServiceTestSuite) TestComputeMonthSummary_DefaultsToCurrentMonth() {
	s.ledgerRepo.EXPECT().GetEntriesByMonth(s.ctx, s.userID, "2024-03").Return(nil, nil)
	s.salaryRepo.EXPECT().GetByUserID(s.ctx, s.userID).Return(nil, nil)

	summary, err := s.service.ComputeMonthSummary(s.ctx, s.userID, "")

	s.NoError(err)
	s.Equal("2024-03", summary.Month)
	s.NotNil(summary.Entries)
	s.Empty(summary.Entries)
	s.True(summary.NetSavings.IsZero())
}

func (s *TrackerServiceTestSuite) TestComputeMonthSummary_InvalidMonth() {
	for _, month := range []string{"2024-13", "March", "2024/03", "24-03"} {
		_, err := s.service.ComputeMonthSummary(s.ctx, s.userID, month)
		s.ErrorIs(err, models.ErrInvalidMonth, month)
	}
}

func (s *TrackerServiceTestSuite) TestComputeMonthSummary_StoreFailure() {
	dbErr := errors.New("db down")
	s.ledgerRepo.EXPECT().GetEntriesByMonth(s.ctx, s.userID, "2024-02").Return(nil, dbErr)

	_, err := s.service.ComputeMonthSummary(s.ctx, s.userID, "2024-02")

	s.ErrorIs(err, dbErr)
}

func (s *TrackerServiceTestSuite) TestRecordEntry_Expense() {
	req := &dto.EntryRequest{
		Amount:      decimal.RequireFromString("12.50"),
		Type:        models.EntryKindExpense,
		Category:    " Food ",
		Description: "Rice 1kg",
		Date:        "2024-02-10",
	}

	s.ledgerRepo.EXPECT().RecordEntry(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *models.LedgerEntry) error {
		s.Equal(s.userID, e.UserID)
		s.Equal("Food", e.Category)
		s.Equal("2024-02", e.Month)
		s.NotEqual(uuid.Nil, e.ID)
		return nil
	})
	s.activity.EXPECT().LogEntryRecorded(s.ctx, s.userID, models.EntryKindExpense, "2024-02")

	entry, err := s.service.RecordEntry(s.ctx, s.userID, req)

	s.NoError(err)
	s.Equal("2024-02-10", entry.Date)
}

func (s *TrackerServiceTestSuite) TestRecordEntry_DateDefaultsToTodayUTC() {
	req := &dto.EntryRequest{
		Amount: decimal.NewFromInt(300),
		Type:   models.EntryKindSideIncome,
	}

	s.ledgerRepo.EXPECT().RecordEntry(s.ctx, gomock.Any()).Return(nil)
	s.activity.EXPECT().LogEntryRecorded(s.ctx, s.userID, models.EntryKindSideIncome, "2024-03")

	entry, err := s.service.RecordEntry(s.ctx, s.userID, req)

	s.NoError(err)
	s.Equal("2024-03-15", entry.Date)
	s.Equal("2024-03", entry.Month)
}

func (s *TrackerServiceTestSuite) TestRecordEntry_SideIncomeDropsCategory() {
	req := &dto.EntryRequest{
		Amount:   decimal.NewFromInt(300),
		Type:     models.EntryKindSideIncome,
		Category: "Freelance",
		Date:     "2024-03-01",
	}

	s.ledgerRepo.EXPECT().RecordEntry(s.ctx, gomock.Any()).Return(nil)
	s.activity.EXPECT().LogEntryRecorded(s.ctx, s.userID, models.EntryKindSideIncome, "2024-03")

	entry, err := s.service.RecordEntry(s.ctx, s.userID, req)

	s.NoError(err)
	s.Empty(entry.Category)
	s.False(entry.TracksCategory())
}

func (s *TrackerServiceTestSuite) TestRecordEntry_ValidationErrors() {
	tests := []struct {
		name    string
		req     dto.EntryRequest
		wantErr error
	}{
		{
			name:    "malformed date",
			req:     dto.EntryRequest{Amount: decimal.NewFromInt(1), Type: models.EntryKindExpense, Category: "Food", Date: "10/02/2024"},
			wantErr: models.ErrInvalidDate,
		},
		{
			name:    "unknown kind",
			req:     dto.EntryRequest{Amount: decimal.NewFromInt(1), Type: "income", Date: "2024-02-10"},
			wantErr: models.ErrInvalidEntryKind,
		},
		{
			name:    "zero amount",
			req:     dto.EntryRequest{Amount: decimal.Zero, Type: models.EntryKindExpense, Category: "Food", Date: "2024-02-10"},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:    "expense without category",
			req:     dto.EntryRequest{Amount: decimal.NewFromInt(1), Type: models.EntryKindExpense, Date: "2024-02-10"},
			wantErr: models.ErrCategoryRequired,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.RecordEntry(s.ctx, s.userID, &tt.req)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *TrackerServiceTestSuite) TestRecordEntry_StoreFailure() {
	dbErr := errors.New("tx aborted")
	s.ledgerRepo.EXPECT().RecordEntry(s.ctx, gomock.Any()).Return(dbErr)

	_, err := s.service.RecordEntry(s.ctx, s.userID, &dto.EntryRequest{
		Amount: decimal.NewFromInt(5), Type: models.EntryKindExpense, Category: "Food", Date: "2024-02-10",
	})

	s.ErrorIs(err, dbErr)
}

func (s *TrackerServiceTestSuite) TestSetMonthlyIncome() {
	s.salaryRepo.EXPECT().Upsert(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *models.SalaryRecord) error {
		s.Equal(s.userID, r.UserID)
		s.Equal("2024-01", r.EffectiveMonth)
		s.True(decimal.NewFromInt(1000).Equal(r.Amount))
		return nil
	})
	s.activity.EXPECT().LogMonthlyIncomeSet(s.ctx, s.userID, "2024-01")

	record, err := s.service.SetMonthlyIncome(s.ctx, s.userID, decimal.NewFromInt(1000), "2024-01")

	s.NoError(err)
	s.NotNil(record)
}

func (s *TrackerServiceTestSuite) TestSetMonthlyIncome_InvalidInput() {
	_, err := s.service.SetMonthlyIncome(s.ctx, s.userID, decimal.NewFromInt(1000), "2024-1")
	s.ErrorIs(err, models.ErrInvalidMonth)

	_, err = s.service.SetMonthlyIncome(s.ctx, s.userID, decimal.NewFromInt(-1), "2024-01")
	s.ErrorIs(err, models.ErrNegativeSalary)
}

func (s *TrackerServiceTestSuite) TestGetCategoryTotals() {
	totals := []models.CategoryTotal{{Category: "Food", Month: "2024-03", Total: decimal.NewFromInt(20)}}
	s.ledgerRepo.EXPECT().GetCategoryTotals(s.ctx, s.userID, "2024-03").Return(totals, nil)

	got, err := s.service.GetCategoryTotals(s.ctx, s.userID, "")

	s.NoError(err)
	s.Equal(totals, got)
}

func (s *TrackerServiceTestSuite) TestRebuildCategoryTotals() {
	totals := []models.CategoryTotal{{Category: "Food"}, {Category: "Transport"}}
	s.ledgerRepo.EXPECT().RebuildCategoryTotals(s.ctx, s.userID, "2024-02").Return(totals, nil)
	s.activity.EXPECT().LogCategoryTotalsRebuilt(s.ctx, s.userID, "2024-02", 2)

	got, err := s.service.RebuildCategoryTotals(s.ctx, s.userID, "2024-02")

	s.NoError(err)
	s.Len(got, 2)
}
