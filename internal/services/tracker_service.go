package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"savings-tracker/internal/dto"
	"savings-tracker/internal/models"
	"savings-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrackerService records ledger entries and aggregates them per month
type TrackerService struct {
	ledgerRepo repositories.LedgerRepositoryInterface
	salaryRepo repositories.SalaryRepositoryInterface
	activity   ActivityLoggerInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
	now        func() time.Time
}

// NewTrackerService creates a new tracker service
func NewTrackerService(
	ledgerRepo repositories.LedgerRepositoryInterface,
	salaryRepo repositories.SalaryRepositoryInterface,
	activity ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *TrackerService {
	return &TrackerService{
		ledgerRepo: ledgerRepo,
		salaryRepo: salaryRepo,
		activity:   activity,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// ComputeMonthSummary returns the month's entries with the salary in effect
// and the derived totals. An empty month means the current month.
func (s *TrackerService) ComputeMonthSummary(ctx context.Context, userID uuid.UUID, month string) (*models.MonthSummary, error) {
	month, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.GetEntriesByMonth(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	records, err := s.salaryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load salary schedule: %w", err)
	}

	summary := models.Summarize(month, entries, models.EffectiveSalary(records, month))
	return &summary, nil
}

// RecordEntry stores one expense or side-income entry. The date defaults to
// today and determines the entry's month.
func (s *TrackerService) RecordEntry(ctx context.Context, userID uuid.UUID, req *dto.EntryRequest) (*models.LedgerEntry, error) {
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = s.now().UTC().Format(models.DateLayout)
	}

	parsed, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}

	entry := &models.LedgerEntry{
		UserID:      userID,
		Kind:        req.Type,
		Amount:      req.Amount,
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Date:        date,
		Month:       models.MonthOf(parsed),
	}
	// side-income never carries a category total
	if !entry.IsExpense() {
		entry.Category = ""
	}

	entry.PrepareForInsert()
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.RecordEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record entry: %w", err)
	}

	s.activity.LogEntryRecorded(ctx, userID, entry.Kind, entry.Month)
	s.metrics.IncrementCounter(MetricLedgerEntryRecorded, map[string]string{"kind": entry.Kind})

	return entry, nil
}

// SetMonthlyIncome declares the salary from month onward, replacing any
// amount already declared for that exact month.
func (s *TrackerService) SetMonthlyIncome(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, month string) (*models.SalaryRecord, error) {
	if _, err := models.ParseMonth(month); err != nil {
		return nil, err
	}

	record := &models.SalaryRecord{
		UserID:         userID,
		EffectiveMonth: month,
		Amount:         amount,
	}
	record.PrepareForInsert()
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.salaryRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save monthly income: %w", err)
	}

	s.activity.LogMonthlyIncomeSet(ctx, userID, month)
	s.metrics.IncrementCounter(MetricMonthlyIncomeSet, nil)

	return record, nil
}

func (s *TrackerService) GetCategoryTotals(ctx context.Context, userID uuid.UUID, month string) ([]models.CategoryTotal, error) {
	month, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	totals, err := s.ledgerRepo.GetCategoryTotals(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load category totals: %w", err)
	}
	return totals, nil
}

// RebuildCategoryTotals recomputes the month's totals from its expense entries
func (s *TrackerService) RebuildCategoryTotals(ctx context.Context, userID uuid.UUID, month string) ([]models.CategoryTotal, error) {
	month, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	totals, err := s.ledgerRepo.RebuildCategoryTotals(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild category totals: %w", err)
	}

	s.activity.LogCategoryTotalsRebuilt(ctx, userID, month, len(totals))
	s.metrics.IncrementCounter(MetricCategoryTotalsRebuilt, nil)

	return totals, nil
}

func (s *TrackerService) resolveMonth(month string) (string, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		return models.MonthOf(s.now().UTC()), nil
	}
	return models.ResolveMonth(month)
}
