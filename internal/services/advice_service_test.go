package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"savings-tracker/internal/config"
	"savings-tracker/internal/models"
	"savings-tracker/internal/repositories/repository_mocks"
	"savings-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AdviceServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	ctx        context.Context
	userID     uuid.UUID
	ledgerRepo *repository_mocks.MockLedgerRepositoryInterface
	index      *service_mocks.MockProductIndex
	generator  *service_mocks.MockTextGenerator
	activity   *service_mocks.MockActivityLoggerInterface
	service    *AdviceService
}

func (s *AdviceServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.ledgerRepo = repository_mocks.NewMockLedgerRepositoryInterface(s.ctrl)
	s.index = service_mocks.NewMockProductIndex(s.ctrl)
	s.generator = service_mocks.NewMockTextGenerator(s.ctrl)
	s.activity = service_mocks.NewMockActivityLoggerInterface(s.ctrl)
	s.service = NewAdviceService(
		s.ledgerRepo,
		s.index,
		s.generator,
		&config.AdviceConfig{MaxExpenses: 1000, LookupConcurrency: 3},
		s.activity,
		NewNoopMetrics(),
		slog.Default(),
	)
}

func (s *AdviceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAdviceServiceSuite(t *testing.T) {
	suite.Run(t, new(AdviceServiceTestSuite))
}

func (s *AdviceServiceTestSuite) TestGenerateAdvice_NoExpensesMakesNoExternalCall() {
	s.ledgerRepo.EXPECT().GetExpenses(s.ctx, s.userID, 1000).Return([]models.LedgerEntry{}, nil)
	s.index.EXPECT().TopK(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.generator.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)

	advice, err := s.service.GenerateAdvice(s.ctx, s.userID)

	s.NoError(err)
	s.Equal(NoExpenseDataMessage, advice)
}

func (s *AdviceServiceTestSuite) TestGenerateAdvice_EachWordQueriedOnce() {
	expenses := []models.LedgerEntry{{
		Kind:        models.EntryKindExpense,
		Amount:      decimal.NewFromInt(250),
		Category:    "Groceries",
		Description: "Rice rice RICE Bread",
	}}
	s.ledgerRepo.EXPECT().GetExpenses(s.ctx, s.userID, 1000).Return(expenses, nil)

	var (
		mu      sync.Mutex
		queried []string
	)
	s.index.EXPECT().TopK(gomock.Any(), gomock.Any(), 1).DoAndReturn(
		func(_ context.Context, query string, _ int) ([]models.ReferenceProduct, error) {
			mu.Lock()
			queried = append(queried, query)
			mu.Unlock()
			if query == "rice" {
				return []models.ReferenceProduct{{Content: "Basmati Rice, 1000g, 300 PKR"}}, nil
			}
			return nil, nil
		}).Times(6)
	s.generator.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string) (string, error) {
			s.Contains(prompt, "Price: 250. Category: Groceries. Description: Rice rice RICE Bread.")
			s.Contains(prompt, "Provided Products:\nBasmati Rice, 1000g, 300 PKR\n\nNow, strictly")
			return "Buy the cheaper rice.", nil
		})
	s.activity.EXPECT().LogAdviceGenerated(gomock.Any(), s.userID, 1, 6, 1, gomock.Any())

	advice, err := s.service.GenerateAdvice(s.ctx, s.userID)

	s.NoError(err)
	s.Equal("Buy the cheaper rice.", advice)
	s.ElementsMatch([]string{"price", "category", "groceries", "description", "rice", "bread"}, queried)
}

func (s *AdviceServiceTestSuite) TestGenerateAdvice_MatchesKeepKeywordOrder() {
	expenses := []models.LedgerEntry{{Kind: models.EntryKindExpense, Amount: decimal.NewFromInt(1), Category: "a", Description: "milk tea"}}
	s.ledgerRepo.EXPECT().GetExpenses(s.ctx, s.userID, 1000).Return(expenses, nil)

	s.index.EXPECT().TopK(gomock.Any(), gomock.Any(), 1).DoAndReturn(
		func(_ context.Context, query string, _ int) ([]models.ReferenceProduct, error) {
			switch query {
			case "milk":
				return []models.ReferenceProduct{{Content: "Milk 1L 220 PKR"}}, nil
			case "tea":
				return []models.ReferenceProduct{{Content: "Tea 500g 900 PKR"}}, nil
			}
			return nil, nil
		}).AnyTimes()
	s.generator.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string) (string, error) {
			s.Contains(prompt, "Milk 1L 220 PKR\nTea 500g 900 PKR")
			return "ok", nil
		})
	s.activity.EXPECT().LogAdviceGenerated(gomock.Any(), s.userID, 1, gomock.Any(), 2, gomock.Any())

	_, err := s.service.GenerateAdvice(s.ctx, s.userID)

	s.NoError(err)
}

func (s *AdviceServiceTestSuite) TestGenerateAdvice_NoMatchesUsesPlaceholder() {
	expenses := []models.LedgerEntry{{Kind: models.EntryKindExpense, Amount: decimal.NewFromInt(250), Category: "Drinks", Description: "Mango juice"}}
	s.ledgerRepo.EXPECT().GetExpenses(s.ctx, s.userID, 1000).Return(expenses, nil)
	s.index.EXPECT().TopK(gomock.Any(), gomock.Any(), 1).Return(nil, nil).AnyTimes()
	s.generator.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string) (string, error) {
			// the placeholder appears once in the worked example and once as the fill-in
			s.Equal(2, strings.Count(prompt, NoMatchingProduct))
			return "advice", nil
		})
	s.activity.EXPECT().LogAdviceGenerated(gomock.Any(), s.userID, 1, gomock.Any(), 0, gomock.Any())

	advice, err := s.service.GenerateAdvice(s.ctx, s.userID)

	s.NoError(err)
	s.Equal("advice", advice)
}

func (s *AdviceServiceTestSuite) TestGenerateAdvice_IndexFailure() {
	expenses := []models.LedgerEntry{{Kind: models.EntryKindExpense, Amount: decimal.NewFromInt(1), Category: "x", Description: "y"}}
	indexErr := errors.New("qdrant unreachable")

	s.ledgerRepo.EXPECT().GetExpenses(s.ctx, s.userID, 1000).Return(expenses, nil)
	s.index.EXPECT().TopK(gomock.Any(), gomock.Any(), 1).Return(nil, indexErr).AnyTimes()
	s.generator.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)
	s.activity.EXPECT().LogAdviceFailed(gomock.Any(), s.userID, gomock.Any(), gomock.Any())

	_, err := s.service.GenerateAdvice(s.ctx, s.userID)

	s.ErrorIs(err, ErrUpstreamUnavailable)
	s.ErrorIs(err, indexErr)
}

func (s *AdviceServiceTestSuite) TestGenerateAdvice_ModelFailure() {
	expenses := []models.LedgerEntry{{Kind: models.EntryKindExpense, Amount: decimal.NewFromInt(1), Category: "x", Description: "y"}}
	modelErr := errors.New("rate limited")

	s.ledgerRepo.EXPECT().GetExpenses(s.ctx, s.userID, 1000).Return(expenses, nil)
	s.index.EXPECT().TopK(gomock.Any(), gomock.Any(), 1).Return(nil, nil).AnyTimes()
	s.generator.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", modelErr)
	s.activity.EXPECT().LogAdviceFailed(gomock.Any(), s.userID, gomock.Any(), gomock.Any())

	_, err := s.service.GenerateAdvice(s.ctx, s.userID)

	s.ErrorIs(err, ErrUpstreamUnavailable)
	s.ErrorIs(err, modelErr)
}

func (s *AdviceServiceTestSuite) TestGenerateAdvice_StoreFailureIsNotUpstream() {
	dbErr := errors.New("db down")
	s.ledgerRepo.EXPECT().GetExpenses(s.ctx, s.userID, 1000).Return(nil, dbErr)

	_, err := s.service.GenerateAdvice(s.ctx, s.userID)

	s.ErrorIs(err, dbErr)
	s.NotErrorIs(err, ErrUpstreamUnavailable)
}

func (s *AdviceServiceTestSuite) TestGenerateAdvice_NotConfigured() {
	svc := NewAdviceService(s.ledgerRepo, nil, nil, nil, s.activity, NewNoopMetrics(), slog.Default())

	_, err := svc.GenerateAdvice(s.ctx, s.userID)

	s.ErrorIs(err, ErrAdviceNotConfigured)
}

func (s *AdviceServiceTestSuite) TestGenerateAdvice_OpenBreakerSkipsUpstream() {
	s.service.breaker = NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour})
	expenses := []models.LedgerEntry{{Kind: models.EntryKindExpense, Amount: decimal.NewFromInt(1), Category: "x", Description: "y"}}

	s.ledgerRepo.EXPECT().GetExpenses(s.ctx, s.userID, 1000).Return(expenses, nil).Times(2)
	s.index.EXPECT().TopK(gomock.Any(), gomock.Any(), 1).Return(nil, errors.New("qdrant unreachable")).MinTimes(1)
	s.activity.EXPECT().LogAdviceFailed(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).Times(2)

	_, err := s.service.GenerateAdvice(s.ctx, s.userID)
	s.ErrorIs(err, ErrUpstreamUnavailable)
	s.Equal(StateOpen, s.service.breaker.State())

	_, err = s.service.GenerateAdvice(s.ctx, s.userID)
	s.ErrorIs(err, ErrUpstreamUnavailable)
	s.ErrorIs(err, ErrCircuitBreakerOpen)
}

func (s *AdviceServiceTestSuite) TestGenerateAdvice_CallerCancellationLeavesBreakerClosed() {
	s.service.breaker = NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour})
	expenses := []models.LedgerEntry{{Kind: models.EntryKindExpense, Amount: decimal.NewFromInt(1), Category: "x", Description: "y"}}
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	s.ledgerRepo.EXPECT().GetExpenses(gomock.Any(), s.userID, 1000).Return(expenses, nil)
	s.index.EXPECT().TopK(gomock.Any(), gomock.Any(), 1).Return(nil, nil).AnyTimes()
	s.generator.EXPECT().Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (string, error) {
			cancel()
			return "", context.Canceled
		})
	s.activity.EXPECT().LogAdviceFailed(gomock.Any(), s.userID, gomock.Any(), gomock.Any())

	_, err := s.service.GenerateAdvice(ctx, s.userID)

	s.ErrorIs(err, context.Canceled)
	s.Equal(StateClosed, s.service.breaker.State())
	s.True(s.service.breaker.Allow())
}
