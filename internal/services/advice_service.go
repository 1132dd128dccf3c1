package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"savings-tracker/internal/config"
	"savings-tracker/internal/models"
	"savings-tracker/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	NoExpenseDataMessage = "No expense data found. Please add some expenses to get advice."
	NoMatchingProduct    = "(No matching product)"

	defaultMaxExpenses       = 1000
	defaultLookupConcurrency = 4
)

var (
	ErrAdviceNotConfigured = errors.New("advice service is not configured")
	ErrUpstreamUnavailable = errors.New("advice upstream unavailable")
)

// AdviceService turns a user's expense history into savings advice by
// matching expense words against reference products and prompting a model.
type AdviceService struct {
	ledgerRepo  repositories.LedgerRepositoryInterface
	index       ProductIndex
	generator   TextGenerator
	maxExpenses int
	concurrency int
	timeout     time.Duration
	breaker     *CircuitBreaker
	activity    ActivityLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewAdviceService creates a new advice service
func NewAdviceService(
	ledgerRepo repositories.LedgerRepositoryInterface,
	index ProductIndex,
	generator TextGenerator,
	cfg *config.AdviceConfig,
	activity ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *AdviceService {
	s := &AdviceService{
		ledgerRepo:  ledgerRepo,
		index:       index,
		generator:   generator,
		maxExpenses: defaultMaxExpenses,
		concurrency: defaultLookupConcurrency,
		breaker:     NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		activity:    activity,
		metrics:     metrics,
		logger:      logger,
	}

	if cfg != nil {
		if cfg.MaxExpenses > 0 {
			s.maxExpenses = cfg.MaxExpenses
		}
		if cfg.LookupConcurrency > 0 {
			s.concurrency = cfg.LookupConcurrency
		}
		s.timeout = cfg.RequestTimeout
	}

	return s
}

// GenerateAdvice returns model-written advice for the user's expenses, or
// NoExpenseDataMessage when there are none.
func (s *AdviceService) GenerateAdvice(ctx context.Context, userID uuid.UUID) (string, error) {
	if s.index == nil || s.generator == nil {
		return "", ErrAdviceNotConfigured
	}

	start := time.Now()

	expenses, err := s.ledgerRepo.GetExpenses(ctx, userID, s.maxExpenses)
	if err != nil {
		return "", fmt.Errorf("failed to load expenses: %w", err)
	}

	if len(expenses) == 0 {
		s.metrics.IncrementCounter(MetricAdviceRequest, map[string]string{"status": "no_data"})
		return NoExpenseDataMessage, nil
	}

	if !s.breaker.Allow() {
		return "", s.fail(ctx, userID, start, ErrCircuitBreakerOpen)
	}

	callerCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	summary := SummarizeExpenses(expenses)
	keywords := ExtractKeywords(summary)

	matches, err := s.lookupProducts(ctx, keywords)
	if err != nil {
		s.recordUpstreamFailure(callerCtx)
		return "", s.fail(ctx, userID, start, err)
	}

	prompt, err := RenderAdvicePrompt(summary, JoinProductContext(matches))
	if err != nil {
		return "", fmt.Errorf("failed to render advice prompt: %w", err)
	}

	advice, err := s.generator.Complete(ctx, prompt)
	if err != nil {
		s.recordUpstreamFailure(callerCtx)
		return "", s.fail(ctx, userID, start, err)
	}
	s.breaker.RecordSuccess()

	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricAdviceRequest, map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime(MetricAdviceDuration, duration)
	s.metrics.RecordGauge(MetricAdviceKeywords, float64(len(keywords)), nil)
	s.activity.LogAdviceGenerated(ctx, userID, len(expenses), len(keywords), len(matches), duration.Milliseconds())

	return advice, nil
}

// recordUpstreamFailure counts a failed index or model call against the
// breaker unless the caller went away first.
func (s *AdviceService) recordUpstreamFailure(callerCtx context.Context) {
	if callerCtx.Err() != nil {
		return
	}
	s.breaker.RecordFailure()
}

// lookupProducts runs one top-1 query per keyword with bounded parallelism.
// Results keep keyword order.
func (s *AdviceService) lookupProducts(ctx context.Context, keywords []string) ([]models.ReferenceProduct, error) {
	results := make([][]models.ReferenceProduct, len(keywords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, word := range keywords {
		g.Go(func() error {
			found, err := s.index.TopK(gctx, word, 1)
			if err != nil {
				return fmt.Errorf("product lookup for %q: %w", word, err)
			}
			results[i] = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]models.ReferenceProduct, 0, len(keywords))
	for _, found := range results {
		for _, p := range found {
			if p.Content != "" {
				matches = append(matches, p)
			}
		}
	}
	return matches, nil
}

func (s *AdviceService) fail(ctx context.Context, userID uuid.UUID, start time.Time, cause error) error {
	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricAdviceRequest, map[string]string{"status": "upstream_error"})
	s.activity.LogAdviceFailed(ctx, userID, cause.Error(), duration.Milliseconds())
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, cause)
}
