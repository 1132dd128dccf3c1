package services

import (
	"context"
	"log/slog"
	"time"

	applog "savings-tracker/internal/logger"

	"github.com/google/uuid"
)

const (
	// RedactedValue is used to mask sensitive information in logs to avoid logging PII
	RedactedValue = "***REDACTED***"
)

// ActivityLogger provides structured logging for user-facing operations
type ActivityLogger struct {
	logger *slog.Logger
}

// NewActivityLogger creates a new activity logger
func NewActivityLogger(logger *slog.Logger) ActivityLoggerInterface {
	return &ActivityLogger{
		logger: logger,
	}
}

// LogUserRegistered logs a successful registration
func (al *ActivityLogger) LogUserRegistered(ctx context.Context, userID uuid.UUID, email string) {
	al.logger.InfoContext(ctx, "user registered",
		slog.String("event_type", "user_registered"),
		slog.String("user_id", userID.String()),
		slog.String("email", maskEmail(email)),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", applog.TraceID(ctx)),
	)
}

// LogRegistrationRejected logs a registration that was refused
func (al *ActivityLogger) LogRegistrationRejected(ctx context.Context, reason string) {
	al.logger.WarnContext(ctx, "registration rejected",
		slog.String("event_type", "registration_rejected"),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", applog.TraceID(ctx)),
	)
}

func (al *ActivityLogger) LogLoginSucceeded(ctx context.Context, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "login succeeded",
		slog.String("event_type", "login_succeeded"),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", applog.TraceID(ctx)),
	)
}

// LogLoginFailed logs a failed login. The identifier is never written out.
func (al *ActivityLogger) LogLoginFailed(ctx context.Context, identifier, reason string) {
	al.logger.WarnContext(ctx, "login failed",
		slog.String("event_type", "login_failed"),
		slog.String("identifier", RedactedValue),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", applog.TraceID(ctx)),
	)
}

func (al *ActivityLogger) LogLogout(ctx context.Context, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "logout",
		slog.String("event_type", "logout"),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", applog.TraceID(ctx)),
	)
}

// LogEntryRecorded logs a new ledger entry without its amount or description
func (al *ActivityLogger) LogEntryRecorded(ctx context.Context, userID uuid.UUID, kind, month string) {
	al.logger.InfoContext(ctx, "ledger entry recorded",
		slog.String("event_type", "ledger_entry_recorded"),
		slog.String("user_id", userID.String()),
		slog.String("kind", kind),
		slog.String("month", month),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", applog.TraceID(ctx)),
	)
}

func (al *ActivityLogger) LogMonthlyIncomeSet(ctx context.Context, userID uuid.UUID, month string) {
	al.logger.InfoContext(ctx, "monthly income set",
		slog.String("event_type", "monthly_income_set"),
		slog.String("user_id", userID.String()),
		slog.String("effective_month", month),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", applog.TraceID(ctx)),
	)
}

func (al *ActivityLogger) LogCategoryTotalsRebuilt(ctx context.Context, userID uuid.UUID, month string, categories int) {
	al.logger.InfoContext(ctx, "category totals rebuilt",
		slog.String("event_type", "category_totals_rebuilt"),
		slog.String("user_id", userID.String()),
		slog.String("month", month),
		slog.Int("categories", categories),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", applog.TraceID(ctx)),
	)
}

// LogAdviceGenerated logs the shape of an advice request. Prompt text and
// model output stay out of the log.
func (al *ActivityLogger) LogAdviceGenerated(ctx context.Context, userID uuid.UUID, expenses, keywords, matches int, durationMs int64) {
	al.logger.InfoContext(ctx, "advice generated",
		slog.String("event_type", "advice_generated"),
		slog.String("user_id", userID.String()),
		slog.Int("expenses", expenses),
		slog.Int("keywords", keywords),
		slog.Int("matches", matches),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", applog.TraceID(ctx)),
	)
}

func (al *ActivityLogger) LogAdviceFailed(ctx context.Context, userID uuid.UUID, errorMsg string, durationMs int64) {
	al.logger.WarnContext(ctx, "advice failed",
		slog.String("event_type", "advice_failed"),
		slog.String("user_id", userID.String()),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", applog.TraceID(ctx)),
	)
}

// Helper functions

// maskEmail keeps the first character of the local part and the domain
func maskEmail(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			if i == 0 {
				return RedactedValue
			}
			return email[:1] + "***" + email[i:]
		}
	}
	return RedactedValue
}
