package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricAuthenticationEvent   = "authentication_event"
	MetricLedgerEntryRecorded   = "ledger_entry_recorded"
	MetricMonthlyIncomeSet      = "monthly_income_set"
	MetricCategoryTotalsRebuilt = "category_totals_rebuilt"
	MetricAdviceRequest         = "advice_request"
	MetricAdviceDuration        = "advice_duration"
	MetricAdviceKeywords        = "advice_keywords"
	MetricTokensPurged          = "tokens_purged"
)

type PrometheusMetrics struct {
	authenticationEventsTotal *prometheus.CounterVec
	ledgerEntriesTotal        *prometheus.CounterVec
	monthlyIncomeSetTotal     prometheus.Counter
	categoryRebuildsTotal     prometheus.Counter
	adviceRequestsTotal       *prometheus.CounterVec
	adviceDuration            prometheus.Histogram
	adviceKeywords            prometheus.Histogram
	tokensPurgedTotal         prometheus.Counter
}

// NewPrometheusMetrics registers the collectors with reg. Passing nil uses
// the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		ledgerEntriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_entries_recorded_total",
				Help: "Total number of ledger entries recorded by kind",
			},
			[]string{"kind"},
		),
		monthlyIncomeSetTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "monthly_income_set_total",
				Help: "Total number of salary schedule updates",
			},
		),
		categoryRebuildsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "category_totals_rebuilt_total",
				Help: "Total number of category total reconciliations",
			},
		),
		adviceRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advice_requests_total",
				Help: "Total number of advice requests by outcome",
			},
			[]string{"status"},
		),
		adviceDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "advice_duration_seconds",
				Help:    "Advice generation duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			},
		),
		adviceKeywords: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "advice_keywords",
				Help:    "Unique keywords looked up per advice request",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		tokensPurgedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "blacklisted_tokens_purged_total",
				Help: "Total number of expired blacklisted tokens removed",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case MetricLedgerEntryRecorded:
		if kind := tags["kind"]; kind != "" {
			m.ledgerEntriesTotal.WithLabelValues(kind).Inc()
		}
	case MetricMonthlyIncomeSet:
		m.monthlyIncomeSetTotal.Inc()
	case MetricCategoryTotalsRebuilt:
		m.categoryRebuildsTotal.Inc()
	case MetricAdviceRequest:
		if status := tags["status"]; status != "" {
			m.adviceRequestsTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricAdviceDuration:
		m.adviceDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricAdviceKeywords:
		m.adviceKeywords.Observe(value)
	case MetricTokensPurged:
		m.tokensPurgedTotal.Add(value)
	}
}

type noopMetrics struct{}

// NewNoopMetrics returns a recorder that drops every observation
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
