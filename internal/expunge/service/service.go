// Package service wraps the analysis engine with the operational concerns
// the engine itself stays free of: logging, metrics, tracing, and bounded
// concurrent batch analysis.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"recordexpunge/internal/expunge"
	expungemetrics "recordexpunge/internal/expunge/metrics"
	"recordexpunge/internal/expunge/models"
	"recordexpunge/internal/expunge/rules"
	"recordexpunge/internal/expunge/timeanalyzer"
	"recordexpunge/internal/platform/config"
	"recordexpunge/internal/platform/logger"
	"recordexpunge/pkg/requestcontext"
)

const defaultBatchConcurrency = 4

// Service runs eligibility analyses over loaded records.
type Service struct {
	analyzer    expunge.TimeAnalyzer
	logger      *slog.Logger
	metrics     *expungemetrics.Metrics
	tracer      trace.Tracer
	concurrency int
}

// Option configures the service.
type Option func(*serviceConfig)

type serviceConfig struct {
	logger      *slog.Logger
	metrics     *expungemetrics.Metrics
	concurrency int
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *serviceConfig) { cfg.logger = l }
}

// WithMetrics attaches analysis metrics.
func WithMetrics(m *expungemetrics.Metrics) Option {
	return func(cfg *serviceConfig) { cfg.metrics = m }
}

// WithBatchConcurrency bounds concurrent record analyses in AnalyzeBatch.
func WithBatchConcurrency(n int) Option {
	return func(cfg *serviceConfig) {
		if n > 0 {
			cfg.concurrency = n
		}
	}
}

// NewFromConfig builds the service from environment-derived configuration:
// the rule set is loaded from cfg.RulesPath (built-in defaults when empty)
// and a structured logger is attached unless an option overrides it.
func NewFromConfig(cfg config.Analysis, opts ...Option) (*Service, error) {
	ruleSet := rules.Default()
	if cfg.RulesPath != "" {
		loaded, err := rules.Load(cfg.RulesPath)
		if err != nil {
			return nil, err
		}
		ruleSet = loaded
	}

	defaults := []Option{
		WithLogger(logger.New(slog.LevelInfo)),
		WithBatchConcurrency(cfg.BatchConcurrency),
	}
	return New(timeanalyzer.New(ruleSet), append(defaults, opts...)...), nil
}

// New constructs the analysis service around a time analyzer.
func New(analyzer expunge.TimeAnalyzer, opts ...Option) *Service {
	cfg := &serviceConfig{concurrency: defaultBatchConcurrency}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Service{
		analyzer:    analyzer,
		logger:      cfg.logger,
		metrics:     cfg.metrics,
		tracer:      otel.Tracer("recordexpunge/internal/expunge/service"),
		concurrency: cfg.concurrency,
	}
}

// AnalyzeRecord runs one full analysis over the record, mutating it in
// place (diagnostics appended, verdicts written onto charges). Returns the
// structural-completeness signal from the engine.
func (s *Service) AnalyzeRecord(ctx context.Context, record *models.Record) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "expunge.AnalyzeRecord")
	defer span.End()

	start := time.Now()
	priorErrors := len(record.Errors)

	expunger := expunge.New(record, s.analyzer)
	complete, err := expunger.Run(ctx)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	s.observe(record, complete, priorErrors, start)
	span.SetAttributes(
		attribute.Int("record.cases", len(record.Cases)),
		attribute.Bool("record.complete", complete),
	)

	if s.logger != nil {
		s.logger.InfoContext(ctx, "record analyzed",
			"request_id", requestcontext.RequestID(ctx),
			"cases", len(record.Cases),
			"charges", len(record.Charges()),
			"complete", complete,
			"diagnostics", len(record.Errors)-priorErrors,
		)
	}
	return complete, nil
}

// AnalyzeBatch analyzes independent records concurrently. Records must not
// share cases or charges; each record is mutated only by its own analysis.
// The first contract error cancels the remaining analyses.
func (s *Service) AnalyzeBatch(ctx context.Context, records []*models.Record) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, record := range records {
		record := record
		g.Go(func() error {
			_, err := s.AnalyzeRecord(ctx, record)
			return err
		})
	}
	return g.Wait()
}

// observe feeds the metrics sinks; all helpers are nil-safe so a bare
// Service stays usable in tests.
func (s *Service) observe(record *models.Record, complete bool, priorErrors int, start time.Time) {
	s.metrics.ObserveAnalyzeLatency(start)
	s.metrics.IncrementRecordsAnalyzed(complete)

	for _, diagnostic := range record.Errors[priorErrors:] {
		s.metrics.IncrementDiagnostic(diagnosticKind(diagnostic))
	}
	for _, charge := range record.Charges() {
		if verdict := charge.Eligibility(); verdict != nil {
			s.metrics.IncrementVerdict(verdict.Status.String())
		}
	}
}

// diagnosticKind classifies a diagnostic message for metric labels. Labels
// are best-effort; an unmatched message is still counted.
func diagnosticKind(msg string) string {
	switch {
	case strings.Contains(msg, "open case"):
		return "open_cases"
	case strings.Contains(msg, "a missing disposition"):
		return "missing_disposition"
	case strings.Contains(msg, "an unrecognized disposition"):
		return "unrecognized_disposition"
	default:
		return "other"
	}
}
