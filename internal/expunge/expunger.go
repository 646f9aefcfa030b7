// Package expunge implements the eligibility-analysis engine: the
// orchestrator that walks a record's cases and charges, reports
// data-quality problems as diagnostics on the record, and delegates
// time-eligibility computation to the analyzer.
package expunge

import (
	"context"
	"fmt"
	"strings"

	"recordexpunge/internal/expunge/models"
	"recordexpunge/internal/expunge/summarizer"
	dErrors "recordexpunge/pkg/domain-errors"
	pstrings "recordexpunge/pkg/platform/strings"
)

// TimeAnalyzer computes verdicts over summarized charge units. It mutates
// the eligibility slot of every charge reachable through the units; callers
// consume no return value from the evaluation, only the mutations.
type TimeAnalyzer interface {
	Evaluate(ctx context.Context, units []*models.ChargeWithSummary) error
}

// Summarize groups analyzable charges into the units time analysis runs on.
type Summarize func(charges []*models.Charge) []*models.ChargeWithSummary

// Expunger owns the end-to-end analysis run for one record.
//
// The analyzer mutates charges in the record directly to add time
// eligibility information, so it is unsafe to deep-copy anything in the
// chain stemming from the record (including the summarized units retained
// here) between construction and Run.
type Expunger struct {
	record             *models.Record
	analyzer           TimeAnalyzer
	chargesWithSummary []*models.ChargeWithSummary
	ran                bool
}

// Option configures an Expunger.
type Option func(*expungerConfig)

type expungerConfig struct {
	summarize Summarize
}

// WithSummarize overrides the default grouping; used when statutory grouping
// policy differs from summarizer.DefaultPolicy.
func WithSummarize(s Summarize) Option {
	return func(cfg *expungerConfig) { cfg.summarize = s }
}

// New filters the record's analyzable charges and summarizes them once. The
// summarized units are retained for Run, which mutates the underlying
// charge instances through them.
func New(record *models.Record, analyzer TimeAnalyzer, opts ...Option) *Expunger {
	cfg := &expungerConfig{summarize: summarizer.Summarize}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Expunger{
		record:             record,
		analyzer:           analyzer,
		chargesWithSummary: cfg.summarize(analyzableCharges(record.Charges())),
	}
}

// Run evaluates the expungement eligibility of the record. All diagnostic
// categories are evaluated regardless of earlier findings; expected data
// problems degrade the analysis and are reported, never returned as errors.
//
// Returns true when the record has no open cases, i.e. the analysis is
// structurally trustworthy. The boolean says nothing about whether any
// charge is eligible.
//
// Errors: contract violations only, i.e. a second Run on the same instance or
// an analyzer fault such as a double verdict write.
func (e *Expunger) Run(ctx context.Context) (bool, error) {
	if e.ran {
		return false, dErrors.New(dErrors.CodeInvariantViolation, "analysis already ran for this record")
	}
	e.ran = true

	openCases := e.openCases()
	if len(openCases) > 0 {
		caseNumbers := make([]string, 0, len(openCases))
		for _, kase := range openCases {
			caseNumbers = append(caseNumbers, kase.CaseNumber)
		}
		e.record.AppendError(fmt.Sprintf(
			"All charges are ineligible because there is one or more open case: %s. "+
				"Open cases with valid dispositions are still included in time analysis. "+
				"Otherwise they are ignored, so time analysis may be inaccurate for other charges.",
			strings.Join(caseNumbers, ",")))
	}

	for _, msg := range buildDispositionErrors(e.record.Charges()) {
		e.record.AppendError(msg)
	}

	if err := e.analyzer.Evaluate(ctx, e.chargesWithSummary); err != nil {
		return false, err
	}

	return len(openCases) == 0, nil
}

func (e *Expunger) openCases() []*models.Case {
	var open []*models.Case
	for _, kase := range e.record.Cases {
		if !kase.Closed() {
			open = append(open, kase)
		}
	}
	return open
}

// analyzableCharges keeps charges that are neither excluded by policy nor
// missing a disposition. Only these enter summarization and time analysis.
func analyzableCharges(charges []*models.Charge) []*models.Charge {
	var analyzable []*models.Charge
	for _, charge := range charges {
		if !charge.SkipAnalysis() && charge.Disposition != nil {
			analyzable = append(analyzable, charge)
		}
	}
	return analyzable
}

// buildDispositionErrors produces the missing-disposition diagnostic (if
// any) followed by the unrecognized-disposition diagnostic (if any), over
// all charges in the record, not just the analyzable ones.
func buildDispositionErrors(charges []*models.Charge) []string {
	missing, unrecognized := filterCasesWithErrors(charges)

	var errs []string
	if len(missing) > 0 {
		errs = append(errs, dispositionErrorMessage(missing, "a missing"))
	}
	if len(unrecognized) > 0 {
		errs = append(errs, dispositionErrorMessage(unrecognized, "an unrecognized"))
	}
	return errs
}

// filterCasesWithErrors collects the deduplicated identifiers of cases with
// disposition problems. A charge with no disposition only counts when its
// case is closed: on an open case the absence is expected. Unrecognized
// dispositions are identified by "<case number>: <ruling>" so the raw
// court text is visible to the user.
func filterCasesWithErrors(charges []*models.Charge) (missing, unrecognized []string) {
	for _, charge := range charges {
		if charge.SkipAnalysis() {
			continue
		}
		kase := charge.Case()
		if kase == nil {
			continue
		}
		switch {
		case charge.Disposition == nil && kase.Closed():
			missing = append(missing, kase.CaseNumber)
		case charge.Disposition != nil && charge.Disposition.Status == models.DispositionUnrecognized:
			unrecognized = append(unrecognized, fmt.Sprintf("%s: %s", kase.CaseNumber, charge.Disposition.Ruling))
		}
	}
	return pstrings.DedupeAndTrim(missing), pstrings.DedupeAndTrim(unrecognized)
}

func dispositionErrorMessage(errorCases []string, dispositionErrorName string) string {
	if len(errorCases) == 1 {
		return fmt.Sprintf(
			"Case %s has a charge with %s disposition.\n"+
				"This might be an error in the court records database. "+
				"Time analysis is ignoring this charge and may be inaccurate for other charges.",
			errorCases[0], dispositionErrorName)
	}
	return fmt.Sprintf(
		"The following cases have charges with %s disposition.\n"+
			"This might be an error in the court records database. "+
			"Time analysis is ignoring these charges and may be inaccurate for other charges.\n"+
			"Case numbers: %s",
		dispositionErrorName, strings.Join(errorCases, ", "))
}
