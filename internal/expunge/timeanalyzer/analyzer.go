// Package timeanalyzer computes time-eligibility verdicts over summarized
// charge units. Output is entirely via mutation: each underlying charge's
// eligibility slot is written exactly once. The package never touches case
// or record state and never fails on data shapes that passed the
// orchestrator's pre-filtering; charges it cannot reason about receive an
// indeterminate verdict instead.
package timeanalyzer

import (
	"context"
	"fmt"
	"time"

	"recordexpunge/internal/expunge/models"
	"recordexpunge/internal/expunge/rules"
	"recordexpunge/pkg/requestcontext"
)

// Analyzer applies a waiting-period rule set to summarized charge units.
type Analyzer struct {
	rules rules.RuleSet
}

// New constructs an analyzer over the injected rule set. Validate the rule
// set before handing it in; the analyzer trusts it.
func New(rs rules.RuleSet) *Analyzer {
	return &Analyzer{rules: rs}
}

// Evaluate writes a verdict onto every charge reachable through the units.
// The evaluation time comes from requestcontext.Now, so callers and tests
// can pin "now".
//
// Errors: only contract violations (a charge whose eligibility slot is
// already set). Expected data problems such as unrecognized dispositions and missing
// dates become indeterminate verdicts, never errors.
func (a *Analyzer) Evaluate(ctx context.Context, units []*models.ChargeWithSummary) error {
	now := requestcontext.Now(ctx)
	conflict := latestConvictionDate(units)

	for _, unit := range units {
		for _, charge := range unit.Charges {
			verdict := a.verdict(unit, charge, conflict, now)
			if err := charge.SetEligibility(verdict); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Analyzer) verdict(unit *models.ChargeWithSummary, charge *models.Charge, conflict, now time.Time) models.Eligibility {
	if unit.Kind == models.GroupUnclassified {
		return models.Eligibility{
			Status: models.EligibilityIndeterminate,
			Reason: "Disposition could not be classified, so no waiting period can be computed.",
		}
	}
	if unit.DispositionDate.IsZero() {
		return models.Eligibility{
			Status: models.EligibilityIndeterminate,
			Reason: "Disposition date is unavailable, so no waiting period can be computed.",
		}
	}
	if unit.Kind == models.GroupConvictions && a.rules.LevelIneligible(charge.Level) {
		return models.Eligibility{
			Status: models.EligibilityIneligible,
			Reason: fmt.Sprintf("Convictions at level %q are not eligible for expungement.", charge.Level),
		}
	}

	eligibleDate, reason := a.baseEligibility(unit, charge)

	// A later conviction anywhere on the record restarts the clock.
	if unit.Kind == models.GroupConvictions && conflict.After(unit.DispositionDate) {
		fromConflict := conflict.AddDate(a.rules.ConflictWindowYears, 0, 0)
		if fromConflict.After(eligibleDate) {
			eligibleDate = fromConflict
			reason = fmt.Sprintf(
				"A conviction on %s restarts the waiting period; %d years must pass from that conviction.",
				conflict.Format("Jan 2, 2006"), a.rules.ConflictWindowYears)
		}
	}

	if eligibleDate.After(now) {
		return models.Eligibility{
			Status:       models.EligibilityEligibleOn,
			Reason:       reason,
			DateEligible: &eligibleDate,
		}
	}
	return models.Eligibility{
		Status: models.EligibilityEligibleNow,
		Reason: "The waiting period for this charge has elapsed.",
	}
}

func (a *Analyzer) baseEligibility(unit *models.ChargeWithSummary, charge *models.Charge) (time.Time, string) {
	if unit.Kind == models.GroupDismissals {
		years := a.rules.DismissalWaitingYears
		return unit.DispositionDate.AddDate(years, 0, 0),
			fmt.Sprintf("%d years must pass from the dismissal date.", years)
	}
	years := a.rules.ConvictionWaitingYears[charge.Class()]
	return unit.DispositionDate.AddDate(years, 0, 0),
		fmt.Sprintf("%d years must pass from the conviction date.", years)
}

// latestConvictionDate scans all units for the most recent conviction
// disposition date; zero when the record has no dated convictions.
func latestConvictionDate(units []*models.ChargeWithSummary) time.Time {
	var latest time.Time
	for _, unit := range units {
		if unit.Kind != models.GroupConvictions || unit.DispositionDate.IsZero() {
			continue
		}
		if unit.DispositionDate.After(latest) {
			latest = unit.DispositionDate
		}
	}
	return latest
}
