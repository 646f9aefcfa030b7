// Package summarizer groups analyzable charges into the summary units the
// time analyzer computes over. Grouping is pure: it forms views over the
// caller's charge instances, never copies them, and never touches the
// record's error log.
package summarizer

import (
	"time"

	"recordexpunge/internal/expunge/models"
)

// GroupKey identifies the summary unit a charge belongs to. Charges with
// equal keys land in the same unit.
type GroupKey struct {
	CaseNumber      string
	DispositionDate time.Time
	Kind            models.GroupKind
}

// Policy maps a charge to its grouping key. The exact statutory grouping
// criteria are configuration, not logic owned by this package; callers with
// refined rules inject their own Policy.
type Policy func(c *models.Charge) GroupKey

// DefaultPolicy groups charges by owning case and disposition date, with
// convictions, dismissals, and unclassifiable dispositions in separate
// units. Charges that reached this package have a disposition (the
// orchestrator filters the rest).
func DefaultPolicy(c *models.Charge) GroupKey {
	key := GroupKey{DispositionDate: dateOnly(c.Disposition.Date)}
	if kase := c.Case(); kase != nil {
		key.CaseNumber = kase.CaseNumber
	}
	switch c.Disposition.Status {
	case models.DispositionConvicted:
		key.Kind = models.GroupConvictions
	case models.DispositionDismissed, models.DispositionNoComplaint:
		key.Kind = models.GroupDismissals
	default:
		key.Kind = models.GroupUnclassified
	}
	return key
}

// Summarize partitions the ordered analyzable charges into summary units
// using DefaultPolicy. Unit order follows first appearance of each key, so
// output is deterministic in input order. Applying Summarize twice to the
// same charges yields units referencing the identical charge instances.
func Summarize(charges []*models.Charge) []*models.ChargeWithSummary {
	return SummarizeWith(DefaultPolicy, charges)
}

// SummarizeWith is Summarize under a caller-supplied grouping policy.
func SummarizeWith(policy Policy, charges []*models.Charge) []*models.ChargeWithSummary {
	byKey := make(map[GroupKey]*models.ChargeWithSummary)
	var units []*models.ChargeWithSummary

	for _, charge := range charges {
		key := policy(charge)
		unit, ok := byKey[key]
		if !ok {
			unit = &models.ChargeWithSummary{
				CaseNumber:      key.CaseNumber,
				DispositionDate: key.DispositionDate,
				Kind:            key.Kind,
			}
			byKey[key] = unit
			units = append(units, unit)
		}
		unit.Charges = append(unit.Charges, charge)
	}

	return units
}

// dateOnly strips the time-of-day so rulings entered at different clock
// times on the same day still share a unit.
func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
