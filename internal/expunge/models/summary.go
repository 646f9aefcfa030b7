package models

import "time"

// GroupKind classifies what a summary unit's charges have in common.
type GroupKind string

const (
	// GroupConvictions holds convicted charges sharing a case and
	// disposition date.
	GroupConvictions GroupKind = "convictions"
	// GroupDismissals holds dismissed / no-complaint charges sharing a case
	// and disposition date.
	GroupDismissals GroupKind = "dismissals"
	// GroupUnclassified holds charges whose disposition could not be
	// recognized; the analyzer gives these indeterminate verdicts.
	GroupUnclassified GroupKind = "unclassified"
)

// ChargeWithSummary is the grain at which time eligibility is computed: one
// or more charges plus the metadata the grouping derived. Some statutory
// rules depend on relationships between charges (same case, same disposition
// date), so the analyzer consumes these units rather than raw charges.
//
// The unit is strictly a view: Charges aliases the record's original charge
// instances and must never be replaced with copies, or eligibility mutations
// would land on orphans.
type ChargeWithSummary struct {
	Charges []*Charge
	// CaseNumber identifies the shared case of every charge in the unit.
	CaseNumber string
	// DispositionDate is the disposition date the unit's charges share; zero
	// for unclassified groups with unusable dates.
	DispositionDate time.Time
	Kind            GroupKind
}
