package models

import (
	"strings"
	"time"
)

// DispositionStatus is a domain value classifying a charge's legal outcome.
// Invariant: the value must be one of the supported statuses.
//
// Usage: construct via NewDisposition at trust boundaries so raw ruling text
// is classified through the allowlist; direct casting bypasses
// classification.
type DispositionStatus string

// Supported disposition statuses. Unrecognized is not a legal category: it
// flags ruling text the classifier could not place, which is a data-quality
// problem in the source court database.
const (
	DispositionConvicted    DispositionStatus = "convicted"
	DispositionDismissed    DispositionStatus = "dismissed"
	DispositionNoComplaint  DispositionStatus = "no_complaint"
	DispositionUnrecognized DispositionStatus = "unrecognized"
)

// validDispositionStatuses is the single source of truth for valid statuses.
var validDispositionStatuses = map[DispositionStatus]bool{
	DispositionConvicted:    true,
	DispositionDismissed:    true,
	DispositionNoComplaint:  true,
	DispositionUnrecognized: true,
}

// IsValid checks if the status is one of the supported enum values.
func (s DispositionStatus) IsValid() bool {
	return validDispositionStatuses[s]
}

// String returns the string representation of the status.
func (s DispositionStatus) String() string {
	return string(s)
}

// Disposition is the immutable recorded outcome of a charge: a classified
// status plus the raw ruling text it was classified from, and the date the
// ruling was entered. Ruling is retained verbatim because unrecognized
// rulings are surfaced to users exactly as the court recorded them.
type Disposition struct {
	Status DispositionStatus
	Ruling string
	Date   time.Time
}

// NewDisposition classifies raw ruling text into a Disposition. Text that
// matches no known ruling family is kept with status Unrecognized rather
// than rejected; the analysis layer reports it as a diagnostic.
func NewDisposition(ruling string, date time.Time) Disposition {
	return Disposition{
		Status: classifyRuling(ruling),
		Ruling: ruling,
		Date:   date,
	}
}

// rulingFamilies maps normalized ruling fragments to their status. Fragments
// reflect the wording observed in source court records; matching is
// substring-based because rulings carry trailing annotations
// ("Dismissed - Motion to Set Aside").
var rulingFamilies = []struct {
	fragment string
	status   DispositionStatus
}{
	// "not guilty" must precede the bare "guilty" fragment.
	{"not guilty", DispositionDismissed},
	{"convicted", DispositionConvicted},
	{"conviction", DispositionConvicted},
	{"guilty", DispositionConvicted},
	{"dismissed", DispositionDismissed},
	{"dismissal", DispositionDismissed},
	{"acquitted", DispositionDismissed},
	{"acquittal", DispositionDismissed},
	{"no complaint", DispositionNoComplaint},
}

func classifyRuling(ruling string) DispositionStatus {
	normalized := strings.ToLower(strings.TrimSpace(ruling))
	for _, family := range rulingFamilies {
		if strings.Contains(normalized, family.fragment) {
			return family.status
		}
	}
	return DispositionUnrecognized
}
