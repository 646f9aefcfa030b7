package models

import "time"

// EligibilityStatus is the time-eligibility class of a charge's verdict.
type EligibilityStatus string

const (
	// EligibilityEligibleNow means the waiting period has elapsed.
	EligibilityEligibleNow EligibilityStatus = "eligible_now"
	// EligibilityEligibleOn means the charge becomes eligible on DateEligible.
	EligibilityEligibleOn EligibilityStatus = "eligible_on"
	// EligibilityIneligible means the charge can never be expunged under the
	// rule set applied.
	EligibilityIneligible EligibilityStatus = "ineligible"
	// EligibilityIndeterminate means the analyzer lacked the data (usually a
	// disposition date) to compute a verdict. This is a verdict value, not an
	// error condition.
	EligibilityIndeterminate EligibilityStatus = "indeterminate"
)

var validEligibilityStatuses = map[EligibilityStatus]bool{
	EligibilityEligibleNow:   true,
	EligibilityEligibleOn:    true,
	EligibilityIneligible:    true,
	EligibilityIndeterminate: true,
}

// IsValid checks if the status is one of the supported enum values.
func (s EligibilityStatus) IsValid() bool {
	return validEligibilityStatuses[s]
}

// String returns the string representation of the status.
func (s EligibilityStatus) String() string {
	return string(s)
}

// Eligibility is a charge's time-eligibility verdict.
//
// Invariants:
//   - Status is a valid EligibilityStatus
//   - DateEligible is non-nil iff Status is eligible_on
//   - Reason is non-empty (every verdict carries a human-readable rationale)
type Eligibility struct {
	Status       EligibilityStatus
	Reason       string
	DateEligible *time.Time
}
