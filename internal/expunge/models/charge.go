package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "recordexpunge/pkg/domain-errors"
)

// ChargeClass is the severity class parsed from a charge's level text.
type ChargeClass string

const (
	ClassFelony      ChargeClass = "felony"
	ClassMisdemeanor ChargeClass = "misdemeanor"
	ClassViolation   ChargeClass = "violation"
	ClassInfraction  ChargeClass = "infraction"
	ClassUnknown     ChargeClass = "unknown"
)

// CaseAccessor resolves a charge's owning case on demand. The charge never
// holds an owning pointer; ownership stays Record → Case → Charge and the
// accessor is only a lookup handle (wired by Case.AppendCharge).
type CaseAccessor func() *Case

// Charge is one criminal charge on a case.
//
// Invariants:
//   - a charge included in summarization has SkipAnalysis() == false and a
//     non-nil Disposition
//   - the eligibility slot is written at most once per analysis run; a second
//     write is a contract violation, not a recoverable condition
//   - the owning-case accessor is set before any analysis touches the charge
type Charge struct {
	ID      uuid.UUID
	Name    string
	Statute string
	// Level is the court-recorded severity text, e.g. "Felony Class B".
	Level string
	Date  time.Time
	// Disposition is nil until the loader has resolved an outcome. Absence on
	// a closed case is a data-quality problem; absence on an open case is
	// expected.
	Disposition *Disposition

	kase        CaseAccessor
	eligibility *Eligibility
}

// ChargeParams carries loader-supplied attributes for NewCharge.
type ChargeParams struct {
	Name        string
	Statute     string
	Level       string
	Date        time.Time
	Disposition *Disposition
}

// NewCharge constructs a charge with a fresh identity. The owning-case
// accessor is wired later by Case.AppendCharge.
func NewCharge(p ChargeParams) *Charge {
	return &Charge{
		ID:          uuid.New(),
		Name:        p.Name,
		Statute:     p.Statute,
		Level:       p.Level,
		Date:        p.Date,
		Disposition: p.Disposition,
	}
}

// Case resolves the owning case, or nil when the charge is not yet attached.
func (c *Charge) Case() *Case {
	if c.kase == nil {
		return nil
	}
	return c.kase()
}

// Class parses the severity class out of the court-recorded level text.
func (c *Charge) Class() ChargeClass {
	level := strings.ToLower(c.Level)
	switch {
	case strings.Contains(level, "felony"):
		return ClassFelony
	case strings.Contains(level, "misdemeanor"):
		return ClassMisdemeanor
	case strings.Contains(level, "infraction"):
		return ClassInfraction
	case strings.Contains(level, "violation"):
		return ClassViolation
	default:
		return ClassUnknown
	}
}

// SkipAnalysis reports whether policy excludes this charge from eligibility
// computation regardless of disposition: non-criminal infractions and
// traffic violations never enter time analysis.
func (c *Charge) SkipAnalysis() bool {
	switch c.Class() {
	case ClassInfraction:
		return true
	case ClassViolation:
		return isTrafficStatute(c.Statute)
	default:
		return false
	}
}

// Eligibility returns the verdict written by the time analyzer, or nil when
// the charge was never analyzed (skipped, or the run has not happened).
func (c *Charge) Eligibility() *Eligibility {
	return c.eligibility
}

// SetEligibility writes the verdict slot. The slot is write-once per run;
// a duplicate write means two analyzers raced or the same analyzer visited a
// charge twice, both programming errors.
func (c *Charge) SetEligibility(e Eligibility) error {
	if c.eligibility != nil {
		return dErrors.Newf(dErrors.CodeInvariantViolation,
			"eligibility already set for charge %s", c.ID)
	}
	if !e.Status.IsValid() {
		return dErrors.Newf(dErrors.CodeInvalidInput,
			"invalid eligibility status %q", e.Status)
	}
	c.eligibility = &e
	return nil
}

// attachCase wires the owning-case accessor. Called by Case.AppendCharge.
func (c *Charge) attachCase(accessor CaseAccessor) {
	c.kase = accessor
}

// isTrafficStatute reports whether the statute's chapter falls in the
// vehicle-code range (ORS chapters 801–826).
func isTrafficStatute(statute string) bool {
	chapter, _, _ := strings.Cut(statute, ".")
	n, err := strconv.Atoi(strings.TrimSpace(chapter))
	if err != nil {
		return false
	}
	return n >= 801 && n <= 826
}
