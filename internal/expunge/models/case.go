package models

import (
	"github.com/google/uuid"
)

// Case statuses that indicate finality: every charge is dispositioned and no
// further court action is expected. Wording follows the source court
// database.
var closedCaseStatuses = map[string]bool{
	"Closed":             true,
	"Purgable":           true,
	"Bankruptcy Pending": true,
}

// Case is a named legal case owning an ordered sequence of charges.
//
// Invariants:
//   - CaseNumber is unique within a record (diagnostic grouping keys on it)
//   - Charges appended through AppendCharge carry a working owning-case
//     accessor back to this case
type Case struct {
	ID         uuid.UUID
	CaseNumber string
	// Status is the court-recorded case status, e.g. "Open" or "Closed".
	Status  string
	Charges []*Charge
}

// NewCase constructs an empty case; populate it with AppendCharge.
func NewCase(caseNumber, status string) *Case {
	return &Case{
		ID:         uuid.New(),
		CaseNumber: caseNumber,
		Status:     status,
	}
}

// Closed reports whether the case status indicates finality. A missing
// disposition on an open case is expected; on a closed case it is a
// data-quality problem.
func (k *Case) Closed() bool {
	return closedCaseStatuses[k.Status]
}

// AppendCharge takes ownership of the charge and wires its owning-case
// accessor so the charge can resolve its case number and closed state.
func (k *Case) AppendCharge(c *Charge) {
	c.attachCase(func() *Case { return k })
	k.Charges = append(k.Charges, c)
}
