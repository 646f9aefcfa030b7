package models

// Record is the aggregate root for one person's criminal record.
//
// The record is constructed once per analysis request by an external loader
// and mutated only two ways afterwards: diagnostics appended to Errors, and
// eligibility verdicts written onto owned charges. It must never be
// deep-copied once analysis has begun: the time analyzer writes eligibility
// state onto the original charge instances, so any copy would silently
// receive none of the results.
type Record struct {
	Cases []*Case
	// Errors is the append-only diagnostic log, in order of detection.
	// Entries are human-readable and not deduplicated across error classes.
	Errors []string
}

// NewRecord wraps loader-produced cases. Charges inside the cases are
// expected to have been appended via Case.AppendCharge so their owning-case
// accessors work.
func NewRecord(cases []*Case) *Record {
	return &Record{Cases: cases}
}

// Charges flattens all cases' charges in case order. Derived, never stored.
func (r *Record) Charges() []*Charge {
	var charges []*Charge
	for _, kase := range r.Cases {
		charges = append(charges, kase.Charges...)
	}
	return charges
}

// AppendError appends one diagnostic message to the record's error log.
func (r *Record) AppendError(msg string) {
	r.Errors = append(r.Errors, msg)
}
