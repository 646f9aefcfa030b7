package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseClosed(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected bool
	}{
		{name: "closed", status: "Closed", expected: true},
		{name: "purgable", status: "Purgable", expected: true},
		{name: "bankruptcy pending", status: "Bankruptcy Pending", expected: true},
		{name: "open", status: "Open", expected: false},
		{name: "unknown status treated as open", status: "Reopened", expected: false},
		{name: "empty status treated as open", status: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewCase("19CR1234", tt.status).Closed())
		})
	}
}

func TestRecordChargesFlattensInCaseOrder(t *testing.T) {
	first := NewCase("19CR0001", "Closed")
	a := NewCharge(ChargeParams{Name: "A"})
	b := NewCharge(ChargeParams{Name: "B"})
	first.AppendCharge(a)
	first.AppendCharge(b)

	second := NewCase("19CR0002", "Open")
	c := NewCharge(ChargeParams{Name: "C"})
	second.AppendCharge(c)

	record := NewRecord([]*Case{first, second})

	charges := record.Charges()
	assert.Equal(t, []*Charge{a, b, c}, charges)
	assert.Same(t, a, charges[0], "flattening aliases, never copies")
}

func TestRecordAppendErrorPreservesOrder(t *testing.T) {
	record := NewRecord(nil)
	record.AppendError("first")
	record.AppendError("second")
	assert.Equal(t, []string{"first", "second"}, record.Errors)
}
