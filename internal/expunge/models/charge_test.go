package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "recordexpunge/pkg/domain-errors"
)

func TestChargeClass(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected ChargeClass
	}{
		{name: "felony", level: "Felony Class B", expected: ClassFelony},
		{name: "misdemeanor", level: "Misdemeanor Class A", expected: ClassMisdemeanor},
		{name: "violation", level: "Violation Class C", expected: ClassViolation},
		{name: "infraction", level: "Infraction", expected: ClassInfraction},
		{name: "lowercase level text", level: "felony unclassified", expected: ClassFelony},
		{name: "unknown", level: "N/A", expected: ClassUnknown},
		{name: "empty", level: "", expected: ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCharge(ChargeParams{Level: tt.level})
			assert.Equal(t, tt.expected, c.Class())
		})
	}
}

func TestChargeSkipAnalysis(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		statute  string
		expected bool
	}{
		{
			name:     "parking infraction is skipped",
			level:    "Infraction",
			statute:  "221.333",
			expected: true,
		},
		{
			name:     "traffic violation is skipped",
			level:    "Violation Class B",
			statute:  "811.135",
			expected: true,
		},
		{
			name:     "non-traffic violation is analyzed",
			level:    "Violation Class A",
			statute:  "164.043",
			expected: false,
		},
		{
			name:     "misdemeanor is analyzed",
			level:    "Misdemeanor Class A",
			statute:  "164.043",
			expected: false,
		},
		{
			name:     "felony is analyzed",
			level:    "Felony Class C",
			statute:  "475.854",
			expected: false,
		},
		{
			name:     "violation with unparseable statute is analyzed",
			level:    "Violation Class A",
			statute:  "local ordinance",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCharge(ChargeParams{Level: tt.level, Statute: tt.statute})
			assert.Equal(t, tt.expected, c.SkipAnalysis())
		})
	}
}

func TestChargeCaseAccessor(t *testing.T) {
	c := NewCharge(ChargeParams{Name: "Theft in the Second Degree"})
	assert.Nil(t, c.Case(), "unattached charge resolves no case")

	kase := NewCase("19CR1234", "Closed")
	kase.AppendCharge(c)

	require.NotNil(t, c.Case())
	assert.Equal(t, "19CR1234", c.Case().CaseNumber)
	assert.True(t, c.Case().Closed())
	assert.Same(t, kase, c.Case(), "accessor resolves the owning instance, not a copy")
}

func TestChargeSetEligibility(t *testing.T) {
	t.Run("writes the verdict once", func(t *testing.T) {
		c := NewCharge(ChargeParams{})
		require.Nil(t, c.Eligibility())

		err := c.SetEligibility(Eligibility{
			Status: EligibilityEligibleNow,
			Reason: "The waiting period for this charge has elapsed.",
		})
		require.NoError(t, err)
		require.NotNil(t, c.Eligibility())
		assert.Equal(t, EligibilityEligibleNow, c.Eligibility().Status)
	})

	t.Run("rejects a second write", func(t *testing.T) {
		c := NewCharge(ChargeParams{})
		require.NoError(t, c.SetEligibility(Eligibility{
			Status: EligibilityIneligible,
			Reason: "ineligible",
		}))

		err := c.SetEligibility(Eligibility{
			Status: EligibilityEligibleNow,
			Reason: "eligible",
		})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		assert.Equal(t, EligibilityIneligible, c.Eligibility().Status, "first verdict stands")
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		c := NewCharge(ChargeParams{})
		err := c.SetEligibility(Eligibility{Status: "sealed", Reason: "bogus"})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Nil(t, c.Eligibility())
	})
}

func TestChargeDispositionAbsence(t *testing.T) {
	c := NewCharge(ChargeParams{Name: "Harassment"})
	assert.Nil(t, c.Disposition, "disposition is absent until loaded")

	d := NewDisposition("Dismissed", time.Date(2019, 3, 12, 0, 0, 0, 0, time.UTC))
	c.Disposition = &d
	assert.Equal(t, DispositionDismissed, c.Disposition.Status)
}
