package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDispositionClassifiesRuling(t *testing.T) {
	tests := []struct {
		name     string
		ruling   string
		expected DispositionStatus
	}{
		{
			name:     "convicted",
			ruling:   "Convicted",
			expected: DispositionConvicted,
		},
		{
			name:     "conviction with annotation",
			ruling:   "Conviction - Failure to Appear",
			expected: DispositionConvicted,
		},
		{
			name:     "guilty finding",
			ruling:   "Finding - Guilty",
			expected: DispositionConvicted,
		},
		{
			name:     "not guilty finding is a dismissal",
			ruling:   "Finding - Not Guilty",
			expected: DispositionDismissed,
		},
		{
			name:     "dismissed",
			ruling:   "Dismissed",
			expected: DispositionDismissed,
		},
		{
			name:     "dismissal with annotation",
			ruling:   "Dismissal - Motion to Set Aside",
			expected: DispositionDismissed,
		},
		{
			name:     "acquitted",
			ruling:   "Acquitted",
			expected: DispositionDismissed,
		},
		{
			name:     "no complaint",
			ruling:   "No Complaint",
			expected: DispositionNoComplaint,
		},
		{
			name:     "mixed case and whitespace",
			ruling:   "  DISMISSED  ",
			expected: DispositionDismissed,
		},
		{
			name:     "unknown ruling text",
			ruling:   "Remanded to Juvenile Court",
			expected: DispositionUnrecognized,
		},
		{
			name:     "empty ruling",
			ruling:   "",
			expected: DispositionUnrecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDisposition(tt.ruling, time.Now())
			assert.Equal(t, tt.expected, d.Status)
			assert.Equal(t, tt.ruling, d.Ruling, "raw ruling text is preserved verbatim")
		})
	}
}

func TestDispositionStatusIsValid(t *testing.T) {
	assert.True(t, DispositionConvicted.IsValid())
	assert.True(t, DispositionUnrecognized.IsValid())
	assert.False(t, DispositionStatus("expunged").IsValid())
}
