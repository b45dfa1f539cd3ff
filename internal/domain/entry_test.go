package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_IsValid(t *testing.T) {
	valid := Entry{
		ID:        1718000000000,
		CreatedAt: 1718000000000,
		TripType:  TripRendicion,
		Date:      "07/03/2024",
		Hours:     2.5,
		Cost:      1562.5,
	}

	tests := []struct {
		name     string
		mutate   func(e Entry) Entry
		expected bool
	}{
		{
			name:     "should accept a well-formed entry",
			mutate:   func(e Entry) Entry { return e },
			expected: true,
		},
		{
			name:     "should reject zero hours",
			mutate:   func(e Entry) Entry { e.Hours = 0; return e },
			expected: false,
		},
		{
			name:     "should reject negative hours",
			mutate:   func(e Entry) Entry { e.Hours = -1; return e },
			expected: false,
		},
		{
			name:     "should reject whitespace-only trip type",
			mutate:   func(e Entry) Entry { e.TripType = "   "; return e },
			expected: false,
		},
		{
			name:     "should reject missing id",
			mutate:   func(e Entry) Entry { e.ID = 0; return e },
			expected: false,
		},
		{
			name:     "should reject missing date",
			mutate:   func(e Entry) Entry { e.Date = ""; return e },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mutate(valid).IsValid())
		})
	}
}
