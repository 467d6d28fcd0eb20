package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	testCases := []struct {
		name         string
		firstSeen    float64
		lastSeen     float64
		sampleIsLast bool
		expected     NoteStatus
	}{
		{
			name:         "single sighting on last sample is cancelled",
			firstSeen:    100,
			lastSeen:     100,
			sampleIsLast: true,
			expected:     StatusCancelled,
		},
		{
			name:         "gone before limit on last sample is bought",
			firstSeen:    100,
			lastSeen:     500,
			sampleIsLast: true,
			expected:     StatusBought,
		},
		{
			name:         "earlier sample under limit is not bought yet",
			firstSeen:    100,
			lastSeen:     500,
			sampleIsLast: false,
			expected:     StatusNotBoughtYet,
		},
		{
			name:         "aged out exactly at threshold",
			firstSeen:    0,
			lastSeen:     604800,
			sampleIsLast: true,
			expected:     StatusNotBought,
		},
		{
			name:         "aged out on interior sample",
			firstSeen:    0,
			lastSeen:     700000,
			sampleIsLast: false,
			expected:     StatusNotBought,
		},
		{
			name:         "just under threshold on last sample",
			firstSeen:    0,
			lastSeen:     604799,
			sampleIsLast: true,
			expected:     StatusBought,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveStatus(tc.firstSeen, tc.lastSeen, tc.sampleIsLast)
			assert.Equal(t, tc.expected, got)
		})
	}
}
