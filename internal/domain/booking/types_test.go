//go:build unit

package booking_test

import (
	"testing"

	"github.com/TOOL2U/LandWise/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{"pending to paid", booking.StatusPending, booking.StatusPaid, true},
		{"pending to failed", booking.StatusPending, booking.StatusFailed, true},
		{"pending to refunded", booking.StatusPending, booking.StatusRefunded, true},
		{"paid to refunded", booking.StatusPaid, booking.StatusRefunded, true},
		{"failed to refunded", booking.StatusFailed, booking.StatusRefunded, true},
		{"paid to failed", booking.StatusPaid, booking.StatusFailed, false},
		{"paid to pending", booking.StatusPaid, booking.StatusPending, false},
		{"failed to paid", booking.StatusFailed, booking.StatusPaid, false},
		{"failed to pending", booking.StatusFailed, booking.StatusPending, false},
		{"refunded to paid", booking.StatusRefunded, booking.StatusPaid, false},
		{"refunded to pending", booking.StatusRefunded, booking.StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []booking.Status{
		booking.StatusPending, booking.StatusPaid, booking.StatusFailed, booking.StatusRefunded,
	} {
		assert.True(t, s.Valid(), s.String())
	}
	assert.False(t, booking.Status("cancelled").Valid())
	assert.False(t, booking.Status("").Valid())
}
