//go:build unit
// +build unit

package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransition(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, c := range cases {
		b := &Booking{Status: c.from}
		assert.Equal(t, c.allowed, b.CanTransition(c.to), "%s -> %s", c.from, c.to)
	}
}
