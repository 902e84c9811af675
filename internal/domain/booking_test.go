package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, allowed: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, allowed: true},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, allowed: true},
		{name: "confirmed back to pending", from: StatusConfirmed, to: StatusPending, allowed: true},
		{name: "cancelled back to pending", from: StatusCancelled, to: StatusPending, allowed: true},
		{name: "completed back to pending", from: StatusCompleted, to: StatusPending, allowed: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, allowed: false},
		{name: "pending to completed", from: StatusPending, to: StatusCompleted, allowed: false},
		{name: "cancelled to confirmed", from: StatusCancelled, to: StatusConfirmed, allowed: false},
		{name: "same status", from: StatusPending, to: StatusPending, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_IsOccupying(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsOccupying())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsOccupying())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsOccupying())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsOccupying())
}

func TestBookedWindow_Overlaps(t *testing.T) {
	window := BookedWindow{StartTime: "10:00", EndTime: "12:00"}

	// back-to-back is not a conflict
	assert.False(t, window.Overlaps("12:00", "14:00"))
	assert.False(t, window.Overlaps("08:00", "10:00"))

	assert.True(t, window.Overlaps("11:00", "13:00"))
	assert.True(t, window.Overlaps("09:00", "11:00"))
	assert.True(t, window.Overlaps("10:30", "11:30"))
	assert.True(t, window.Overlaps("09:00", "13:00"))
}
