package domain

import "github.com/LeesureYatchs/Leisure-Yatchs/pkg/types"

// BookedWindow is an occupied [start, end) interval of a yacht's day,
// shown to customers as "already booked" and used for conflict checks.
type BookedWindow struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    BookingStatus
}

// Overlaps reports whether the window overlaps [start, end). Strict
// inequalities on both sides: a charter ending exactly when another
// starts is not a conflict, so back-to-back bookings are allowed.
func (w BookedWindow) Overlaps(start, end types.TimeString) bool {
	return start.IsBefore(w.EndTime) && end.IsAfter(w.StartTime)
}
