package check_availability

import (
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/types"
)

// findFirstConflict returns the earliest occupying booking overlapping the
// requested window, or nil when the window is free. Relies on the
// repository ordering bookings by start time ascending.
func findFirstConflict(bookings []*domain.Booking, start, end types.TimeString) *domain.Booking {
	for _, b := range bookings {
		if b.IsOccupying() && b.Window().Overlaps(start, end) {
			return b
		}
	}
	return nil
}

// buildBookedSlots converts the day's bookings into response slots,
// preserving the repository's start-ascending order.
func buildBookedSlots(bookings []*domain.Booking) []BookedSlot {
	slots := make([]BookedSlot, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, BookedSlot{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    string(b.Status),
		})
	}
	return slots
}
