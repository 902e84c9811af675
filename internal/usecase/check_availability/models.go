package check_availability

import (
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/types"
)

// Request describes an availability check for one charter window
type Request struct {
	YachtID       int64            // ID of the yacht
	Date          time.Time        // Charter date (time part ignored)
	StartTime     types.TimeString // Requested start, e.g. "14:00"
	DurationHours int              // Charter length in hours
}

// Response is the result of an availability check
type Response struct {
	YachtID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString // StartTime plus the requested duration

	Available      bool
	Conflict       *Conflict         // earliest overlapping booking, nil when available
	SuggestedStart *types.TimeString // next start worth trying, nil when available
	BookedSlots    []BookedSlot      // the day's occupied windows, start ascending
}

// Conflict describes the booking that blocks the requested window
type Conflict struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string // pending or confirmed
}

// BookedSlot is one already-taken window on the requested date
type BookedSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string
}
