package domain

import (
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a charter reservation of a yacht for a time window
// on a calendar day. StartTime is inclusive, EndTime exclusive; EndTime
// may wrap past midnight for late charters.
type Booking struct {
	ID        int64
	Reference string // public booking code shared with the customer
	YachtID   int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       *string

	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	Guests        int
	EventType     string
	TotalAmount   float64

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the booking blocks its time window for
// availability purposes. Completed charters do not.
func (b *Booking) IsOccupying() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Window returns the booking's occupied interval of the day.
func (b *Booking) Window() BookedWindow {
	return BookedWindow{
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status,
	}
}

// CanBeEdited returns true if an administrator may still change the
// booking's date, time or guest details.
func (b *Booking) CanBeEdited() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status change to target is allowed.
// Any booking can be put back to pending; a pending booking can be
// confirmed or cancelled; a confirmed booking can be completed.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	if target == b.Status {
		return false
	}

	switch target {
	case StatusPending:
		return true
	case StatusConfirmed, StatusCancelled:
		return b.Status == StatusPending
	case StatusCompleted:
		return b.Status == StatusConfirmed
	default:
		return false
	}
}

// BookingsFilter narrows admin booking listings
type BookingsFilter struct {
	YachtID         *int64         // filter by yacht (optional)
	StartDate       *time.Time     // period start (optional)
	EndDate         *time.Time     // period end (optional)
	Status          *BookingStatus // filter by status (optional)
	IncludeInactive bool           // include cancelled/completed bookings
}

// BookingStatusCount is one row of the dashboard status aggregation.
type BookingStatusCount struct {
	Status BookingStatus
	Count  int
	Amount float64
}
