package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned when the requested date is in the past
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrYachtNotFound is returned when the yacht does not exist
	ErrYachtNotFound = errors.New("yacht not found")

	// ErrYachtNotBookable is returned when the yacht is not accepting bookings
	ErrYachtNotBookable = errors.New("yacht is not available for booking")

	// ErrTooManyGuests is returned when the party exceeds the yacht's capacity
	ErrTooManyGuests = errors.New("guest count exceeds yacht capacity")

	// ErrBelowMinimumHours is returned when the duration is under the yacht's minimum
	ErrBelowMinimumHours = errors.New("duration is below the yacht's minimum hours")

	// ErrTimeSlotTaken is returned when the requested window overlaps an
	// existing pending or confirmed booking
	ErrTimeSlotTaken = errors.New("time slot is already booked")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("usecase: internal error")
)
