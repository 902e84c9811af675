package check_availability

import (
	"fmt"
	"time"
)

// validateRequest validates the request fields
func validateRequest(req *Request, now time.Time) error {
	if req.YachtID <= 0 {
		return fmt.Errorf("%w: yachtID must be positive", ErrInvalidInput)
	}

	if req.DurationHours <= 0 {
		return fmt.Errorf("%w: durationHours must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime must be HH:MM", ErrInvalidInput)
	}

	if isDateInPast(req.Date, now) {
		return ErrInvalidDate
	}

	return nil
}

// isDateInPast reports whether the date falls before today
func isDateInPast(date time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(today)
}
