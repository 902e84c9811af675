package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest validates the booking form fields
func validateRequest(req *Request) error {
	if req.YachtID <= 0 {
		return fmt.Errorf("%w: yachtID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.CustomerName)
	if len(name) < domain.MinCustomerNameLength || len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name must be %d to %d characters",
			ErrInvalidInput, domain.MinCustomerNameLength, domain.MaxCustomerNameLength)
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return fmt.Errorf("%w: name must not contain digits", ErrInvalidInput)
		}
	}

	if !emailPattern.MatchString(req.CustomerEmail) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	digits := countDigits(req.CustomerPhone)
	if digits < domain.MinPhoneLength || digits > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must contain %d to %d digits",
			ErrInvalidInput, domain.MinPhoneLength, domain.MaxPhoneLength)
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime must be HH:MM", ErrInvalidInput)
	}

	if req.DurationHours < domain.MinDurationHours || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration must be %d to %d hours",
			ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	if !domain.IsValidEventType(req.EventType) {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, req.EventType)
	}

	return nil
}

// validateDate rejects charters on past dates
func validateDate(date time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	if dateOnly.Before(today) {
		return ErrInvalidDate
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
