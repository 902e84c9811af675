package check_availability

import (
	"context"
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// BookingRepository defines the booking storage contract
type BookingRepository interface {
	// GetByYachtAndDate returns the yacht's bookings on the date with one
	// of the given statuses, ordered by start time ascending
	GetByYachtAndDate(ctx context.Context, yachtID int64, date time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger defines the logging contract for the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
