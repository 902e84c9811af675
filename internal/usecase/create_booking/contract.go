package create_booking

import (
	"context"
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/integrations/mailer"
)

// BookingRepository defines the booking storage contract
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByYachtAndDate(ctx context.Context, yachtID int64, date time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// YachtRepository defines the yacht storage contract
type YachtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Yacht, error)
}

// OfferRepository defines the offer storage contract
type OfferRepository interface {
	// GetLiveForYacht returns active offers covering the date, newest first
	GetLiveForYacht(ctx context.Context, yachtID int64, date time.Time) ([]*domain.Offer, error)
}

// TransactionManager runs the conflict re-check and insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Mailer sends the booking notifications
type Mailer interface {
	SendBookingRequested(email mailer.BookingEmail) error
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
