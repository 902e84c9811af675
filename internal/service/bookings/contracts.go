package bookings

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/integrations/mailer"
)

// BookingRepository defines the booking storage contract
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdateDetails(ctx context.Context, booking *domain.Booking) error
	StatusCounts(ctx context.Context) ([]*domain.BookingStatusCount, error)
}

// YachtRepository defines the yacht storage contract
type YachtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Yacht, error)
}

// Mailer sends the booking notifications
type Mailer interface {
	SendBookingConfirmed(email mailer.BookingEmail) error
}

// Logger defines the logging contract for the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
