package update_booking

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/bookings/models"
)

type BookingService interface {
	UpdateDetails(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
