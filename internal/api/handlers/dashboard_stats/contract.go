package dashboard_stats

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/bookings/models"
)

type BookingService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type CatalogService interface {
	Count(ctx context.Context) (int, error)
}

type OfferService interface {
	CountActive(ctx context.Context) (int, error)
}

type EnquiryService interface {
	CountPending(ctx context.Context) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
