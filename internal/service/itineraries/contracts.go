package itineraries

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// ItineraryRepository defines the itinerary storage contract
type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *domain.Itinerary) (*domain.Itinerary, error)
	List(ctx context.Context) ([]*domain.Itinerary, error)
	Update(ctx context.Context, itinerary *domain.Itinerary) error
	Delete(ctx context.Context, id int64) error
}

// Logger defines the logging contract for the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
