package create_itinerary

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/itineraries"
)

type ItineraryService interface {
	Create(ctx context.Context, req *itineraries.SaveItineraryRequest) (*itineraries.ItineraryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
