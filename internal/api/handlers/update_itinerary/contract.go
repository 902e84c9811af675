package update_itinerary

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/itineraries"
)

type ItineraryService interface {
	Update(ctx context.Context, id int64, req *itineraries.SaveItineraryRequest) (*itineraries.ItineraryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
