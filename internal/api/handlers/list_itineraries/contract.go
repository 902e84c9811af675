package list_itineraries

import (
	"context"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/itineraries"
)

type ItineraryService interface {
	List(ctx context.Context) (*itineraries.ItineraryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
