package itineraries

import (
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// SaveItineraryRequest carries the admin create/update payload.
// Locations are the ordered stops of the route.
type SaveItineraryRequest struct {
	DurationLabel string   `json:"durationLabel"`
	Locations     []string `json:"locations"`
}

// ItineraryResponse is the itinerary DTO
type ItineraryResponse struct {
	ID            int64    `json:"id"`
	DurationLabel string   `json:"durationLabel"`
	Locations     []string `json:"locations"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItineraryListResponse wraps a list of itineraries
type ItineraryListResponse struct {
	Itineraries []ItineraryResponse `json:"itineraries"`
}

func fromDomainItinerary(i *domain.Itinerary) *ItineraryResponse {
	if i == nil {
		return nil
	}
	return &ItineraryResponse{
		ID:            i.ID,
		DurationLabel: i.DurationLabel,
		Locations:     i.Locations(),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func fromDomainItineraryList(itineraries []*domain.Itinerary) *ItineraryListResponse {
	resp := &ItineraryListResponse{Itineraries: make([]ItineraryResponse, 0, len(itineraries))}
	for _, i := range itineraries {
		if dto := fromDomainItinerary(i); dto != nil {
			resp.Itineraries = append(resp.Itineraries, *dto)
		}
	}
	return resp
}
