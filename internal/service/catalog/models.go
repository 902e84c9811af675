package catalog

import (
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// ListYachtsRequest filters the yacht listing
type ListYachtsRequest struct {
	IncludeInactive bool    // admin listings see inactive yachts too
	Category        *string // filter by category (optional)
}

// SaveYachtRequest carries the admin create/update payload
type SaveYachtRequest struct {
	Name         string   `json:"name"`
	Feet         int      `json:"feet"`
	Capacity     int      `json:"capacity"`
	Cabins       int      `json:"cabins"`
	Bedrooms     int      `json:"bedrooms"`
	Restrooms    int      `json:"restrooms"`
	HourlyPrice  float64  `json:"hourlyPrice"`
	MinimumHours int      `json:"minimumHours"`
	Description  *string  `json:"description,omitempty"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
	Category     *string  `json:"category,omitempty"`
	Status       string   `json:"status"`
}

// YachtResponse is the yacht DTO
type YachtResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Feet         int      `json:"feet"`
	Capacity     int      `json:"capacity"`
	Cabins       int      `json:"cabins"`
	Bedrooms     int      `json:"bedrooms"`
	Restrooms    int      `json:"restrooms"`
	HourlyPrice  float64  `json:"hourlyPrice"`
	MinimumHours int      `json:"minimumHours"`
	Description  *string  `json:"description,omitempty"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
	Category     *string  `json:"category,omitempty"`
	Status       string   `json:"status"`
	ViewsCount   int64    `json:"viewsCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// YachtListResponse wraps a list of yachts
type YachtListResponse struct {
	Yachts []YachtResponse `json:"yachts"`
}

func fromDomainYacht(y *domain.Yacht) *YachtResponse {
	if y == nil {
		return nil
	}
	return &YachtResponse{
		ID:           y.ID,
		Name:         y.Name,
		Feet:         y.Feet,
		Capacity:     y.Capacity,
		Cabins:       y.Cabins,
		Bedrooms:     y.Bedrooms,
		Restrooms:    y.Restrooms,
		HourlyPrice:  y.HourlyPrice,
		MinimumHours: y.MinimumHours,
		Description:  y.Description,
		Amenities:    y.Amenities,
		Images:       y.Images,
		Category:     y.Category,
		Status:       string(y.Status),
		ViewsCount:   y.ViewsCount,
		CreatedAt:    y.CreatedAt,
		UpdatedAt:    y.UpdatedAt,
	}
}

func fromDomainYachtList(yachts []*domain.Yacht) *YachtListResponse {
	resp := &YachtListResponse{Yachts: make([]YachtResponse, 0, len(yachts))}
	for _, y := range yachts {
		if dto := fromDomainYacht(y); dto != nil {
			resp.Yachts = append(resp.Yachts, *dto)
		}
	}
	return resp
}
