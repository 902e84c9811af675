package domain

import "time"

// YachtStatus represents the listing status of a yacht
type YachtStatus string

const (
	YachtActive   YachtStatus = "active"
	YachtInactive YachtStatus = "inactive"
)

// Yacht represents a charter yacht in the fleet
type Yacht struct {
	ID           int64
	Name         string
	Feet         int
	Capacity     int
	Cabins       int
	Bedrooms     int
	Restrooms    int
	HourlyPrice  float64
	MinimumHours int
	Description  *string
	Amenities    []string
	Images       []string
	Category     *string
	Status       YachtStatus
	ViewsCount   int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the yacht accepts new booking requests.
func (y *Yacht) IsBookable() bool {
	return y.Status == YachtActive
}

// FitsGuests returns true if the party size is within capacity.
func (y *Yacht) FitsGuests(guests int) bool {
	return guests >= 1 && guests <= y.Capacity
}

// YachtsFilter narrows yacht listings
type YachtsFilter struct {
	Status   *YachtStatus // filter by status (optional; public listings pass active)
	Category *string      // filter by category (optional)
}
