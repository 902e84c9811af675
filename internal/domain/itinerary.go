package domain

import (
	"strings"
	"time"
)

// RouteSeparator joins the ordered stops of a cruise route into the
// stored description, matching how the site renders them.
const RouteSeparator = " → "

// Itinerary is a suggested cruise route sold under a duration label,
// for example "2 Hours" covering Dubai Harbor to Atlantis.
type Itinerary struct {
	ID               int64
	DurationLabel    string
	RouteDescription string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Locations splits the route description into its ordered stops.
func (i *Itinerary) Locations() []string {
	if i.RouteDescription == "" {
		return []string{}
	}
	return strings.Split(i.RouteDescription, RouteSeparator)
}

// JoinRoute builds a route description from ordered stops.
func JoinRoute(locations []string) string {
	return strings.Join(locations, RouteSeparator)
}
