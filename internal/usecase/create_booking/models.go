package create_booking

import (
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/types"
)

// Request describes a new booking submitted from the booking form
type Request struct {
	YachtID       int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       *string // optional note from the customer

	Date          time.Time        // charter date
	StartTime     types.TimeString // requested start, e.g. "14:00"
	DurationHours int              // charter length in hours
	Guests        int
	EventType     string
}

// Response is the created booking
type Response struct {
	ID        int64
	Reference string // e.g. "LY-3F9A21C4", printed in every mail
	YachtID   int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       *string

	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	Guests        int
	EventType     string
	TotalAmount   float64
	Status        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
