package models

import (
	"errors"
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown booking status string
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// UpdateStatusRequest moves a booking through its lifecycle
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookingRequest is the admin edit of a booking. Nil fields keep
// their current values.
type UpdateBookingRequest struct {
	Date          *string  `json:"date,omitempty"`      // "2026-06-15"
	StartTime     *string  `json:"startTime,omitempty"` // "14:00"
	DurationHours *int     `json:"durationHours,omitempty"`
	Guests        *int     `json:"guests,omitempty"`
	TotalAmount   *float64 `json:"totalAmount,omitempty"`
}

// ListBookingsRequest filters the admin booking list
type ListBookingsRequest struct {
	YachtID         *int64     `json:"yachtId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a domain filter
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		YachtID:         r.YachtID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse is the booking DTO returned to the admin panel
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	YachtID   int64  `json:"yachtId"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Message       *string `json:"message,omitempty"`

	BookingDate   string  `json:"bookingDate"` // "2026-06-15"
	StartTime     string  `json:"startTime"`   // "14:00"
	EndTime       string  `json:"endTime"`     // "18:00"
	DurationHours int     `json:"durationHours"`
	Guests        int     `json:"guests"`
	EventType     string  `json:"eventType"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse wraps a list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatusCount is one row of the per-status aggregation
type StatusCount struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// StatsResponse feeds the admin dashboard cards
type StatsResponse struct {
	TotalBookings int           `json:"totalBookings"`
	PendingCount  int           `json:"pendingCount"`
	Revenue       float64       `json:"revenue"` // confirmed plus completed
	ByStatus      []StatusCount `json:"byStatus"`
}

// Conversions

// FromDomainBooking converts a domain booking into the DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		YachtID:       b.YachtID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Message:       b.Message,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		DurationHours: b.DurationHours,
		Guests:        b.Guests,
		EventType:     b.EventType,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings into the DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}
	return resp
}

// ToDomainBookingStatus converts and validates a status string
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	switch s {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
