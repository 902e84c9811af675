package create_booking

import (
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	createBooking "github.com/LeesureYatchs/Leisure-Yatchs/internal/usecase/create_booking"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	YachtID       int64   `json:"yachtId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Message       *string `json:"message,omitempty"`

	Date          string `json:"date"`      // "2026-06-15"
	StartTime     string `json:"startTime"` // "14:00"
	DurationHours int    `json:"durationHours"`
	Guests        int    `json:"guests"`
	EventType     string `json:"eventType"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	YachtID   int64  `json:"yachtId"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Message       *string `json:"message,omitempty"`

	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours int     `json:"durationHours"`
	Guests        int     `json:"guests"`
	EventType     string  `json:"eventType"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case request
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		YachtID:       r.YachtID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Message:       r.Message,
		Date:          date,
		StartTime:     start,
		DurationHours: r.DurationHours,
		Guests:        r.Guests,
		EventType:     r.EventType,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		YachtID:       resp.YachtID,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Message:       resp.Message,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		DurationHours: resp.DurationHours,
		Guests:        resp.Guests,
		EventType:     resp.EventType,
		TotalAmount:   resp.TotalAmount,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt,
	}
}
