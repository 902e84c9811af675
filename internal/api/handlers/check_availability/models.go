package check_availability

import (
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	checkAvailability "github.com/LeesureYatchs/Leisure-Yatchs/internal/usecase/check_availability"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	YachtID   int64  `json:"yachtId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	Available      bool          `json:"available"`
	Conflict       *ConflictInfo `json:"conflict,omitempty"`
	SuggestedStart *string       `json:"suggestedStart,omitempty"`
	BookedSlots    []BookedSlot  `json:"bookedSlots"`
}

// ConflictInfo describes the booking that blocks the requested window
type ConflictInfo struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// BookedSlot is one already-taken window on the requested date
type BookedSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// ToUseCaseRequest builds the use case request from query parameters
func ToUseCaseRequest(yachtID int64, dateStr, startStr string, durationHours int) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		YachtID:       yachtID,
		Date:          date,
		StartTime:     start,
		DurationHours: durationHours,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		YachtID:     resp.YachtID,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Available:   resp.Available,
		BookedSlots: make([]BookedSlot, len(resp.BookedSlots)),
	}

	for i, slot := range resp.BookedSlots {
		out.BookedSlots[i] = BookedSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Status:    slot.Status,
		}
	}

	if resp.Conflict != nil {
		out.Conflict = &ConflictInfo{
			StartTime: resp.Conflict.StartTime.String(),
			EndTime:   resp.Conflict.EndTime.String(),
			Status:    resp.Conflict.Status,
		}
	}

	if resp.SuggestedStart != nil {
		s := resp.SuggestedStart.String()
		out.SuggestedStart = &s
	}

	return out
}
