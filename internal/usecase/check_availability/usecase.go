package check_availability

import (
	"context"
	"fmt"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
)

// UseCase checks whether a charter window on a yacht is free
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new availability check use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the availability check. It is a pure read: no state
// changes, and repeated calls with the same inputs give the same answer
// until the day's bookings change.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: yacht=%d, date=%s, start=%s, hours=%d",
		req.YachtID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours)

	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	endTime, err := req.StartTime.AddMinutes(req.DurationHours * 60)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInvalidInput, err)
	}

	// Only pending and confirmed bookings occupy the calendar
	bookings, err := uc.bookingRepo.GetByYachtAndDate(ctx, req.YachtID, req.Date, domain.OccupyingStatuses)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings for yacht=%d: %v", req.YachtID, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingsRetrieval, err)
	}

	resp := &Response{
		YachtID:     req.YachtID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     endTime,
		BookedSlots: buildBookedSlots(bookings),
	}

	conflict := findFirstConflict(bookings, req.StartTime, endTime)
	if conflict == nil {
		resp.Available = true
		uc.logger.Info("CheckAvailability: yacht=%d is free %s-%s on %s",
			req.YachtID, req.StartTime, endTime, req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// Suggest the first start after the blocking charter plus the
	// turnaround buffer. A single hint, not re-checked against the
	// rest of the day.
	suggested, err := conflict.EndTime.AddMinutes(domain.TurnaroundBufferMinutes)
	if err == nil {
		resp.SuggestedStart = &suggested
	}

	resp.Available = false
	resp.Conflict = &Conflict{
		StartTime: conflict.StartTime,
		EndTime:   conflict.EndTime,
		Status:    string(conflict.Status),
	}

	uc.logger.Info("CheckAvailability: yacht=%d blocked %s-%s by booking id=%d (%s-%s)",
		req.YachtID, req.StartTime, endTime, conflict.ID, conflict.StartTime, conflict.EndTime)

	return resp, nil
}
