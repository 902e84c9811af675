package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	bookingRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/booking"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/integrations/mailer"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/bookings/models"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/types"
)

// Service drives the admin side of bookings
type Service struct {
	bookingRepo BookingRepository
	yachtRepo   YachtRepository
	mail        Mailer
	logger      Logger
}

// NewService creates a new bookings service
func NewService(bookingRepo BookingRepository, yachtRepo YachtRepository, mail Mailer, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		yachtRepo:   yachtRepo,
		mail:        mail,
		logger:      logger,
	}
}

// GetByID fetches one booking
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List fetches bookings with flexible filtering. Cancelled and completed
// bookings stay hidden unless IncludeInactive is set.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus moves a booking through its lifecycle. Confirming a
// booking mails the customer, but a mail failure never rolls back the
// status change.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d -> %s", id, req.Status)

	target, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(target) {
		s.logger.Warn("UpdateStatus: booking id=%d cannot go %s -> %s", id, booking.Status, target)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, target); err != nil {
		s.logger.Error("UpdateStatus: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = target

	if target == domain.StatusConfirmed {
		s.sendConfirmation(ctx, booking)
	}

	s.logger.Info("UpdateStatus: booking id=%d is now %s", id, target)
	return models.FromDomainBooking(booking), nil
}

// UpdateDetails applies an admin edit to a booking. The end time is
// recomputed whenever the start or the duration changes.
func (s *Service) UpdateDetails(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateDetails: editing booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateDetails: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateDetails: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateDetails - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeEdited() {
		s.logger.Warn("UpdateDetails: booking id=%d is %s, not editable", id, booking.Status)
		return nil, ErrNotEditable
	}

	if err := applyEdit(booking, req); err != nil {
		s.logger.Warn("UpdateDetails: invalid edit for booking id=%d: %v", id, err)
		return nil, err
	}

	if err := s.bookingRepo.UpdateDetails(ctx, booking); err != nil {
		s.logger.Error("UpdateDetails: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateDetails - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateDetails: booking id=%d updated", id)
	return models.FromDomainBooking(booking), nil
}

// Stats aggregates bookings for the admin dashboard
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	counts, err := s.bookingRepo.StatusCounts(ctx)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	resp := &models.StatsResponse{
		ByStatus: make([]models.StatusCount, 0, len(counts)),
	}

	for _, c := range counts {
		resp.TotalBookings += c.Count
		if c.Status == domain.StatusPending {
			resp.PendingCount = c.Count
		}
		// Pending requests are not money yet
		if c.Status == domain.StatusConfirmed || c.Status == domain.StatusCompleted {
			resp.Revenue += c.Amount
		}
		resp.ByStatus = append(resp.ByStatus, models.StatusCount{
			Status: string(c.Status),
			Count:  c.Count,
			Amount: c.Amount,
		})
	}

	return resp, nil
}

func (s *Service) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	yachtName := ""
	if yacht, err := s.yachtRepo.GetByID(ctx, booking.YachtID); err == nil {
		yachtName = yacht.Name
	} else {
		s.logger.Warn("UpdateStatus: failed to resolve yacht id=%d for confirmation mail: %v",
			booking.YachtID, err)
	}

	if err := s.mail.SendBookingConfirmed(mailer.BookingEmail{
		Reference:     booking.Reference,
		YachtName:     yachtName,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		Date:          booking.BookingDate.Format(domain.DateFormat),
		StartTime:     booking.StartTime.String(),
		EndTime:       booking.EndTime.String(),
		Guests:        booking.Guests,
		EventType:     booking.EventType,
		TotalAmount:   booking.TotalAmount,
	}); err != nil {
		s.logger.Error("UpdateStatus: failed to send confirmation for booking id=%d: %v", booking.ID, err)
	}
}

// applyEdit mutates the booking with the non-nil request fields
func applyEdit(booking *domain.Booking, req *models.UpdateBookingRequest) error {
	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
		booking.BookingDate = date
	}

	if req.StartTime != nil {
		start, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return fmt.Errorf("%w: startTime must be HH:MM", ErrInvalidInput)
		}
		booking.StartTime = start
	}

	if req.DurationHours != nil {
		if *req.DurationHours < domain.MinDurationHours || *req.DurationHours > domain.MaxDurationHours {
			return fmt.Errorf("%w: duration must be %d to %d hours",
				ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
		}
		booking.DurationHours = *req.DurationHours
	}

	if req.Guests != nil {
		if *req.Guests <= 0 {
			return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
		}
		booking.Guests = *req.Guests
	}

	if req.TotalAmount != nil {
		if *req.TotalAmount < 0 {
			return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
		}
		booking.TotalAmount = *req.TotalAmount
	}

	if req.StartTime != nil || req.DurationHours != nil {
		end, err := booking.StartTime.AddMinutes(booking.DurationHours * 60)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time", ErrInvalidInput)
		}
		booking.EndTime = end
	}

	return nil
}
