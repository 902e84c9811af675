package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/domain"
	yachtRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/yacht"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/integrations/mailer"
)

// UseCase creates a booking request from the public booking form
type UseCase struct {
	bookingRepo  BookingRepository
	yachtRepo    YachtRepository
	offerRepo    OfferRepository
	txManager    TransactionManager
	mail         Mailer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new booking creation use case
func NewUseCase(
	bookingRepo BookingRepository,
	yachtRepo YachtRepository,
	offerRepo OfferRepository,
	txManager TransactionManager,
	mail Mailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		yachtRepo:    yachtRepo,
		offerRepo:    offerRepo,
		txManager:    txManager,
		mail:         mail,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the use case. The conflict re-check and the insert happen
// inside one serializable transaction, so two customers racing for the
// same window cannot both end up booked.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: yacht=%d, date=%s, start=%s, hours=%d, guests=%d",
		req.YachtID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours, req.Guests)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	yacht, err := uc.yachtRepo.GetByID(ctx, req.YachtID)
	if err != nil {
		if errors.Is(err, yachtRepo.ErrYachtNotFound) {
			uc.logger.Warn("CreateBooking: yacht id=%d not found", req.YachtID)
			return nil, ErrYachtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get yacht id=%d: %v", req.YachtID, err)
		return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
	}

	if !yacht.IsBookable() {
		uc.logger.Warn("CreateBooking: yacht id=%d is not bookable", req.YachtID)
		return nil, ErrYachtNotBookable
	}

	if !yacht.FitsGuests(req.Guests) {
		uc.logger.Warn("CreateBooking: %d guests exceed capacity %d of yacht id=%d",
			req.Guests, yacht.Capacity, req.YachtID)
		return nil, fmt.Errorf("%w: yacht takes up to %d guests", ErrTooManyGuests, yacht.Capacity)
	}

	if req.DurationHours < yacht.MinimumHours {
		uc.logger.Warn("CreateBooking: %d hours below minimum %d of yacht id=%d",
			req.DurationHours, yacht.MinimumHours, req.YachtID)
		return nil, fmt.Errorf("%w: minimum charter is %d hours", ErrBelowMinimumHours, yacht.MinimumHours)
	}

	endTime, err := req.StartTime.AddMinutes(req.DurationHours * 60)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInvalidInput, err)
	}

	hourlyPrice, err := uc.resolveHourlyPrice(ctx, yacht, req)
	if err != nil {
		return nil, err
	}
	totalAmount := hourlyPrice * float64(req.DurationHours)

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Row locks on the day's bookings hold until commit, so the
		// window seen here is the window that gets inserted against
		bookings, err := uc.bookingRepo.GetByYachtAndDate(txCtx, req.YachtID, req.Date, domain.OccupyingStatuses)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for _, b := range bookings {
			if b.Window().Overlaps(req.StartTime, endTime) {
				uc.logger.Warn("CreateBooking: window %s-%s overlaps booking id=%d (%s-%s)",
					req.StartTime, endTime, b.ID, b.StartTime, b.EndTime)
				return fmt.Errorf("%w: taken %s to %s", ErrTimeSlotTaken, b.StartTime, b.EndTime)
			}
		}

		booking := &domain.Booking{
			Reference:     newReference(),
			YachtID:       req.YachtID,
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Message:       req.Message,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			EndTime:       endTime,
			DurationHours: req.DurationHours,
			Guests:        req.Guests,
			EventType:     req.EventType,
			TotalAmount:   totalAmount,
			Status:        domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d reference=%s", result.ID, result.Reference)

	// Mail failures never fail the booking, the admin panel is the
	// source of truth
	if err := uc.mail.SendBookingRequested(mailer.BookingEmail{
		Reference:     result.Reference,
		YachtName:     yacht.Name,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		Date:          result.BookingDate.Format(domain.DateFormat),
		StartTime:     result.StartTime.String(),
		EndTime:       result.EndTime.String(),
		Guests:        result.Guests,
		EventType:     result.EventType,
		TotalAmount:   result.TotalAmount,
	}); err != nil {
		uc.logger.Error("CreateBooking: failed to send notification for booking id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:            result.ID,
		Reference:     result.Reference,
		YachtID:       result.YachtID,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		Message:       result.Message,
		Date:          result.BookingDate,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		DurationHours: result.DurationHours,
		Guests:        result.Guests,
		EventType:     result.EventType,
		TotalAmount:   result.TotalAmount,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// resolveHourlyPrice applies the newest live offer to the yacht's hourly
// price. Offer lookup failures fall back to the base price.
func (uc *UseCase) resolveHourlyPrice(ctx context.Context, yacht *domain.Yacht, req *Request) (float64, error) {
	offers, err := uc.offerRepo.GetLiveForYacht(ctx, req.YachtID, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get offers for yacht id=%d, using base price: %v",
			req.YachtID, err)
		return yacht.HourlyPrice, nil
	}

	if len(offers) == 0 {
		return yacht.HourlyPrice, nil
	}

	discounted := offers[0].Apply(yacht.HourlyPrice)
	uc.logger.Info("CreateBooking: offer id=%d applied to yacht id=%d, hourly %.2f -> %.2f",
		offers[0].ID, req.YachtID, yacht.HourlyPrice, discounted)
	return discounted, nil
}

// newReference generates a short booking reference like "LY-3F9A21C4"
func newReference() string {
	return "LY-" + strings.ToUpper(uuid.NewString()[:8])
}
