package create_booking

import (
	"errors"
	"net/http"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	createBooking "github.com/LeesureYatchs/Leisure-Yatchs/internal/usecase/create_booking"
)

const (
	msgInvalidBody      = "invalid request body"
	msgInvalidDateTime  = "invalid date or startTime, expected YYYY-MM-DD and HH:MM"
	msgYachtNotFound    = "yacht not found"
	msgYachtNotBookable = "yacht is not available for booking"
	msgSlotTaken        = "the selected time slot is already booked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput),
			errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrTooManyGuests),
			errors.Is(err, createBooking.ErrBelowMinimumHours):
			h.logger.Warn("POST /bookings - Rejected: yacht_id=%d, error=%v", req.YachtID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrYachtNotFound):
			h.logger.Warn("POST /bookings - Yacht not found: yacht_id=%d", req.YachtID)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, createBooking.ErrYachtNotBookable):
			h.logger.Warn("POST /bookings - Yacht not bookable: yacht_id=%d", req.YachtID)
			handlers.RespondBadRequest(w, msgYachtNotBookable)

		case errors.Is(err, createBooking.ErrTimeSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: yacht_id=%d, date=%s, start=%s",
				req.YachtID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: yacht_id=%d, error=%v", req.YachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, reference=%s", result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
