package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	checkAvailability "github.com/LeesureYatchs/Leisure-Yatchs/internal/usecase/check_availability"
)

const (
	msgInvalidYachtID  = "invalid yacht ID"
	msgMissingDate     = "date is required"
	msgMissingStart    = "startTime is required"
	msgMissingDuration = "durationHours is required"
	msgInvalidDuration = "invalid durationHours"
	msgInvalidParams   = "invalid date or startTime, expected YYYY-MM-DD and HH:MM"
	msgInvalidRequest  = "invalid request parameters"
	msgDateInPast      = "date must not be in the past"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/yachts/{yachtId}/availability
// Query params: date (required, YYYY-MM-DD), startTime (required, HH:MM),
// durationHours (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	yachtID, err := strconv.ParseInt(vars["yachtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /yachts/{id}/availability - Invalid yacht ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYachtID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /yachts/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	startStr := r.URL.Query().Get("startTime")
	if startStr == "" {
		h.logger.Warn("GET /yachts/{id}/availability - Missing start time")
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	durationStr := r.URL.Query().Get("durationHours")
	if durationStr == "" {
		h.logger.Warn("GET /yachts/{id}/availability - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationHours, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /yachts/{id}/availability - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	useCaseReq, err := ToUseCaseRequest(yachtID, dateStr, startStr, durationHours)
	if err != nil {
		h.logger.Warn("GET /yachts/{id}/availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /yachts/{id}/availability - Invalid input: yacht_id=%d, error=%v", yachtID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, checkAvailability.ErrInvalidDate):
			h.logger.Warn("GET /yachts/{id}/availability - Date in past: yacht_id=%d", yachtID)
			handlers.RespondBadRequest(w, msgDateInPast)

		default:
			h.logger.Error("GET /yachts/{id}/availability - Failed to check: yacht_id=%d, error=%v", yachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /yachts/{id}/availability - Checked: yacht_id=%d, available=%t", yachtID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
