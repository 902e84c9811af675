package create_itinerary

import (
	"errors"
	"net/http"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/itineraries"
)

const msgInvalidBody = "invalid request body"

type Handler struct {
	service ItineraryService
	logger  Logger
}

func NewHandler(service ItineraryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/itineraries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req itineraries.SaveItineraryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/itineraries - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, itineraries.ErrInvalidInput):
			h.logger.Warn("POST /admin/itineraries - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/itineraries - Failed to create itinerary: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/itineraries - Itinerary created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
