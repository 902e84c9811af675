package update_itinerary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/itineraries"
)

const (
	msgInvalidItineraryID = "invalid itinerary ID"
	msgInvalidBody        = "invalid request body"
	msgNotFound           = "itinerary not found"
)

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

// Handle PUT /api/v1/admin/itineraries/{itineraryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	itineraryID, err := strconv.ParseInt(vars["itineraryId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/itineraries/{id} - Invalid itinerary ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItineraryID)
		return
	}

	var req itineraries.SaveItineraryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/itineraries/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), itineraryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, itineraries.ErrInvalidInput):
			h.logger.Warn("PUT /admin/itineraries/{id} - Rejected: itinerary_id=%d, error=%v",
				itineraryID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, itineraries.ErrItineraryNotFound):
			h.logger.Warn("PUT /admin/itineraries/{id} - Itinerary not found: itinerary_id=%d", itineraryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /admin/itineraries/{id} - Failed to update: itinerary_id=%d, error=%v",
				itineraryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/itineraries/{id} - Itinerary updated: itinerary_id=%d", itineraryID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
