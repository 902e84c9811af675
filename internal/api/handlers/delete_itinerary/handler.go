package delete_itinerary

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

// Handle DELETE /api/v1/admin/itineraries/{itineraryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	itineraryID, err := strconv.ParseInt(vars["itineraryId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/itineraries/{id} - Invalid itinerary ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItineraryID)
		return
	}

	if err := h.service.Delete(r.Context(), itineraryID); err != nil {
		switch {
		case errors.Is(err, itineraries.ErrItineraryNotFound):
			h.logger.Warn("DELETE /admin/itineraries/{id} - Itinerary not found: itinerary_id=%d", itineraryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/itineraries/{id} - Failed to delete: itinerary_id=%d, error=%v",
				itineraryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/itineraries/{id} - Itinerary deleted: itinerary_id=%d", itineraryID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
