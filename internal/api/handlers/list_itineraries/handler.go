package list_itineraries

import (
	"net/http"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
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

// Handle GET /api/v1/itineraries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /itineraries - Failed to list itineraries: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /itineraries - Listed %d itineraries", len(result.Itineraries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
