package yacht_reviews

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
)

const msgInvalidYachtID = "invalid yacht ID"

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/yachts/{yachtId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	yachtID, err := strconv.ParseInt(vars["yachtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /yachts/{id}/reviews - Invalid yacht ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYachtID)
		return
	}

	result, err := h.service.ListForYacht(r.Context(), yachtID)
	if err != nil {
		h.logger.Error("GET /yachts/{id}/reviews - Failed to list reviews: yacht_id=%d, error=%v", yachtID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /yachts/{id}/reviews - Listed %d reviews: yacht_id=%d", len(result.Reviews), yachtID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
