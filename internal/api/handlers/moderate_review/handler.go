package moderate_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/reviews"
)

const (
	msgInvalidReviewID = "invalid review ID"
	msgInvalidBody     = "invalid request body"
	msgInvalidStatus   = "status must be approved or rejected"
	msgNotFound        = "review not found"
)

// ModerateReviewRequest HTTP request model
type ModerateReviewRequest struct {
	Status string `json:"status"`
}

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

// Handle PATCH /api/v1/admin/reviews/{reviewId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reviewID, err := strconv.ParseInt(vars["reviewId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/reviews/{id}/status - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	var req ModerateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reviews/{id}/status - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.Moderate(r.Context(), reviewID, req.Status); err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reviews/{id}/status - Invalid status: review_id=%d, status=%s",
				reviewID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reviews.ErrReviewNotFound):
			h.logger.Warn("PATCH /admin/reviews/{id}/status - Review not found: review_id=%d", reviewID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/reviews/{id}/status - Failed to moderate: review_id=%d, error=%v",
				reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reviews/{id}/status - Review moderated: review_id=%d, status=%s",
		reviewID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
