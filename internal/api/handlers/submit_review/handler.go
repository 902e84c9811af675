package submit_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/reviews"
)

const (
	msgInvalidYachtID = "invalid yacht ID"
	msgInvalidBody    = "invalid request body"
	msgInvalidFields  = "name must be 3 to 50 characters, rating 1 to 5, comment up to 1000 characters"
	msgYachtNotFound  = "yacht not found"
)

type Handler struct {
	service  ReviewService
	validate *validator.Validate
	logger   Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/yachts/{yachtId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	yachtID, err := strconv.ParseInt(vars["yachtId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /yachts/{id}/reviews - Invalid yacht ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYachtID)
		return
	}

	var req SubmitReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /yachts/{id}/reviews - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /yachts/{id}/reviews - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.service.Submit(r.Context(), req.ToServiceRequest(yachtID))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrYachtNotFound):
			h.logger.Warn("POST /yachts/{id}/reviews - Yacht not found: yacht_id=%d", yachtID)
			handlers.RespondNotFound(w, msgYachtNotFound)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /yachts/{id}/reviews - Rejected: yacht_id=%d, error=%v", yachtID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /yachts/{id}/reviews - Failed to submit review: yacht_id=%d, error=%v",
				yachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /yachts/{id}/reviews - Review submitted: id=%d, yacht_id=%d", result.ID, yachtID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
