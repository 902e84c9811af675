package create_offer

import (
	"errors"
	"net/http"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/offers"
)

const (
	msgInvalidBody   = "invalid request body"
	msgYachtNotFound = "yacht not found"
)

type Handler struct {
	service OfferService
	logger  Logger
}

func NewHandler(service OfferService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/offers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req offers.CreateOfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/offers - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, offers.ErrInvalidInput):
			h.logger.Warn("POST /admin/offers - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, offers.ErrYachtNotFound):
			h.logger.Warn("POST /admin/offers - Yacht not found: yacht_id=%d", req.YachtID)
			handlers.RespondNotFound(w, msgYachtNotFound)

		default:
			h.logger.Error("POST /admin/offers - Failed to create offer: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/offers - Offer created: id=%d, yacht_id=%d", result.ID, result.YachtID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
