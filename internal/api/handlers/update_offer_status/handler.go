package update_offer_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/offers"
)

const (
	msgInvalidOfferID = "invalid offer ID"
	msgInvalidBody    = "invalid request body"
	msgInvalidStatus  = "status must be active or inactive"
	msgNotFound       = "offer not found"
)

// UpdateOfferStatusRequest HTTP request model
type UpdateOfferStatusRequest struct {
	Status string `json:"status"`
}

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

// Handle PATCH /api/v1/admin/offers/{offerId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	offerID, err := strconv.ParseInt(vars["offerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/offers/{id}/status - Invalid offer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	var req UpdateOfferStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/offers/{id}/status - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), offerID, req.Status); err != nil {
		switch {
		case errors.Is(err, offers.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/offers/{id}/status - Invalid status: offer_id=%d, status=%s",
				offerID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, offers.ErrOfferNotFound):
			h.logger.Warn("PATCH /admin/offers/{id}/status - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/offers/{id}/status - Failed to update: offer_id=%d, error=%v",
				offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/offers/{id}/status - Offer updated: offer_id=%d, status=%s",
		offerID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
