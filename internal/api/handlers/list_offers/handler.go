package list_offers

import (
	"net/http"
	"strconv"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/offers"
)

const msgInvalidYachtID = "invalid yachtId"

type Handler struct {
	service    OfferService
	publicOnly bool // public listings hide inactive and expired offers
	logger     Logger
}

func NewHandler(service OfferService, publicOnly bool, logger Logger) *Handler {
	return &Handler{
		service:    service,
		publicOnly: publicOnly,
		logger:     logger,
	}
}

// Handle GET /api/v1/offers (public) and GET /api/v1/admin/offers
// Query params: yachtId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &offers.ListOffersRequest{PublicOnly: h.publicOnly}

	if raw := r.URL.Query().Get("yachtId"); raw != "" {
		yachtID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /offers - Invalid yacht ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYachtID)
			return
		}
		req.YachtID = &yachtID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /offers - Failed to list offers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /offers - Listed %d offers (public=%t)", len(result.Offers), h.publicOnly)
	handlers.RespondJSON(w, http.StatusOK, result)
}
