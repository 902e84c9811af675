package dashboard_stats

import (
	"net/http"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
)

type Handler struct {
	bookingService BookingService
	catalogService CatalogService
	offerService   OfferService
	enquiryService EnquiryService
	logger         Logger
}

func NewHandler(
	bookingService BookingService,
	catalogService CatalogService,
	offerService OfferService,
	enquiryService EnquiryService,
	logger Logger,
) *Handler {
	return &Handler{
		bookingService: bookingService,
		catalogService: catalogService,
		offerService:   offerService,
		enquiryService: enquiryService,
		logger:         logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.bookingService.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to get booking stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	yachtCount, err := h.catalogService.Count(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to count yachts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	activeOffers, err := h.offerService.CountActive(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to count offers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	openEnquiries, err := h.enquiryService.CountPending(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to count enquiries: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - Stats retrieved: bookings=%d, yachts=%d",
		stats.TotalBookings, yachtCount)
	handlers.RespondJSON(w, http.StatusOK, &DashboardResponse{
		Bookings:      stats,
		YachtCount:    yachtCount,
		ActiveOffers:  activeOffers,
		OpenEnquiries: openEnquiries,
	})
}
