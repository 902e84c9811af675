package list_enquiries

import (
	"errors"
	"net/http"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/enquiries"
)

const msgInvalidStatus = "invalid enquiry status"

type Handler struct {
	service EnquiryService
	logger  Logger
}

func NewHandler(service EnquiryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/enquiries
// Query params: status (optional: pending, responded, closed)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, enquiries.ErrInvalidInput):
			h.logger.Warn("GET /admin/enquiries - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/enquiries - Failed to list enquiries: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/enquiries - Listed %d enquiries", len(result.Enquiries))
	handlers.RespondJSON(w, http.StatusOK, result)
}
