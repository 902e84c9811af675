package update_enquiry_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/enquiries"
)

const (
	msgInvalidEnquiryID = "invalid enquiry ID"
	msgInvalidBody      = "invalid request body"
	msgInvalidStatus    = "status must be pending, responded or closed"
	msgNotFound         = "enquiry not found"
)

// UpdateEnquiryStatusRequest HTTP request model
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status"`
}

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

// Handle PATCH /api/v1/admin/enquiries/{enquiryId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	enquiryID, err := strconv.ParseInt(vars["enquiryId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/enquiries/{id}/status - Invalid enquiry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnquiryID)
		return
	}

	var req UpdateEnquiryStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/enquiries/{id}/status - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), enquiryID, req.Status); err != nil {
		switch {
		case errors.Is(err, enquiries.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/enquiries/{id}/status - Invalid status: enquiry_id=%d, status=%s",
				enquiryID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, enquiries.ErrEnquiryNotFound):
			h.logger.Warn("PATCH /admin/enquiries/{id}/status - Enquiry not found: enquiry_id=%d", enquiryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/enquiries/{id}/status - Failed to update: enquiry_id=%d, error=%v",
				enquiryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/enquiries/{id}/status - Enquiry updated: enquiry_id=%d, status=%s",
		enquiryID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
