package create_enquiry

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/enquiries"
)

const (
	msgInvalidBody   = "invalid request body"
	msgInvalidFields = "name, a valid email and a message up to 1000 characters are required"
)

type Handler struct {
	service  EnquiryService
	validate *validator.Validate
	logger   Logger
}

func NewHandler(service EnquiryService, logger Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/enquiries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEnquiryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /enquiries - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /enquiries - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, enquiries.ErrInvalidInput):
			h.logger.Warn("POST /enquiries - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /enquiries - Failed to create enquiry: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /enquiries - Enquiry created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
