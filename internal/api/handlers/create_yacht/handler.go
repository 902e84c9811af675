package create_yacht

import (
	"errors"
	"net/http"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/catalog"
)

const msgInvalidBody = "invalid request body"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/yachts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req catalog.SaveYachtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/yachts - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/yachts - Rejected: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/yachts - Failed to create yacht: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/yachts - Yacht created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
