package update_yacht

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/catalog"
)

const (
	msgInvalidYachtID = "invalid yacht ID"
	msgInvalidBody    = "invalid request body"
	msgNotFound       = "yacht not found"
)

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

// Handle PUT /api/v1/admin/yachts/{yachtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	yachtID, err := strconv.ParseInt(vars["yachtId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/yachts/{id} - Invalid yacht ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYachtID)
		return
	}

	var req catalog.SaveYachtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/yachts/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), yachtID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/yachts/{id} - Rejected: yacht_id=%d, error=%v", yachtID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, catalog.ErrYachtNotFound):
			h.logger.Warn("PUT /admin/yachts/{id} - Yacht not found: yacht_id=%d", yachtID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /admin/yachts/{id} - Failed to update yacht: yacht_id=%d, error=%v", yachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/yachts/{id} - Yacht updated: yacht_id=%d", yachtID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
