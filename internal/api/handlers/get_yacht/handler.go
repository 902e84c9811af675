package get_yacht

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
	msgNotFound       = "yacht not found"
)

type Handler struct {
	service   CatalogService
	countView bool // public page views bump the counter, admin reads do not
	logger    Logger
}

func NewHandler(service CatalogService, countView bool, logger Logger) *Handler {
	return &Handler{
		service:   service,
		countView: countView,
		logger:    logger,
	}
}

// Handle GET /api/v1/yachts/{yachtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	yachtID, err := strconv.ParseInt(vars["yachtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /yachts/{id} - Invalid yacht ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYachtID)
		return
	}

	result, err := h.service.Get(r.Context(), yachtID, h.countView)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrYachtNotFound):
			h.logger.Warn("GET /yachts/{id} - Yacht not found: yacht_id=%d", yachtID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /yachts/{id} - Failed to get yacht: yacht_id=%d, error=%v", yachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /yachts/{id} - Yacht retrieved: yacht_id=%d", yachtID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
