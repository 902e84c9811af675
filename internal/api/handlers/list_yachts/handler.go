package list_yachts

import (
	"net/http"

	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/service/catalog"
)

type Handler struct {
	service CatalogService
	admin   bool // admin listings include inactive yachts
	logger  Logger
}

func NewHandler(service CatalogService, admin bool, logger Logger) *Handler {
	return &Handler{
		service: service,
		admin:   admin,
		logger:  logger,
	}
}

// Handle GET /api/v1/yachts (public) and GET /api/v1/admin/yachts
// Query params: category (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &catalog.ListYachtsRequest{IncludeInactive: h.admin}

	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = &category
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /yachts - Failed to list yachts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /yachts - Listed %d yachts (admin=%t)", len(result.Yachts), h.admin)
	handlers.RespondJSON(w, http.StatusOK, result)
}
