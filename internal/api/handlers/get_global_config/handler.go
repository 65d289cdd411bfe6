package get_global_config

import (
	"net/http"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
)

type Handler struct {
	service GlobalConfigService
	logger  Logger
}

func NewHandler(service GlobalConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /config - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(cfg))
}
