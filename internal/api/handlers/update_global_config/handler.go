package update_global_config

import (
	"errors"
	"net/http"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
	"github.com/avelis/ARB-BookingService/internal/service/globalconfig"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid time format, expected HH:MM"
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

// Handle PUT /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateGlobalConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cfg, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("PUT /config - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	updated, err := h.service.Update(r.Context(), cfg)
	if err != nil {
		switch {
		case errors.Is(err, globalconfig.ErrInvalidInput):
			h.logger.Warn("PUT /config - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /config - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config - Global config updated")
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}
