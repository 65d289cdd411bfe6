package manage_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
	"github.com/avelis/ARB-BookingService/internal/service/schedule"
)

const (
	msgInvalidAssetID     = "invalid asset id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid time format, expected HH:MM"
	msgAssetNotFound      = "asset not found"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/assets/{assetId}/working-hours
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	assetID, err := strconv.ParseInt(vars["assetId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /assets/{id}/working-hours - Invalid asset ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssetID)
		return
	}

	hours, err := h.service.ListWorkingHours(r.Context(), assetID)
	if err != nil {
		h.respondServiceError(w, "GET /assets/{id}/working-hours", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(hours))
}

// HandleUpsert PUT /api/v1/assets/{assetId}/working-hours
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	assetID, err := strconv.ParseInt(vars["assetId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /assets/{id}/working-hours - Invalid asset ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssetID)
		return
	}

	var req UpsertWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /assets/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	wh, err := req.ToDomain(assetID)
	if err != nil {
		h.logger.Warn("PUT /assets/{id}/working-hours - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := h.service.UpsertWorkingHours(r.Context(), wh); err != nil {
		h.respondServiceError(w, "PUT /assets/{id}/working-hours", err)
		return
	}

	h.logger.Info("PUT /assets/{id}/working-hours - asset=%d, weekday=%d saved", assetID, req.Weekday)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(wh))
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, schedule.ErrAssetNotFound):
		h.logger.Warn("%s - Asset not found", route)
		handlers.RespondNotFound(w, msgAssetNotFound)

	case errors.Is(err, schedule.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
