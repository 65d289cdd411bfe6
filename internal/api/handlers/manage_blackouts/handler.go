package manage_blackouts

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
	msgInvalidBlackoutID  = "invalid blackout id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgAssetNotFound      = "asset not found"
	msgBlackoutNotFound   = "blackout period not found"
	msgAcceptedBookings   = "accepted bookings exist in the blackout range"
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

// HandleCreate POST /api/v1/assets/{assetId}/blackouts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	assetID, err := strconv.ParseInt(vars["assetId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /assets/{id}/blackouts - Invalid asset ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssetID)
		return
	}

	var req BlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assets/{id}/blackouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	period, err := req.ToDomain(0, assetID)
	if err != nil {
		h.logger.Warn("POST /assets/{id}/blackouts - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	created, err := h.service.CreateBlackout(r.Context(), period)
	if err != nil {
		h.respondServiceError(w, "POST /assets/{id}/blackouts", err)
		return
	}

	h.logger.Info("POST /assets/{id}/blackouts - Blackout created: id=%d, asset=%d", created.ID, assetID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// HandleUpdate PUT /api/v1/blackouts/{blackoutId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	blackoutID, err := strconv.ParseInt(vars["blackoutId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /blackouts/{id} - Invalid blackout ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlackoutID)
		return
	}

	var req BlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /blackouts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	period, err := req.ToDomain(blackoutID, 0)
	if err != nil {
		h.logger.Warn("PUT /blackouts/{id} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	updated, err := h.service.UpdateBlackout(r.Context(), period)
	if err != nil {
		h.respondServiceError(w, "PUT /blackouts/{id}", err)
		return
	}

	h.logger.Info("PUT /blackouts/{id} - Blackout updated: id=%d", updated.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// HandleGet GET /api/v1/blackouts/{blackoutId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	blackoutID, err := strconv.ParseInt(vars["blackoutId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /blackouts/{id} - Invalid blackout ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlackoutID)
		return
	}

	period, err := h.service.GetBlackout(r.Context(), blackoutID)
	if err != nil {
		h.respondServiceError(w, "GET /blackouts/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(period))
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, schedule.ErrAssetNotFound):
		h.logger.Warn("%s - Asset not found", route)
		handlers.RespondNotFound(w, msgAssetNotFound)

	case errors.Is(err, schedule.ErrBlackoutNotFound):
		h.logger.Warn("%s - Blackout not found", route)
		handlers.RespondNotFound(w, msgBlackoutNotFound)

	case errors.Is(err, schedule.ErrAcceptedBookings):
		h.logger.Warn("%s - Accepted bookings in range", route)
		handlers.RespondError(w, http.StatusConflict, msgAcceptedBookings)

	case errors.Is(err, schedule.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
