package get_asset_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/internal/service/bookings"
	"github.com/avelis/ARB-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidAssetID = "invalid asset id"
	msgInvalidUnitID  = "invalid bookable unit id"
	msgInvalidDate    = "invalid date format, expected YYYY-MM-DD"
	msgInvalidStatus  = "invalid status filter"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/assets/{assetId}/bookings
// Query params: unitId, startDate, endDate, status, includeInactive (all
// optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	assetID, err := strconv.ParseInt(vars["assetId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /assets/{id}/bookings - Invalid asset ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssetID)
		return
	}

	filter := domain.AssetBookingsFilter{AssetID: assetID}
	query := r.URL.Query()

	if raw := query.Get("unitId"); raw != "" {
		unitID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /assets/{id}/bookings - Invalid unit ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUnitID)
			return
		}
		filter.BookableUnitID = &unitID
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /assets/{id}/bookings - Invalid start date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /assets/{id}/bookings - Invalid end date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		if !status.Valid() {
			h.logger.Warn("GET /assets/{id}/bookings - Invalid status %q", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	filter.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.ListAssetBookings(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /assets/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /assets/{id}/bookings - Failed: asset_id=%d, error=%v", assetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainList(result))
}
