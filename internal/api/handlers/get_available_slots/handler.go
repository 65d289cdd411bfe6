package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
	"github.com/avelis/ARB-BookingService/internal/api/middleware"
	"github.com/avelis/ARB-BookingService/internal/domain"
	getAvailableSlots "github.com/avelis/ARB-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidUnitID  = "invalid bookable unit id"
	msgMissingDate    = "date query parameter is required"
	msgInvalidDate    = "invalid date format, expected YYYY-MM-DD"
	msgUnitNotFound   = "bookable unit not found"
	msgOutsideHorizon = "date is outside the booking horizon"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/units/{unitId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	unitID, err := strconv.ParseInt(vars["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /units/{id}/available-slots - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /units/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /units/{id}/available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Availability is public; the user id only enriches the logs.
	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		UserID:         userID,
		BookableUnitID: unitID,
		Date:           date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrUnitNotFound):
			h.logger.Warn("GET /units/{id}/available-slots - Unit not found: unit_id=%d", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, getAvailableSlots.ErrOutsideHorizon):
			h.logger.Warn("GET /units/{id}/available-slots - Outside horizon: unit_id=%d, date=%s", unitID, dateStr)
			handlers.RespondBadRequest(w, msgOutsideHorizon)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /units/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /units/{id}/available-slots - Failed: unit_id=%d, error=%v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
