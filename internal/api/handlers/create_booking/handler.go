package create_booking

import (
	"errors"
	"net/http"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
	"github.com/avelis/ARB-BookingService/internal/api/middleware"
	admitBooking "github.com/avelis/ARB-BookingService/internal/usecase/admit_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID      = "missing user id"
	msgUnitNotFound       = "bookable unit not found"
	msgSlotTaken          = "timeslot is already taken by an accepted booking"
	msgAutoAssignAccepted = "auto-assign bookings cannot be accepted before a unit is assigned"
	msgAdmissionRefused   = "booking request violates the asset's calendar rules"
)

type Handler struct {
	useCase    AdmitBookingUseCase
	dispatcher EventDispatcher
	logger     Logger
}

func NewHandler(useCase AdmitBookingUseCase, dispatcher EventDispatcher, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var verrs *admitBooking.ValidationErrors
		switch {
		case errors.Is(err, admitBooking.ErrUnitNotFound):
			h.logger.Warn("POST /bookings - Unit not found: unit_id=%d", req.BookableUnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, admitBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%d, unit_id=%d", userID, req.BookableUnitID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, admitBooking.ErrAutoAssignAccepted):
			h.logger.Warn("POST /bookings - Auto-assign accept refused: user_id=%d, unit_id=%d", userID, req.BookableUnitID)
			handlers.RespondBadRequest(w, msgAutoAssignAccepted)

		case errors.As(err, &verrs):
			h.logger.Warn("POST /bookings - Admission refused: user_id=%d, unit_id=%d: %v", userID, req.BookableUnitID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgAdmissionRefused+": "+verrs.Error())

		case errors.Is(err, admitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, unit_id=%d, error=%v",
				userID, req.BookableUnitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.dispatcher.Dispatch(r.Context(), result.Events)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, status=%s",
		result.Booking.ID, userID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
