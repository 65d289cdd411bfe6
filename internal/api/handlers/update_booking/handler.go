package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
	"github.com/avelis/ARB-BookingService/internal/api/middleware"
	admitBooking "github.com/avelis/ARB-BookingService/internal/usecase/admit_booking"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID      = "missing user id"
	msgBookingNotFound    = "booking not found"
	msgUnitNotFound       = "bookable unit not found"
	msgForbidden          = "access denied"
	msgBookingClosed      = "booking is already rejected or canceled"
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

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var verrs *admitBooking.ValidationErrors
		switch {
		case errors.Is(err, admitBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, admitBooking.ErrUnitNotFound):
			h.logger.Warn("PUT /bookings/{id} - Unit not found: unit_id=%d", req.BookableUnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, admitBooking.ErrPermissionDenied):
			h.logger.Warn("PUT /bookings/{id} - Permission denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, admitBooking.ErrEditTerminal):
			h.logger.Warn("PUT /bookings/{id} - Booking closed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingClosed)

		case errors.Is(err, admitBooking.ErrSlotTaken):
			h.logger.Warn("PUT /bookings/{id} - Slot taken: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, admitBooking.ErrAutoAssignAccepted):
			h.logger.Warn("PUT /bookings/{id} - Auto-assign accept refused: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgAutoAssignAccepted)

		case errors.As(err, &verrs):
			h.logger.Warn("PUT /bookings/{id} - Admission refused: booking_id=%d: %v", bookingID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgAdmissionRefused+": "+verrs.Error())

		case errors.Is(err, admitBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.dispatcher.Dispatch(r.Context(), result.Events)

	h.logger.Info("PUT /bookings/{id} - Booking updated: booking_id=%d, status=%s",
		result.Booking.ID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
