package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
	"github.com/avelis/ARB-BookingService/internal/domain"
	updateStatus "github.com/avelis/ARB-BookingService/internal/usecase/update_booking_status"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgInvalidTransition  = "status transition is not allowed"
	msgSlotTaken          = "timeslot is already taken by an accepted booking"
	msgAutoAssignAccepted = "auto-assign bookings cannot be accepted before a unit is assigned"
)

// Handler moves a booking through its state machine from the admin
// screens. Ownership is not enforced here; the admin routes sit behind
// their own access control.
type Handler struct {
	useCase    UpdateBookingStatusUseCase
	dispatcher EventDispatcher
	logger     Logger
}

func NewHandler(useCase UpdateBookingStatusUseCase, dispatcher EventDispatcher, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateStatus.Request{
		BookingID: &bookingID,
		NewStatus: domain.BookingStatus(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, updateStatus.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid transition: booking_id=%d, status=%s", bookingID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, updateStatus.ErrSlotTaken):
			h.logger.Warn("PATCH /bookings/{id}/status - Slot taken: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, updateStatus.ErrAutoAssignAccepted):
			h.logger.Warn("PATCH /bookings/{id}/status - Auto-assign accept refused: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgAutoAssignAccepted)

		case errors.Is(err, updateStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.dispatcher.Dispatch(r.Context(), result.Events)

	h.logger.Info("PATCH /bookings/{id}/status - Booking id=%d is now %s", result.Booking.ID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
