package manage_participants

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
	"github.com/avelis/ARB-BookingService/internal/api/middleware"
	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidUserID      = "invalid user id"
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user id"
	msgBookingNotFound    = "booking not found"
	msgNotParticipant     = "user is not a participant of the booking"
	msgForbidden          = "access denied"
	msgBookingClosed      = "booking is already rejected or canceled"
)

type Handler struct {
	service    BookingService
	dispatcher EventDispatcher
	logger     Logger
}

func NewHandler(service BookingService, dispatcher EventDispatcher, logger Logger) *Handler {
	return &Handler{
		service:    service,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// HandleAdd POST /api/v1/bookings/{bookingId}/participants
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/participants - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actorUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/participants - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddParticipantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/participants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := h.service.AddParticipant(r.Context(), bookingID, actorUserID, req.UserID)
	if err != nil {
		h.respondServiceError(w, "POST /bookings/{id}/participants", err)
		return
	}

	h.dispatcher.Dispatch(r.Context(), []domain.Event{*event})

	h.logger.Info("POST /bookings/{id}/participants - user=%d attached to booking id=%d", req.UserID, bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleRemove DELETE /api/v1/bookings/{bookingId}/participants/{userId}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id}/participants/{userId} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id}/participants/{userId} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actorUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{id}/participants/{userId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	event, err := h.service.RemoveParticipant(r.Context(), bookingID, actorUserID, userID)
	if err != nil {
		h.respondServiceError(w, "DELETE /bookings/{id}/participants/{userId}", err)
		return
	}

	h.dispatcher.Dispatch(r.Context(), []domain.Event{*event})

	h.logger.Info("DELETE /bookings/{id}/participants/{userId} - user=%d detached from booking id=%d", userID, bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found", route)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, bookings.ErrNotParticipant):
		h.logger.Warn("%s - Not a participant", route)
		handlers.RespondNotFound(w, msgNotParticipant)

	case errors.Is(err, bookings.ErrPermissionDenied):
		h.logger.Warn("%s - Permission denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, bookings.ErrBookingClosed):
		h.logger.Warn("%s - Booking closed", route)
		handlers.RespondError(w, http.StatusConflict, msgBookingClosed)

	case errors.Is(err, bookings.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
