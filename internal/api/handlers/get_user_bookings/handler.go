package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
	"github.com/avelis/ARB-BookingService/internal/api/middleware"
	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/internal/service/bookings"
	"github.com/avelis/ARB-BookingService/internal/service/bookings/models"
)

const (
	msgMissingUserID = "missing user id"
	msgInvalidStatus = "invalid status filter"
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

// Handle GET /api/v1/users/me/bookings
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var status *domain.BookingStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.BookingStatus(raw)
		if !s.Valid() {
			h.logger.Warn("GET /users/me/bookings - Invalid status %q", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &s
	}

	result, err := h.service.ListUserBookings(r.Context(), userID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/me/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /users/me/bookings - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainList(result))
}
