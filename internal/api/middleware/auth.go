package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
)

type userIDKey struct{}

// UserIDHeader carries the authenticated user id, set by the gateway in
// front of this service. Authentication itself happens upstream.
const UserIDHeader = "X-User-ID"

// Auth requires a valid user id header and puts the id into the request
// context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing user id header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid user id header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user id from the context.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
