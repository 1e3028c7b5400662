package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionHeader carries the booking-session identifier. Clients send the
// value back on every request; a request without one gets a fresh session
// minted and echoed in the response so the client can persist it.
const SessionHeader = "X-Session-ID"

type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

// SessionMiddleware resolves the booking session for a request and stores
// its id in the request context.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" || uuid.Validate(sessionID) != nil {
			sessionID = uuid.New().String()
		}

		w.Header().Set(SessionHeader, sessionID)

		ctx := context.WithValue(r.Context(), sessionKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session id resolved by SessionMiddleware.
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKey).(string); ok {
		return id
	}
	return ""
}
