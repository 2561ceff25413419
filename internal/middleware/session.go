package middleware

import (
	"context"
	"github.com/google/uuid"
	"net/http"
	"time"
)

// SessionCookieName is name of the cookie carrying the session token
const SessionCookieName = "dashboard_session"

type contextKey int

const (
	contextKeySessionID contextKey = iota
	contextKeyRequestID
	contextKeyNewSession
)

// TokenService creates and verifies session tokens
type TokenService interface {
	CreateToken(sessionID string) (string, error)
	VerifyToken(tokenString string) (string, time.Time, error)
}

// Session gets the session id from the cookie and passes it to the context.
// A token past half of its lifetime is reissued, so a session in use does not expire.
// A request without a valid cookie gets a new session, marked in the context as new
// until the browser sends its cookie back.
func Session(ts TokenService, ttl time.Duration) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				if sessionID, expiresAt, err := ts.VerifyToken(cookie.Value); err == nil {
					if time.Until(expiresAt) < ttl/2 {
						// the current token is still valid when reissue fails
						_ = setSessionCookie(w, ts, sessionID, ttl)
					}
					next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
					return
				}
			}

			sessionID := uuid.NewString()
			if err := setSessionCookie(w, ts, sessionID, ttl); err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithNewSession(r.Context(), sessionID)))
		})
	}
}

func setSessionCookie(w http.ResponseWriter, ts TokenService, sessionID string, ttl time.Duration) error {
	token, err := ts.CreateToken(sessionID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// WithNewSession returns context carrying id of a session issued by the current request
func WithNewSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(WithSessionID(ctx, sessionID), contextKeyNewSession, true)
}

// NewSession reports whether the session of ctx was issued by the current request
func NewSession(ctx context.Context) bool {
	isNew, _ := ctx.Value(contextKeyNewSession).(bool)
	return isNew
}

// WithSessionID returns context carrying session id
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, contextKeySessionID, sessionID)
}

// SessionID extracts session id from context
func SessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(contextKeySessionID).(string)
	return sessionID, ok && sessionID != ""
}
