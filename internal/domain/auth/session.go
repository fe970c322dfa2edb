package auth

import (
	"context"
	"time"
)

// Session is the authenticated caller for one request. It is built from the
// bearer token by middleware and travels in the request context.
type Session struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired is evaluated per request; there is no background expiry timer.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// ActorID returns the session user id, empty for anonymous contexts.
func ActorID(ctx context.Context) string {
	s, _ := SessionFrom(ctx)
	return s.UserID
}
