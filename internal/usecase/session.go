package usecase

import "time"

const (
	SessionCookieName = "session"
	SessionDuration   = 7 * 24 * time.Hour
)

// SessionCookie carries the value and attributes of the session cookie.
type SessionCookie struct {
	Name     string
	Value    string
	MaxAge   time.Duration
	Path     string
	HTTPOnly bool
	Secure   bool
	SameSite string
}

// SessionJar is the request-scoped cookie store the auth workflow writes the
// session to and reads it from.
type SessionJar interface {
	SetCookie(cookie SessionCookie)
	Cookie(name string) string
}
