package auth

import (
	"context"
	"net/http"
	"time"
)

const (
	// SessionCookieName is what the admin panel and the route gate
	// agreed upon long before this backend existed.
	SessionCookieName = "admin_authenticated"

	// SessionTTL - the cookie is not renewed on activity
	SessionTTL = 24 * time.Hour
)

// SessionIssuer turns a verified login into a session marker on the
// response and removes it again on logout. RevokeAll invalidates every
// outstanding session where the implementation keeps server-side state;
// for plain cookies it is a no-op.
type SessionIssuer interface {
	Issue(ctx context.Context, w http.ResponseWriter) error
	Revoke(ctx context.Context, r *http.Request, w http.ResponseWriter) error
	RevokeAll(ctx context.Context) error
}

// SessionValidator decides whether a request carries a valid admin
// session. The route gate treats an error as "not authenticated".
type SessionValidator interface {
	IsAuthenticated(ctx context.Context, r *http.Request) (bool, error)
}

var (
	_ SessionIssuer    = (*CookieIssuer)(nil)
	_ SessionValidator = (*CookiePresenceValidator)(nil)
)

// CookieIssuer sets the bare admin_authenticated=true cookie. There is
// no server-side session table, so every browser holding the cookie is
// equally logged in until its copy expires.
type CookieIssuer struct {
	secure bool
}

func NewCookieIssuer(secure bool) *CookieIssuer {
	return &CookieIssuer{
		secure: secure,
	}
}

func (ci *CookieIssuer) Issue(_ context.Context, w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "true",
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   ci.secure,
	})
	return nil
}

func (ci *CookieIssuer) Revoke(_ context.Context, _ *http.Request, w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ci.secure,
	})
	return nil
}

// RevokeAll cannot reach cookies held by other browsers; a password
// change leaves them valid until they expire on their own.
func (ci *CookieIssuer) RevokeAll(_ context.Context) error {
	return nil
}

// CookiePresenceValidator accepts any request that carries the session
// cookie with a non-empty value. The value itself is not checked - this
// is the contract the admin panel was built against. Swap in the
// tracked-sessions validator for a real check.
type CookiePresenceValidator struct{}

func NewCookiePresenceValidator() *CookiePresenceValidator {
	return &CookiePresenceValidator{}
}

func (v *CookiePresenceValidator) IsAuthenticated(_ context.Context, r *http.Request) (bool, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		// http.ErrNoCookie and malformed cookies both land here
		return false, nil
	}
	return cookie.Value != "", nil
}
