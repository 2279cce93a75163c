package auth

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

// tokenKey is the single value stored inside the cookie. The cookie never
// carries user data, only the opaque token of a server-side session row.
const tokenKey = "token"

// SessionCookies transports session tokens in an authenticated cookie.
type SessionCookies struct {
	store *sessions.CookieStore
	name  string
}

// NewSessionCookies creates a cookie manager. The secret signs cookie
// contents; ttl bounds the cookie lifetime.
func NewSessionCookies(secret []byte, name string, ttl time.Duration) *SessionCookies {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionCookies{store: store, name: name}
}

// Write stores the session token in the response cookie.
func (c *SessionCookies) Write(w http.ResponseWriter, r *http.Request, token string) error {
	session, _ := c.store.Get(r, c.name)
	session.Values[tokenKey] = token
	return session.Save(r, w)
}

// Read returns the session token from the request cookie, if present.
func (c *SessionCookies) Read(r *http.Request) (string, bool) {
	session, err := c.store.Get(r, c.name)
	if err != nil {
		return "", false
	}
	token, ok := session.Values[tokenKey].(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// Clear expires the cookie. Safe to call when no cookie is present.
func (c *SessionCookies) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := c.store.Get(r, c.name)
	session.Options.MaxAge = -1
	delete(session.Values, tokenKey)
	return session.Save(r, w)
}
