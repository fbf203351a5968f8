package auth

import (
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/lkoehl/propscribe/internal/config"
	"github.com/lkoehl/propscribe/internal/constants"
	"github.com/lkoehl/propscribe/internal/util"
)

// SessionGate issues and verifies the login cookie. There is no server-side
// session store; a request is authenticated iff it carries the cookie with
// the expected value.
//
// By default the cookie value is the plain sentinel. When a session secret is
// configured the value is an HMAC encoding of the sentinel instead, so that
// clients cannot forge the cookie without knowing the secret.
type SessionGate struct {
	cfg *config.Config
	sc  *securecookie.SecureCookie // nil unless a session secret is configured
}

func NewSessionGate(cfg *config.Config) (*SessionGate, error) {
	gate := &SessionGate{cfg: cfg}

	if secret := cfg.SessionSecret(); secret != "" {
		key, err := util.Make32ByteSecret(secret)
		if err != nil {
			return nil, err
		}

		gate.sc = securecookie.New(key, nil)
	}

	return gate, nil
}

// Login checks the password against the configured allow-list. The list is
// re-read from the environment on every call. An empty list rejects every
// password, there is no open-access fallback.
func (g *SessionGate) Login(password string) bool {
	for _, candidate := range g.cfg.Passwords() {
		if candidate == password {
			return true
		}
	}

	return false
}

// IssueCookie attaches the session cookie to the response. The cookie lives
// for 7 days; expiry is the only way a session ends, there is no logout.
func (g *SessionGate) IssueCookie(w http.ResponseWriter) error {
	value := constants.SessionTokenValue

	if g.sc != nil {
		encoded, err := g.sc.Encode(constants.SessionCookieName, value)
		if err != nil {
			return err
		}

		value = encoded
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   constants.SessionCookieMaxAge,
		HttpOnly: true,
		Secure:   !g.cfg.IsDevMode(),
		SameSite: http.SameSiteStrictMode,
	})

	return nil
}

// Verify reports whether the request carries a valid session cookie. It is
// strictly fail-closed: a missing, tampered or otherwise unreadable cookie
// means "not authenticated", never an error.
func (g *SessionGate) Verify(r *http.Request) bool {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil {
		return false
	}

	if g.sc != nil {
		var value string
		if err := g.sc.Decode(constants.SessionCookieName, cookie.Value, &value); err != nil {
			return false
		}

		return value == constants.SessionTokenValue
	}

	return cookie.Value == constants.SessionTokenValue
}
