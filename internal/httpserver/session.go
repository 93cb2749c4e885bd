package httpserver

import (
	"context"
	"net/http"
	"time"

	authdomain "careerbot/backend/internal/domain/auth"
)

type ctxKeySession struct{}

// sessionManager stores the signed session token in a browser cookie.
type sessionManager struct {
	cookieName string
	secure     bool
}

// start hands the client a fresh session cookie. It carries no Max-Age so it
// ends with the browser session; the token inside expires on its own.
func (m sessionManager) start(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// end clears the session cookie.
func (m sessionManager) end(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m sessionManager) token(r *http.Request) string {
	c, err := r.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func withSession(ctx context.Context, session authdomain.Session) context.Context {
	return context.WithValue(ctx, ctxKeySession{}, session)
}

// currentSession returns the verified session attached to the request, if any.
func currentSession(ctx context.Context) (authdomain.Session, bool) {
	session, ok := ctx.Value(ctxKeySession{}).(authdomain.Session)
	if !ok || session.UserID <= 0 {
		return authdomain.Session{}, false
	}
	return session, true
}
