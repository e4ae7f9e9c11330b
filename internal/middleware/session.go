package middleware

import (
	"errors"
	"net/http" // HTTP status codes

	"nanotify/internal/session"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const identityKey = "identity"

// Session resolves the session cookie into an Identity on every request.
// A live session gets its idle window and cookie refreshed (rolling
// 30-minute expiry); everything else proceeds as anonymous.
func Session(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := session.Anonymous
		if token, err := c.Cookie(session.CookieName); err == nil {
			email, err := store.Resolve(c.Request.Context(), token)
			switch {
			case err == nil:
				ident = session.Identity{Email: email, Authenticated: true}
				// Re-issue the cookie so its lifetime rolls with the session.
				c.SetCookie(session.CookieName, token,
					int(session.IdleTimeout.Seconds()), "/", "", false, true)
			case errors.Is(err, session.ErrNoSession):
				// Stale or tampered cookie; carry on anonymous.
			default:
				// Session backend trouble is logged but does not block the
				// request; protected routes will redirect.
				logrus.WithField("error", err.Error()).Error("Session lookup failed")
			}
		}
		c.Set(identityKey, ident) // Bind identity into the request context
		c.Next()                  // Proceed to the next handler
	}
}

// RequireAuth redirects anonymous callers to the home page instead of
// returning a bare 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Identity(c).Authenticated {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity returns the identity bound by the Session middleware, or the
// anonymous identity if the middleware did not run.
func Identity(c *gin.Context) session.Identity {
	if v, ok := c.Get(identityKey); ok {
		if ident, ok := v.(session.Identity); ok {
			return ident
		}
	}
	return session.Anonymous
}
