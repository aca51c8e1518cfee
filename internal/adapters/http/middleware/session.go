package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/c3devs/novamuse/internal/domain"
	"github.com/c3devs/novamuse/internal/platform/logging"
)

// ContextKeySession is the gin context key for the resolved session.
const ContextKeySession = "session"

// SessionResolver looks up the live session for a cookie value.
// A nil session with a nil error means nobody is signed in.
type SessionResolver interface {
	Session(ctx context.Context, id string) (*domain.Session, error)
}

// SessionCookie describes the session cookie.
type SessionCookie struct {
	Name   string
	Secure bool
}

// Set writes the cookie for session. It expires with the session.
func (sc SessionCookie) Set(c *gin.Context, session *domain.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, session.ID, maxAge, "/", "", sc.Secure, true)
}

// Clear deletes the cookie.
func (sc SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, "", -1, "/", "", sc.Secure, true)
}

// Session returns middleware that resolves the session cookie and stores
// the result under ContextKeySession. Unknown or expired sessions clear
// the cookie. A failing lookup is logged and the request goes on
// anonymously.
func Session(resolver SessionResolver, cookie SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookie.Name)
		if err != nil || id == "" {
			c.Next()
			return
		}

		session, err := resolver.Session(c.Request.Context(), id)
		if err != nil {
			logging.FromContext(c.Request.Context()).Warn("session lookup failed", slog.Any("error", err))
			c.Next()

			return
		}

		if session == nil {
			cookie.Clear(c)
			c.Next()

			return
		}

		c.Set(ContextKeySession, session)
		c.Next()
	}
}

// CurrentSession returns the signed-in session, or nil.
func CurrentSession(c *gin.Context) *domain.Session {
	if v, ok := c.Get(ContextKeySession); ok {
		if s, ok := v.(*domain.Session); ok {
			return s
		}
	}

	return nil
}

// RequireSession sends anonymous visitors to loginPath instead of running
// the rest of the chain.
func RequireSession(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()

			return
		}

		c.Next()
	}
}
