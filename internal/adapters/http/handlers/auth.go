package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/c3devs/novamuse/internal/adapters/http/middleware"
	"github.com/c3devs/novamuse/internal/adapters/http/views"
	"github.com/c3devs/novamuse/internal/app"
	"github.com/c3devs/novamuse/internal/platform/logging"
)

// AuthHandler handles sign-in and sign-out.
type AuthHandler struct {
	auth   *app.AuthService
	cookie middleware.SessionCookie

	// publicOrigin overrides the origin derived from the request.
	publicOrigin string
}

// AuthHandlerConfig contains dependencies for the auth handler.
type AuthHandlerConfig struct {
	Auth         *app.AuthService
	Cookie       middleware.SessionCookie
	PublicOrigin string
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(cfg AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		auth:         cfg.Auth,
		cookie:       cfg.Cookie,
		publicOrigin: strings.TrimRight(cfg.PublicOrigin, "/"),
	}
}

// origin is the scheme and host the browser sees.
func (h *AuthHandler) origin(c *gin.Context) string {
	if h.publicOrigin != "" {
		return h.publicOrigin
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}

	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	return scheme + "://" + c.Request.Host
}

// Login handles GET /login by sending the browser to the identity provider.
func (h *AuthHandler) Login(c *gin.Context) {
	target, err := h.auth.BeginSignIn(c.Request.Context(), h.origin(c))
	if err != nil {
		h.failed(c, http.StatusInternalServerError, "could not start sign-in", err)
		return
	}

	c.Redirect(http.StatusFound, target)
}

// Callback handles GET /callback, the identity provider's redirect back.
func (h *AuthHandler) Callback(c *gin.Context) {
	if desc := c.Query("error_description"); desc != "" {
		h.failed(c, http.StatusBadRequest, desc, nil)
		return
	}

	if code := c.Query("error"); code != "" {
		h.failed(c, http.StatusBadRequest, code, nil)
		return
	}

	session, err := h.auth.CompleteSignIn(c.Request.Context(), h.origin(c), c.Query("state"), c.Query("code"))
	if err != nil {
		status, _ := MapDomainError(err)
		if status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}

		h.failed(c, status, err.Error(), err)

		return
	}

	h.cookie.Set(c, session)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles POST /logout: the local session goes, then the browser is
// sent to the provider's sign-out page.
func (h *AuthHandler) Logout(c *gin.Context) {
	var id string
	if session := middleware.CurrentSession(c); session != nil {
		id = session.ID
	}

	target := h.auth.SignOut(c.Request.Context(), id, h.origin(c))

	h.cookie.Clear(c)
	c.Redirect(http.StatusSeeOther, target)
}

func (h *AuthHandler) failed(c *gin.Context, status int, message string, err error) {
	logger := logging.FromContext(c.Request.Context())
	if err != nil {
		logger.Warn("sign-in failed", slog.Any("error", err))
	} else {
		logger.Warn("sign-in failed", slog.String("reason", message))
	}

	c.HTML(status, views.Error, views.ErrorPage{
		Header:  header(c),
		Title:   "Sign-in failed",
		Message: message,
	})
}
