package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/c3devs/novamuse/internal/adapters/http/handlers"
	"github.com/c3devs/novamuse/internal/adapters/http/middleware"
	"github.com/c3devs/novamuse/internal/adapters/http/views"
	"github.com/c3devs/novamuse/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds every page and API request.
const DefaultRequestTimeout = 30 * time.Second

// LoginPath is where visitors without a session are sent.
const LoginPath = "/login"

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the base logger; every request gets a child of it.
	Logger *slog.Logger

	// ServiceName names the spans and metrics of the telemetry middleware.
	ServiceName string

	HealthHandler *handlers.HealthHandler
	Pages         *handlers.PageHandler
	Auth          *handlers.AuthHandler

	// Sessions resolves the session cookie on every request.
	Sessions middleware.SessionResolver
	Cookie   middleware.SessionCookie

	// Timeout is the request deadline for site routes. Zero disables it.
	Timeout time.Duration
}

// Route is one entry of the site's route table.
type Route struct {
	Method string
	Path   string

	// SignedIn routes send anonymous visitors to LoginPath.
	SignedIn bool

	Handler gin.HandlerFunc
}

// Routes returns the site's route table. Health endpoints live under /-/
// and are registered separately.
func Routes(cfg RouterConfig) []Route {
	return []Route{
		{Method: "GET", Path: "/", Handler: cfg.Pages.Home},
		{Method: "GET", Path: "/search", Handler: cfg.Pages.Search},
		{Method: "GET", Path: "/search/results", Handler: cfg.Pages.SearchResults},
		{Method: "GET", Path: LoginPath, Handler: cfg.Auth.Login},
		{Method: "GET", Path: "/callback", Handler: cfg.Auth.Callback},
		{Method: "POST", Path: "/logout", Handler: cfg.Auth.Logout},
		{Method: "GET", Path: "/quotes/new", SignedIn: true, Handler: cfg.Pages.NewQuote},
		{Method: "POST", Path: "/quotes", SignedIn: true, Handler: cfg.Pages.AddQuote},
		{Method: "GET", Path: "/api/v1/search", Handler: cfg.Pages.SearchJSON},
	}
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first, seed the request logger
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Session - resolve the session cookie
//
// The request timeout applies to the route table only; probes are not
// bounded by it.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.SetHTMLTemplate(views.MustTemplates())

	engine.Use(middleware.Recovery(cfg.Logger), middleware.RequestID(), middleware.CorrelationID())
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging(), middleware.Session(cfg.Sessions, cfg.Cookie))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.Register(engine)
	}

	site := engine.Group("")
	if cfg.Timeout > 0 {
		site.Use(middleware.Timeout(cfg.Timeout))
	}

	requireSession := middleware.RequireSession(LoginPath)

	for _, r := range Routes(cfg) {
		chain := []gin.HandlerFunc{r.Handler}
		if r.SignedIn {
			chain = append([]gin.HandlerFunc{requireSession}, chain...)
		}

		site.Handle(r.Method, r.Path, chain...)
	}
}
