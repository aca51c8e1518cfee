package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/c3devs/novamuse/internal/adapters/http/middleware"
	"github.com/c3devs/novamuse/internal/adapters/http/views"
	"github.com/c3devs/novamuse/internal/app"
	"github.com/c3devs/novamuse/internal/domain"
	"github.com/c3devs/novamuse/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signedIn() *domain.Session {
	return &domain.Session{
		ID:        "sess-1",
		Identity:  domain.Identity{Email: "reader@example.com", BearerToken: "id-token"},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// newEngine returns an engine with the page templates loaded and session
// already resolved.
func newEngine(session *domain.Session) *gin.Engine {
	engine := gin.New()
	engine.SetHTMLTemplate(views.MustTemplates())
	engine.Use(func(c *gin.Context) {
		if session != nil {
			c.Set(middleware.ContextKeySession, session)
		}
	})

	return engine
}

func newPageHandler(t *testing.T) (*PageHandler, *mocks.MockQuoteClient) {
	t.Helper()

	client := mocks.NewMockQuoteClient(t)
	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		QuoteClient: client,
		Logger:      discardLogger(),
	})

	return NewPageHandler(quotes), client
}

func get(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func postForm(engine *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}
