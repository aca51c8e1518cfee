//go:build integration

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/c3devs/novamuse/internal/adapters/clients"
	"github.com/c3devs/novamuse/internal/adapters/clients/acl"
	novahttp "github.com/c3devs/novamuse/internal/adapters/http"
	"github.com/c3devs/novamuse/internal/adapters/http/handlers"
	"github.com/c3devs/novamuse/internal/adapters/http/middleware"
	"github.com/c3devs/novamuse/internal/adapters/oidc"
	"github.com/c3devs/novamuse/internal/adapters/sqlite"
	"github.com/c3devs/novamuse/internal/app"
	"github.com/c3devs/novamuse/internal/platform/config"
	"github.com/c3devs/novamuse/internal/platform/database"
	"github.com/c3devs/novamuse/internal/ports"
)

const (
	integrationClientID = "novamuse-integration"
	idTokenKey          = "integration-signing-key"
	integrationIssuer   = "https://cognito-idp.us-east-1.amazonaws.com/us-east-1_integration"
)

// storedQuote is one quote held by the fake quote API, in its wire form.
type storedQuote struct {
	QuoteID string `json:"quoteId"`
	Text    string `json:"text"`
	Author  string `json:"author"`
	Genre   string `json:"genre"`
	Source  string `json:"source"`
}

// createCall records one POST /api/quote.
type createCall struct {
	Authorization string
	Body          map[string]string
}

// fakeQuoteAPI serves the quote service endpoints from memory.
type fakeQuoteAPI struct {
	server *httptest.Server

	mu      sync.Mutex
	quotes  []storedQuote
	down    bool
	reject  bool
	browses int
	creates []createCall
}

func newFakeQuoteAPI() *fakeQuoteAPI {
	f := &fakeQuoteAPI{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/quote", f.random)
	mux.HandleFunc("GET /api/quote/authors", f.authors)
	mux.HandleFunc("GET /api/quote/genres", f.genres)
	mux.HandleFunc("GET /api/quote/browse", f.browse)
	mux.HandleFunc("POST /api/quote", f.create)

	f.server = httptest.NewServer(f.guard(mux))

	return f
}

func (f *fakeQuoteAPI) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		down := f.down
		f.mu.Unlock()

		if down {
			http.Error(w, `{"message":"unavailable"}`, http.StatusServiceUnavailable)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (f *fakeQuoteAPI) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.quotes = nil
	f.down = false
	f.reject = false
	f.browses = 0
	f.creates = nil
}

func (f *fakeQuoteAPI) add(q storedQuote) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.quotes = append(f.quotes, q)
}

func (f *fakeQuoteAPI) setDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.down = down
}

func (f *fakeQuoteAPI) setReject(reject bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.reject = reject
}

func (f *fakeQuoteAPI) browseCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.browses
}

func (f *fakeQuoteAPI) createCalls() []createCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.creates)
}

func (f *fakeQuoteAPI) random(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	picked := []storedQuote{}
	if len(f.quotes) > 0 {
		picked = append(picked, f.quotes[0])
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, picked)
}

func (f *fakeQuoteAPI) authors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, f.distinct(func(q storedQuote) string { return q.Author }))
}

func (f *fakeQuoteAPI) genres(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, f.distinct(func(q storedQuote) string { return q.Genre }))
}

func (f *fakeQuoteAPI) distinct(field func(storedQuote) string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := []string{}
	for _, q := range f.quotes {
		if v := field(q); !slices.Contains(values, v) {
			values = append(values, v)
		}
	}

	slices.Sort(values)

	return values
}

func (f *fakeQuoteAPI) browse(w http.ResponseWriter, r *http.Request) {
	author := r.URL.Query().Get("author")
	genre := r.URL.Query().Get("genre")

	f.mu.Lock()
	f.browses++

	items := []storedQuote{}
	for _, q := range f.quotes {
		if (author == "" || q.Author == author) && (genre == "" || q.Genre == genre) {
			items = append(items, q)
		}
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (f *fakeQuoteAPI) create(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"message":"bad body"}`, http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.creates = append(f.creates, createCall{Authorization: r.Header.Get("Authorization"), Body: body})
	reject := f.reject
	f.mu.Unlock()

	if reject {
		http.Error(w, `{"message":"quote rejected"}`, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"quoteId": "q-new"})
}

// fakeIdP answers the hosted UI token endpoint with a signed ID token.
type fakeIdP struct {
	server *httptest.Server

	mu    sync.Mutex
	email string
}

func newFakeIdP() *fakeIdP {
	f := &fakeIdP{email: "reader@example.com"}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", f.token)
	f.server = httptest.NewServer(mux)

	return f
}

func (f *fakeIdP) setEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.email = email
}

func (f *fakeIdP) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil || r.PostForm.Get("code_verifier") == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	f.mu.Lock()
	email := f.email
	f.mu.Unlock()

	idToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":   integrationIssuer,
		"email": email,
		"aud":   integrationClientID,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(idTokenKey))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "server_error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": "access-" + email,
		"token_type":   "Bearer",
		"expires_in":   3600,
		"id_token":     idToken,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// site is the whole application wired as in main, served in-process
// against the fake quote API and identity provider.
type site struct {
	server *httptest.Server
	quotes *fakeQuoteAPI
	idp    *fakeIdP
	db     *sql.DB
	dir    string
}

func newSite(ctx context.Context) (*site, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dir, err := os.MkdirTemp("", "novamuse-integration-*")
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, database.Config{
		Path:         filepath.Join(dir, "sessions.db"),
		MaxOpenConns: 1,
	}, logger)
	if err != nil {
		return nil, err
	}

	quotes := newFakeQuoteAPI()
	idp := newFakeIdP()

	registry := ports.NewHealthRegistry()
	store := sqlite.NewSessionStore(db)
	if err := registry.Register(store); err != nil {
		return nil, err
	}

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     quotes.server.URL + "/api",
		ServiceName: "quote-service",
		Timeout:     2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   1000,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	quoteClient := acl.NewQuoteClient(acl.QuoteClientConfig{Client: httpClient, Logger: logger})
	if err := registry.RegisterOptional(quoteClient); err != nil {
		return nil, err
	}

	authCfg := config.AuthConfig{
		ClientID:       integrationClientID,
		Region:         "us-east-1",
		UserPoolID:     "us-east-1_integration",
		Domain:         idp.server.URL,
		Scopes:         "email openid profile",
		RedirectPath:   "/callback",
		CookieName:     "novamuse_session",
		SessionTTL:     time.Hour,
		AuthRequestTTL: 10 * time.Minute,
	}

	authService := app.NewAuthService(app.AuthServiceConfig{
		Store:          store,
		Identity:       oidc.New(&authCfg),
		Logger:         logger,
		SessionTTL:     authCfg.SessionTTL,
		AuthRequestTTL: authCfg.AuthRequestTTL,
	})

	cookie := middleware.SessionCookie{Name: authCfg.CookieName}

	server := novahttp.New(&config.ServerConfig{MaxRequestSize: config.DefaultMaxRequestSize}, logger)
	novahttp.SetupRouter(server.Engine(), novahttp.RouterConfig{
		Logger:        logger,
		ServiceName:   "novamuse",
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("integration", "none", "now")),
		Pages: handlers.NewPageHandler(app.NewQuoteService(app.QuoteServiceConfig{
			QuoteClient: quoteClient,
			Logger:      logger,
		})),
		Auth: handlers.NewAuthHandler(handlers.AuthHandlerConfig{
			Auth:   authService,
			Cookie: cookie,
		}),
		Sessions: authService,
		Cookie:   cookie,
		Timeout:  5 * time.Second,
	})

	return &site{
		server: httptest.NewServer(server.Engine()),
		quotes: quotes,
		idp:    idp,
		db:     db,
		dir:    dir,
	}, nil
}

func (s *site) Close() {
	s.server.Close()
	s.quotes.server.Close()
	s.idp.server.Close()
	_ = s.db.Close()
	_ = os.RemoveAll(s.dir)
}

// idTokenClaims verifies a token minted by fakeIdP and returns its claims.
func idTokenClaims(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(idTokenKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithAudience(integrationClientID))
	if err != nil {
		return nil, fmt.Errorf("bearer token is not the issued id_token: %w", err)
	}

	return claims, nil
}
