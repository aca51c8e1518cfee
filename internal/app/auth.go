package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/c3devs/novamuse/internal/domain"
	"github.com/c3devs/novamuse/internal/platform/telemetry"
	"github.com/c3devs/novamuse/internal/ports"
)

const (
	defaultSessionTTL     = 8 * time.Hour
	defaultAuthRequestTTL = 10 * time.Minute
)

// AuthService holds who is signed in. The session it hands out is a plain
// value passed to whoever needs it; nothing is kept in globals.
type AuthService struct {
	store          ports.SessionStore
	idp            ports.IdentityProvider
	logger         *slog.Logger
	sessionTTL     time.Duration
	authRequestTTL time.Duration
	now            func() time.Time
	newID          func() string
	purged         metric.Int64Counter
}

// AuthServiceConfig contains dependencies for the auth service.
type AuthServiceConfig struct {
	Store    ports.SessionStore
	Identity ports.IdentityProvider
	Logger   *slog.Logger

	// SessionTTL caps a session's lifetime. The identity provider's token
	// expiry wins when it is earlier.
	SessionTTL time.Duration

	// AuthRequestTTL is how long a started sign-in may take to come back.
	AuthRequestTTL time.Duration
}

// NewAuthService creates the auth service. Panics if Store or Identity is nil.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	if cfg.Store == nil || cfg.Identity == nil {
		panic("AuthService: Store and Identity are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	svc := &AuthService{
		store:          cfg.Store,
		idp:            cfg.Identity,
		logger:         logger,
		sessionTTL:     cfg.SessionTTL,
		authRequestTTL: cfg.AuthRequestTTL,
		now:            time.Now,
		newID:          uuid.NewString,
	}

	if svc.sessionTTL <= 0 {
		svc.sessionTTL = defaultSessionTTL
	}

	if svc.authRequestTTL <= 0 {
		svc.authRequestTTL = defaultAuthRequestTTL
	}

	purged, err := telemetry.Meter().Int64Counter("auth.purged",
		metric.WithDescription("Expired sessions and sign-in requests removed"),
	)
	if err != nil {
		logger.Warn("failed to create purge counter", slog.Any("error", err))
	}

	svc.purged = purged

	return svc
}

// BeginSignIn records a pending sign-in and returns the identity provider
// URL to send the browser to. origin is where the callback comes back.
func (s *AuthService) BeginSignIn(ctx context.Context, origin string) (string, error) {
	req := &domain.AuthRequest{
		State:     s.newID(),
		Verifier:  s.idp.NewVerifier(),
		CreatedAt: s.now(),
	}

	if err := s.store.SaveAuthRequest(ctx, req); err != nil {
		return "", err
	}

	return s.idp.AuthCodeURL(origin, req.State, req.Verifier), nil
}

// CompleteSignIn redeems the callback's state and code for a new session.
// A state is good for one attempt within AuthRequestTTL.
func (s *AuthService) CompleteSignIn(ctx context.Context, origin, state, code string) (*domain.Session, error) {
	if state == "" || code == "" {
		return nil, domain.NewValidationError("", "missing state or code")
	}

	req, err := s.store.TakeAuthRequest(ctx, state)
	if domain.IsNotFound(err) {
		return nil, domain.NewValidationError("state", "unknown or already used sign-in request")
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	if now.Sub(req.CreatedAt) > s.authRequestTTL {
		return nil, domain.NewValidationError("state", "sign-in request expired")
	}

	identity, err := s.idp.Exchange(ctx, origin, code, req.Verifier)
	if err != nil {
		return nil, err
	}

	expiresAt := now.Add(s.sessionTTL)
	if !identity.ExpiresAt.IsZero() && identity.ExpiresAt.Before(expiresAt) {
		expiresAt = identity.ExpiresAt
	}

	session := &domain.Session{
		ID:        s.newID(),
		Identity:  *identity,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user signed in", slog.String("email", identity.Email))

	return session, nil
}

// Session returns the live session for id, or nil when nobody is signed
// in under it.
func (s *AuthService) Session(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, nil //nolint:nilnil // anonymous
	}

	session, err := s.store.GetSession(ctx, id)
	if domain.IsNotFound(err) {
		return nil, nil //nolint:nilnil // anonymous
	}
	if err != nil {
		return nil, err
	}

	if !session.Authenticated(s.now()) {
		return nil, nil //nolint:nilnil // anonymous
	}

	return session, nil
}

// SignOut drops the local session and returns the provider's sign-out URL.
// A failed delete is logged; the user is signed out of the provider anyway.
func (s *AuthService) SignOut(ctx context.Context, id, origin string) string {
	if id != "" {
		if err := s.store.DeleteSession(ctx, id); err != nil {
			s.logger.ErrorContext(ctx, "failed to delete session", slog.Any("error", err))
		}
	}

	return s.idp.LogoutURL(origin)
}

// Purge removes expired sessions and stale sign-ins once.
func (s *AuthService) Purge(ctx context.Context) (int64, error) {
	n, err := s.store.PurgeExpired(ctx, s.now(), s.authRequestTTL)
	if err != nil {
		return 0, err
	}

	if s.purged != nil && n > 0 {
		s.purged.Add(ctx, n, metric.WithAttributes(attribute.String("store", "sqlite")))
	}

	return n, nil
}

// RunJanitor purges on every tick until ctx is done. Errors are logged
// and the loop carries on.
func (s *AuthService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Purge(ctx)
			if err != nil {
				s.logger.ErrorContext(ctx, "session purge failed", slog.Any("error", err))
				continue
			}

			if n > 0 {
				s.logger.DebugContext(ctx, "purged expired sessions", slog.Int64("rows", n))
			}
		}
	}
}
