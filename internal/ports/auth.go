package ports

import (
	"context"
	"time"

	"github.com/c3devs/novamuse/internal/domain"
)

// SessionStore persists signed-in sessions and pending sign-ins.
type SessionStore interface {
	CreateSession(ctx context.Context, session *domain.Session) error

	// GetSession returns a NotFoundError for unknown or expired sessions.
	GetSession(ctx context.Context, id string) (*domain.Session, error)

	DeleteSession(ctx context.Context, id string) error

	SaveAuthRequest(ctx context.Context, req *domain.AuthRequest) error

	// TakeAuthRequest returns and removes the pending sign-in for state.
	// A second call with the same state returns a NotFoundError.
	TakeAuthRequest(ctx context.Context, state string) (*domain.AuthRequest, error)

	// PurgeExpired removes sessions expired at now and sign-ins started
	// before now minus authRequestTTL. It returns the number of rows removed.
	PurgeExpired(ctx context.Context, now time.Time, authRequestTTL time.Duration) (int64, error)
}

// IdentityProvider is the external OpenID Connect provider.
type IdentityProvider interface {
	// NewVerifier returns a fresh PKCE code verifier.
	NewVerifier() string

	// AuthCodeURL returns where to send the browser to start signing in.
	AuthCodeURL(origin, state, verifier string) string

	// Exchange trades an authorization code for the signed-in identity.
	Exchange(ctx context.Context, origin, code, verifier string) (*domain.Identity, error)

	// LogoutURL returns the provider's sign-out URL that comes back to origin.
	LogoutURL(origin string) string
}
