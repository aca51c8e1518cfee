package domain

import "time"

// Identity is the authenticated user as reported by the identity provider.
// The application reads nothing from the token beyond the display email.
type Identity struct {
	// Email is the display email of the signed-in user.
	Email string

	// BearerToken is attached to authenticated requests against the quote API.
	BearerToken string

	// ExpiresAt is when the provider said the token stops being valid.
	// Zero when the provider did not say.
	ExpiresAt time.Time
}

// Session is a signed-in user's session held by the application.
// A nil *Session means nobody is signed in.
type Session struct {
	ID        string
	Identity  Identity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Authenticated reports whether the session carries a live identity at now.
func (s *Session) Authenticated(now time.Time) bool {
	if s == nil || s.Identity.BearerToken == "" {
		return false
	}

	return now.Before(s.ExpiresAt)
}

// Email returns the display email, or "" for a nil session.
func (s *Session) Email() string {
	if s == nil {
		return ""
	}

	return s.Identity.Email
}

// AuthRequest is a sign-in that has been started but not yet completed.
type AuthRequest struct {
	// State is the CSRF token echoed back by the identity provider.
	State string

	// Verifier is the PKCE code verifier for the pending exchange.
	Verifier string

	CreatedAt time.Time
}
