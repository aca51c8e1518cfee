package oidc

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c3devs/novamuse/internal/platform/config"
)

func authConfig(domain string) *config.AuthConfig {
	return &config.AuthConfig{
		ClientID:     "fake-client-id-123",
		Region:       "us-east-1",
		UserPoolID:   "us-east-1_l7TW7lTEh",
		Domain:       domain,
		Scopes:       "email openid profile",
		RedirectPath: "/callback",
	}
}

const poolIssuer = "https://cognito-idp.us-east-1.amazonaws.com/us-east-1_l7TW7lTEh"

func signedIDToken(t *testing.T, issuer, email string, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, idClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}).SignedString([]byte("not-the-real-key"))
	require.NoError(t, err)

	return token
}

func TestLogoutURL(t *testing.T) {
	p := New(authConfig("https://novamuse.auth.us-east-1.amazoncognito.com"))

	assert.Equal(t,
		"https://novamuse.auth.us-east-1.amazoncognito.com/logout?client_id=fake-client-id-123&logout_uri=https%3A%2F%2Fnovamusequotes.c3devs.com",
		p.LogoutURL("https://novamusequotes.c3devs.com"),
	)
}

func TestAuthCodeURL(t *testing.T) {
	p := New(authConfig("https://novamuse.auth.us-east-1.amazoncognito.com/"))
	verifier := p.NewVerifier()

	raw := p.AuthCodeURL("https://novamusequotes.c3devs.com", "state-1", verifier)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "novamuse.auth.us-east-1.amazoncognito.com", u.Host)
	assert.Equal(t, "/oauth2/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "fake-client-id-123", q.Get("client_id"))
	assert.Equal(t, "https://novamusequotes.c3devs.com/callback", q.Get("redirect_uri"))
	assert.Equal(t, "email openid profile", q.Get("scope"))
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))

	sum := sha256.Sum256([]byte(verifier))
	assert.Equal(t, base64.RawURLEncoding.EncodeToString(sum[:]), q.Get("code_challenge"))
}

func TestNewVerifier_IsFresh(t *testing.T) {
	p := New(authConfig("https://idp.example.com"))

	assert.NotEqual(t, p.NewVerifier(), p.NewVerifier())
}

func TestExchange(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	idToken := signedIDToken(t, poolIssuer, "reader@example.com", exp)

	idp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/token", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "code-1", r.PostForm.Get("code"))
		assert.Equal(t, "verifier-1", r.PostForm.Get("code_verifier"))
		assert.Equal(t, "http://localhost:8080/callback", r.PostForm.Get("redirect_uri"))
		assert.Equal(t, "fake-client-id-123", r.PostForm.Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-1",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		})
	}))
	t.Cleanup(idp.Close)

	p := New(authConfig(idp.URL), WithHTTPClient(idp.Client()))

	identity, err := p.Exchange(context.Background(), "http://localhost:8080", "code-1", "verifier-1")
	require.NoError(t, err)

	assert.Equal(t, "reader@example.com", identity.Email)
	assert.Equal(t, idToken, identity.BearerToken)
	assert.True(t, exp.Equal(identity.ExpiresAt))
}

func TestExchange_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		message string
	}{
		{
			name: "provider error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			},
			message: "token exchange failed",
		},
		{
			name: "missing id token",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"access_token":"a","token_type":"Bearer"}`))
			},
			message: ErrNoIDToken.Error(),
		},
		{
			name: "malformed id token",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"access_token":"a","token_type":"Bearer","id_token":"not.a.jwt"}`))
			},
			message: "reading id_token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idp := httptest.NewServer(tt.handler)
			t.Cleanup(idp.Close)

			p := New(authConfig(idp.URL), WithHTTPClient(idp.Client()))

			identity, err := p.Exchange(context.Background(), "http://localhost:8080", "code", "verifier")

			require.Error(t, err)
			assert.Nil(t, identity)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestExchange_ForeignIssuer(t *testing.T) {
	tests := []struct {
		name   string
		issuer string
	}{
		{name: "another user pool", issuer: "https://cognito-idp.eu-west-1.amazonaws.com/eu-west-1_other"},
		{name: "no issuer", issuer: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idToken := signedIDToken(t, tt.issuer, "reader@example.com", time.Now().Add(time.Hour))

			idp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]any{
					"access_token": "a",
					"token_type":   "Bearer",
					"id_token":     idToken,
				})
			}))
			t.Cleanup(idp.Close)

			p := New(authConfig(idp.URL), WithHTTPClient(idp.Client()))

			identity, err := p.Exchange(context.Background(), "http://localhost:8080", "code", "verifier")
			assert.Nil(t, identity)

			var issuerErr *IssuerError
			require.ErrorAs(t, err, &issuerErr)
			assert.Equal(t, tt.issuer, issuerErr.Issuer)
			assert.Equal(t, poolIssuer, issuerErr.Want)
		})
	}
}
