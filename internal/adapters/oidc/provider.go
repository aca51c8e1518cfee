// Package oidc signs users in against the Cognito hosted UI using the
// authorization code flow with PKCE.
package oidc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/c3devs/novamuse/internal/domain"
	"github.com/c3devs/novamuse/internal/platform/config"
)

const (
	authorizePath = "/oauth2/authorize"
	tokenPath     = "/oauth2/token"
	logoutPath    = "/logout"
)

// ErrNoIDToken is returned when the token response carries no id_token.
var ErrNoIDToken = errors.New("token response has no id_token")

// IssuerError is returned when the id_token was issued by another user pool.
type IssuerError struct {
	Issuer string
	Want   string
}

func (e *IssuerError) Error() string {
	return fmt.Sprintf("id_token issued by %q, want %q", e.Issuer, e.Want)
}

// idClaims are the only claims read from the ID token.
type idClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Provider implements ports.IdentityProvider for Cognito.
type Provider struct {
	clientID     string
	clientSecret string
	domain       string
	issuer       string
	scopes       []string
	redirectPath string
	httpClient   *http.Client
	parser       *jwt.Parser
}

// Option configures a Provider.
type Option func(*Provider)

// WithHTTPClient sets the client used for the token exchange.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = c
	}
}

// New creates a provider from the auth configuration.
func New(cfg *config.AuthConfig, opts ...Option) *Provider {
	p := &Provider{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		domain:       strings.TrimSuffix(cfg.Domain, "/"),
		issuer:       cfg.Authority(),
		scopes:       strings.Fields(cfg.Scopes),
		redirectPath: cfg.RedirectPath,
		parser:       jwt.NewParser(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// oauthConfig builds the code-flow config for one origin. The redirect
// URL depends on where the request came in, so it is not shared.
func (p *Provider) oauthConfig(origin string) *oauth2.Config {
	style := oauth2.AuthStyleInParams
	if p.clientSecret != "" {
		style = oauth2.AuthStyleInHeader
	}

	return &oauth2.Config{
		ClientID:     p.clientID,
		ClientSecret: p.clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   p.domain + authorizePath,
			TokenURL:  p.domain + tokenPath,
			AuthStyle: style,
		},
		RedirectURL: strings.TrimSuffix(origin, "/") + p.redirectPath,
		Scopes:      p.scopes,
	}
}

// NewVerifier returns a fresh PKCE code verifier.
func (p *Provider) NewVerifier() string {
	return oauth2.GenerateVerifier()
}

// AuthCodeURL returns the hosted UI URL that starts signing in.
func (p *Provider) AuthCodeURL(origin, state, verifier string) string {
	return p.oauthConfig(origin).AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
}

// Exchange trades code for tokens and returns the identity carried by the
// ID token. The ID token doubles as the quote API bearer token; its
// signature is left to the quote API to check, but it must name the
// configured user pool as issuer.
func (p *Provider) Exchange(ctx context.Context, origin, code, verifier string) (*domain.Identity, error) {
	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	token, err := p.oauthConfig(origin).Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	raw, _ := token.Extra("id_token").(string)
	if raw == "" {
		return nil, ErrNoIDToken
	}

	var claims idClaims
	if _, _, err := p.parser.ParseUnverified(raw, &claims); err != nil {
		return nil, fmt.Errorf("reading id_token: %w", err)
	}

	if claims.Issuer != p.issuer {
		return nil, &IssuerError{Issuer: claims.Issuer, Want: p.issuer}
	}

	identity := &domain.Identity{
		Email:       claims.Email,
		BearerToken: raw,
		ExpiresAt:   token.Expiry,
	}

	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return identity, nil
}

// LogoutURL returns the hosted UI sign-out URL that comes back to origin.
func (p *Provider) LogoutURL(origin string) string {
	q := url.Values{}
	q.Set("client_id", p.clientID)
	q.Set("logout_uri", origin)

	return p.domain + logoutPath + "?" + q.Encode()
}
