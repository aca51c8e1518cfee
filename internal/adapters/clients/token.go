package clients

import "context"

type bearerTokenKey struct{}

// WithBearerToken attaches the signed-in user's token to requests made with ctx.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey{}, token)
}

// BearerTokenFromContext returns the token set by WithBearerToken, or "".
func BearerTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(bearerTokenKey{}).(string)
	return token
}
