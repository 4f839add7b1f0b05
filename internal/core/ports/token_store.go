package ports

import "context"

// TokenStore holds the single bearer token of the current session.
// GetToken returns an empty string when no token has been saved.
type TokenStore interface {
	SaveToken(ctx context.Context, token string) error
	GetToken(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}
