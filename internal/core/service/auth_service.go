package service

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
	"github.com/mystore/store-client/internal/metrics"
)

const (
	loginPath   = "/api/v1/auth/login"
	profilePath = "/api/v1/auth/profile"
)

// AuthService logs in against the catalog API and keeps the session token.
// Login goes through api, which must not carry a bearer token; Profile goes
// through authed.
type AuthService struct {
	api    ports.APIClient
	authed ports.APIClient
	tokens ports.TokenStore
	log    zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(api, authed ports.APIClient, tokens ports.TokenStore, log zerolog.Logger) *AuthService {
	return &AuthService{api: api, authed: authed, tokens: tokens, log: log}
}

// Login exchanges credentials for an access token and saves it before
// returning. Nothing is saved when the request fails or the response
// carries no token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Auth, error) {
	var auth domain.Auth
	err := s.api.Post(ctx, loginPath, domain.Credentials{Email: email, Password: password}, &auth)
	if err == nil && auth.AccessToken == "" {
		err = domain.ErrMissingToken
	}
	metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login failed")
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.tokens.SaveToken(ctx, auth.AccessToken); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.logSession(email, auth.AccessToken)
	return &auth, nil
}

// Profile returns the account the current token belongs to.
func (s *AuthService) Profile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.authed.Get(ctx, profilePath, nil, &user); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return &user, nil
}

func (s *AuthService) LoginAndGetProfile(ctx context.Context, email, password string) (*domain.User, error) {
	if _, err := s.Login(ctx, email, password); err != nil {
		return nil, err
	}
	return s.Profile(ctx)
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.tokens.ClearToken(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Msg("logged out")
	return nil
}

// logSession reports who the token was issued to. Tokens that are not JWTs
// are accepted as opaque.
func (s *AuthService) logSession(email, token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		s.log.Info().Str("email", email).Msg("logged in")
		return
	}

	ev := s.log.Info().Str("email", email)
	if sub, ok := claims["sub"]; ok {
		ev = ev.Str("subject", fmt.Sprint(sub))
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ev = ev.Time("expires_at", exp.Time)
	}
	ev.Msg("logged in")
}
