package ports

import (
	"context"

	"github.com/mystore/store-client/internal/core/domain"
)

// AuthService exchanges credentials for a session token.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Auth, error)
	Profile(ctx context.Context) (*domain.User, error)
	LoginAndGetProfile(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context) error
}

// AccountService is the backend side of authentication: it verifies
// credentials and issues signed tokens.
type AccountService interface {
	Register(ctx context.Context, email, password, name, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

// UserRepository defines persistence for backend accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
