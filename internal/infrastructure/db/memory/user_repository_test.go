package memory

import (
	"context"
	"testing"

	"github.com/mystore/store-client/internal/core/domain"
)

func TestUserRepository(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	created, err := r.Create(ctx, &domain.User{Email: "admin@mail.com", Role: domain.RoleAdmin, PasswordHash: "h"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id")
	}

	if _, err := r.Create(ctx, &domain.User{Email: "admin@mail.com"}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	byEmail, err := r.FindByEmail(ctx, "admin@mail.com")
	if err != nil || byEmail.ID != created.ID || byEmail.PasswordHash != "h" {
		t.Fatalf("FindByEmail: %+v, %v", byEmail, err)
	}

	byID, err := r.FindByID(ctx, created.ID)
	if err != nil || byID.Email != "admin@mail.com" {
		t.Fatalf("FindByID: %+v, %v", byID, err)
	}

	if _, err := r.FindByEmail(ctx, "nobody@mail.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := r.FindByID(ctx, "42"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
