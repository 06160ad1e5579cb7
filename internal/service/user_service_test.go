package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestUserServiceRegister_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    " Sam@Example.com ",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Email != "sam@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if user.Username != "sam" || user.DisplayName != "sam" {
		t.Fatalf("expected username derived from email, got %q/%q", user.Username, user.DisplayName)
	}
	if user.PasswordHash == "" || user.PasswordHash == "secret1" {
		t.Fatalf("expected hashed password")
	}
	if _, err := repo.GetByEmail(context.Background(), "sam@example.com"); err != nil {
		t.Fatalf("expected user stored, got %v", err)
	}
}

func TestUserServiceRegister_Validation(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "first", Email: "taken@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	tests := []struct {
		name  string
		input RegisterInput
		want  error
	}{
		{name: "bad email", input: RegisterInput{Email: "nope", Password: "secret1"}, want: ErrInvalidEmail},
		{name: "short password", input: RegisterInput{Username: "alice", Email: "a@example.com", Password: "123"}, want: ErrWeakPassword},
		{name: "bad username", input: RegisterInput{Username: "a b", Email: "a@example.com", Password: "secret1"}, want: ErrInvalidUsername},
		{name: "duplicate email", input: RegisterInput{Email: "TAKEN@example.com", Password: "secret1"}, want: ErrEmailTaken},
		{name: "duplicate username", input: RegisterInput{Username: "first", Email: "b@example.com", Password: "secret1"}, want: ErrUsernameTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(zap.NewNop(), repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{Email: "sam@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Authenticate(ctx, "SAM@example.com", "secret1")
	if err != nil {
		t.Fatalf("expected authentication success, got %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %s, got %s", registered.ID, user.ID)
	}

	if _, err := svc.Authenticate(ctx, "sam@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "ghost@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUserServiceNotConfigured(t *testing.T) {
	var svc *UserService
	if _, err := svc.Register(context.Background(), RegisterInput{}); !errors.Is(err, ErrUserServiceNotConfigured) {
		t.Fatalf("expected ErrUserServiceNotConfigured, got %v", err)
	}
	if _, err := NewUserService(nil, nil).GetByID(context.Background(), "u1"); !errors.Is(err, ErrUserServiceNotConfigured) {
		t.Fatalf("expected ErrUserServiceNotConfigured, got %v", err)
	}
}

func TestUserServiceGetByID_NotFound(t *testing.T) {
	svc := NewUserService(zap.NewNop(), newMockUserRepo())
	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
