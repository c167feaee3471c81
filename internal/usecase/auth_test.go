package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "orderdesk/internal/domain/errors"
	"orderdesk/internal/domain/model"
	pkgAuth "orderdesk/internal/pkg/auth"
	"orderdesk/internal/test"
)

func newAuthUseCase() (*AuthUseCase, *test.UserRepositoryStub) {
	users := test.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, test.HasherStub{}, test.StrategyStub{})
	return uc, users
}

func TestRegisterSuccess(t *testing.T) {
	uc, _ := newAuthUseCase()
	password := test.RandomASCIIString(8, 16)

	usr, err := uc.Register(context.Background(), "Alice", "Alice@Example.com", "5551234567", password, "user")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if usr.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", usr.Email)
	}
	if usr.Role != model.RoleUser {
		t.Fatalf("unexpected role %q", usr.Role)
	}
	if usr.PasswordHash != "hash:"+password {
		t.Fatalf("expected hashed password, got %q", usr.PasswordHash)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newAuthUseCase()
	ctx := context.Background()

	if _, err := uc.Register(ctx, "Alice", "alice@example.com", "5551234567", "password1", "user"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := uc.Register(ctx, "Other", "alice@example.com", "5559876543", "password2", "manager"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already-exists error, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	uc, _ := newAuthUseCase()
	ctx := context.Background()

	cases := []struct {
		name     string
		userName string
		email    string
		phone    string
		password string
		role     string
	}{
		{"missing name", "", "alice@example.com", "5551234567", "password1", "user"},
		{"missing email", "Alice", "", "5551234567", "password1", "user"},
		{"missing phone", "Alice", "alice@example.com", "", "password1", "user"},
		{"missing password", "Alice", "alice@example.com", "5551234567", "", "user"},
		{"missing role", "Alice", "alice@example.com", "5551234567", "password1", ""},
		{"invalid email", "Alice", "not-an-email", "5551234567", "password1", "user"},
		{"invalid phone", "Alice", "alice@example.com", "555-1234", "password1", "user"},
		{"short password", "Alice", "alice@example.com", "5551234567", "12345", "user"},
		{"unknown role", "Alice", "alice@example.com", "5551234567", "password1", "admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(ctx, tc.userName, tc.email, tc.phone, tc.password, tc.role)
			if !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRegisterNormalizesRoleCase(t *testing.T) {
	uc, _ := newAuthUseCase()

	usr, err := uc.Register(context.Background(), "Maria", "maria@example.com", "5551112222", "password1", "  Manager ")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if usr.Role != model.RoleManager {
		t.Fatalf("expected manager role, got %q", usr.Role)
	}
}

func TestLoginSuccess(t *testing.T) {
	uc, _ := newAuthUseCase()
	ctx := context.Background()

	if _, err := uc.Register(ctx, "Alice", "alice@example.com", "5551234567", "password1", "user"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	usr, token, err := uc.Login(ctx, "Alice@Example.com", "password1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if usr.Email != "alice@example.com" {
		t.Fatalf("unexpected user %q", usr.Email)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestLoginFailuresCollapse(t *testing.T) {
	uc, _ := newAuthUseCase()
	ctx := context.Background()

	if _, err := uc.Register(ctx, "Alice", "alice@example.com", "5551234567", "password1", "user"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "password1"},
		{"empty password", "alice@example.com", ""},
		{"malformed email", "not-an-email", "password1"},
		{"unknown account", "bob@example.com", "password1"},
		{"wrong password", "alice@example.com", "wrong"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.Login(ctx, tc.email, tc.password)
			if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected invalid-credentials, got %v", err)
			}
		})
	}
}

func TestLoginRepositoryErrorPassesThrough(t *testing.T) {
	uc, users := newAuthUseCase()
	users.Err = errors.New("db down")

	_, _, err := uc.Login(context.Background(), "alice@example.com", "password1")
	if errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatal("infrastructure failure must not look like bad credentials")
	}
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestResolveToken(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, err := uc.ResolveToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token for empty string, got %v", err)
	}

	identity, err := uc.ResolveToken("token-42")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if identity.ID != 42 {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestGetByID(t *testing.T) {
	uc, _ := newAuthUseCase()
	ctx := context.Background()

	usr, err := uc.Register(ctx, "Alice", "alice@example.com", "5551234567", "password1", "user")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := uc.GetByID(ctx, usr.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got.Email != usr.Email {
		t.Fatalf("unexpected user %+v", got)
	}

	if _, err := uc.GetByID(ctx, 999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
