package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "orderdesk/internal/domain/errors"
	"orderdesk/internal/domain/model"
	"orderdesk/internal/domain/repository"
	pkgAuth "orderdesk/internal/pkg/auth"
)

// AuthUseCase handles account registration and credential verification.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new account. The role is normalized and must be a
// member of the closed role set.
func (u *AuthUseCase) Register(ctx context.Context, name, email, phone, password, role string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)

	if name == "" || email == "" || phone == "" || password == "" || strings.TrimSpace(role) == "" {
		return nil, fmt.Errorf("%w: all fields are required", domainErrors.ErrValidation)
	}
	if !ValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", domainErrors.ErrValidation)
	}
	if !ValidPhone(phone) {
		return nil, fmt.Errorf("%w: phone must be 10 digits", domainErrors.ErrValidation)
	}
	if len(password) < passwordMinLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domainErrors.ErrValidation, passwordMinLen)
	}

	parsedRole := model.ParseRole(role)
	if !parsedRole.Known() {
		return nil, fmt.Errorf("%w: unknown role", domainErrors.ErrValidation)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, name, email, phone, hash, parsedRole)
	if err != nil {
		return nil, err
	}

	return usr, nil
}

// Login verifies credentials and returns a signed session token. A
// malformed email, an unknown account, and a password mismatch all
// collapse into the same invalid-credentials outcome.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || !ValidEmail(email) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(pkgAuth.Identity{ID: usr.ID, Name: usr.Name, Role: usr.Role})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ResolveToken verifies a session token and returns the identity it
// carries. Only the role stored at login time travels in the token;
// nothing downstream ever trusts a client-supplied role.
func (u *AuthUseCase) ResolveToken(token string) (pkgAuth.Identity, error) {
	if token == "" {
		return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
