package auth

import (
	"errors"
	"time"

	"orderdesk/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Identity is the resolved principal of an authenticated request.
// Role is already normalized; an unrecognized claim resolves to
// model.RoleUnknown and is rejected by role-gated operations.
type Identity struct {
	ID   int64
	Name string
	Role model.Role
}

// Strategy issues and verifies signed session tokens.
type Strategy interface {
	IssueToken(identity Identity) (string, error)
	ParseToken(token string) (Identity, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
