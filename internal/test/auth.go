package test

import (
	"fmt"

	pkgAuth "orderdesk/internal/pkg/auth"
)

// HasherStub replaces bcrypt with a transparent encoding.
type HasherStub struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hash, password string) error
}

func (s HasherStub) Hash(password string) (string, error) {
	if s.HashFn != nil {
		return s.HashFn(password)
	}
	return "hash:" + password, nil
}

func (s HasherStub) Compare(hash, password string) error {
	if s.CompareFn != nil {
		return s.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// StrategyStub provides controllable token behaviour.
type StrategyStub struct {
	IssueFn func(identity pkgAuth.Identity) (string, error)
	ParseFn func(token string) (pkgAuth.Identity, error)
}

func (s StrategyStub) IssueToken(identity pkgAuth.Identity) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(identity)
	}
	return fmt.Sprintf("token-%d", identity.ID), nil
}

func (s StrategyStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	var id int64
	if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
		return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
	}
	return pkgAuth.Identity{ID: id}, nil
}

func (s StrategyStub) Name() string { return "stub" }

// TokenResolverStub satisfies the auth middleware contract.
type TokenResolverStub struct {
	Identity pkgAuth.Identity
	Err      error
}

func (s TokenResolverStub) ResolveToken(token string) (pkgAuth.Identity, error) {
	if s.Err != nil {
		return pkgAuth.Identity{}, s.Err
	}
	return s.Identity, nil
}
