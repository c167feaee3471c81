package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"orderdesk/internal/domain/model"
)

const defaultTokenTTL = 30 * 24 * time.Hour

type sessionClaims struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTStrategy signs session tokens with HS256. The role travels as a
// claim but is re-normalized on every parse; it is never taken from
// client input anywhere else.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTStrategy builds JWTStrategy with the provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed session token for the identity.
func (s *JWTStrategy) IssueToken(identity Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: identity.ID,
		Name:   identity.Name,
		Role:   identity.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates the token and returns the encoded identity.
func (s *JWTStrategy) ParseToken(token string) (Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		ID:   claims.UserID,
		Name: claims.Name,
		Role: model.ParseRole(claims.Role),
	}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
