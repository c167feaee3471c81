package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "orderdesk/internal/pkg/auth"
	"orderdesk/internal/server/http/dto"
)

const (
	// IdentityContextKey is a gin context key for the resolved identity.
	IdentityContextKey = "identity"
	authCookieName     = "orderdesk_token"
)

// TokenResolver verifies a session token and returns the identity it
// carries.
type TokenResolver interface {
	ResolveToken(token string) (pkgAuth.Identity, error)
}

// AuthRequired resolves the session before the handler runs. Requests
// without a verifiable token never reach role checks.
func AuthRequired(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
			return
		}

		identity, err := resolver.ResolveToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal error"})
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
