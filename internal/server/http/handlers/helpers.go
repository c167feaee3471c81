package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pkgAuth "orderdesk/internal/pkg/auth"
	"orderdesk/internal/server/http/dto"
	"orderdesk/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated identity from context.
func CurrentIdentity(c *gin.Context) pkgAuth.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return pkgAuth.Identity{}
	}
	identity, _ := val.(pkgAuth.Identity)
	return identity
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.MessageResponse{Message: message})
}

func internalError(c *gin.Context, message string) {
	// Store failures surface as a generic message; details stay in the
	// server log.
	c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: message})
}

// queryInt parses an integer query parameter, falling back to def on
// absence or garbage. Range clamping happens in the use case.
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
