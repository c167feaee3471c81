package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "orderdesk/internal/domain/errors"
	"orderdesk/internal/server/http/dto"
	"orderdesk/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			respondMessage(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			respondMessage(c, http.StatusConflict, "Email already in use.")
		default:
			internalError(c, "Registration failed")
		}
		return
	}

	respondMessage(c, http.StatusCreated, "User registered successfully.")
}

// Login handles POST /api/login. Every credential failure collapses to
// the same generic response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			respondMessage(c, http.StatusUnauthorized, "Invalid email or password.")
		default:
			internalError(c, "Login failed")
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	respondMessage(c, http.StatusOK, "Logged in.")
}
