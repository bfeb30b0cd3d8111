package handler

import (
	"errors"
	"net/http"

	"github.com/daan/miniblog/internal/api/dto"
	"github.com/daan/miniblog/internal/api/session"
	"github.com/daan/miniblog/internal/core/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Message: err.Error(),
		})
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{
				Message: "User already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "Failed to create user",
		})
		return
	}

	c.JSON(http.StatusOK, dto.SignupResponse{
		Message: "User created successfully",
		UserID:  user.ID,
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Message: err.Error(),
		})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{
			Message: "Invalid credentials",
		})
		return
	}

	if err := h.sessions.Establish(c.Writer, c.Request, user); err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "Failed to establish session",
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Login successful",
	})
}

// Logout handles GET /logout. The route sits behind the auth
// middleware, so an anonymous request never reaches this point.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "Failed to clear session",
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Logged out successfully",
	})
}

// Token handles POST /token for non-browser clients
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Message: err.Error(),
		})
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{
			Message: "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   service.TokenExpirationHours * 3600,
	})
}
