package middleware

import (
	"net/http"
	"strings"

	"github.com/daan/miniblog/internal/api/dto"
	"github.com/daan/miniblog/internal/api/session"
	"github.com/daan/miniblog/internal/core/domain"
	"github.com/daan/miniblog/internal/core/service"
	"github.com/gin-gonic/gin"
)

const (
	AuthHeaderKey  = "Authorization"
	UserContextKey = "current_user"
)

// AuthMiddleware guards protected routes. A request authenticates with
// either a session cookie or a Bearer JWT; the resolved user is stored
// in the request context, never in ambient state.
func AuthMiddleware(authService *service.AuthService, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveUser(c, authService, sessions)
		if user == nil {
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{
				Message: "Unauthorized",
			})
			c.Abort()
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

func resolveUser(c *gin.Context, authService *service.AuthService, sessions *session.Manager) *domain.User {
	// Bearer token first, for non-browser clients
	authHeader := c.GetHeader(AuthHeaderKey)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil
		}
		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return nil
		}
		user, err := authService.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			return nil
		}
		return user
	}

	// Otherwise the session cookie
	userID, ok := sessions.UserID(c.Request)
	if !ok {
		return nil
	}
	user, err := authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		return nil
	}
	return user
}

// CurrentUser retrieves the authenticated user from context
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*domain.User)
	return user, ok
}
