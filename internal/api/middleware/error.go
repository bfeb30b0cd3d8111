package middleware

import (
	"net/http"

	"github.com/daan/miniblog/internal/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware handles panics and unclaimed handler errors
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				c.JSON(http.StatusInternalServerError, dto.MessageResponse{
					Message: "An unexpected error occurred",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{
				Message: err.Error(),
			})
		}
	}
}
