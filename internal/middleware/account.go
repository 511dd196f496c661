package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/m1zuki/todo-quota-api/internal/constants"
	apierrors "github.com/m1zuki/todo-quota-api/internal/errors"
	"github.com/m1zuki/todo-quota-api/internal/models"
	"github.com/m1zuki/todo-quota-api/internal/services"
)

// RequireAccount resolves the requesting account from the username header
// and rejects unknown or missing users.
func RequireAccount(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader(constants.HeaderUsername)
		if username == "" {
			apierrors.BadRequest(c, "username header was not provided")
			c.Abort()
			return
		}

		user, err := users.GetUserByUsername(username)
		if err != nil {
			apierrors.NotFound(c, "user not found")
			c.Abort()
			return
		}

		// Store the resolved user in context for easy access in handlers
		c.Set(constants.ContextKeyUser, *user)
		c.Next()
	}
}

// GetUser retrieves the resolved user from context
func GetUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return models.User{}, false
	}

	user, ok := value.(models.User)
	return user, ok
}
