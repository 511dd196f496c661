package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/m1zuki/todo-quota-api/internal/constants"
	apierrors "github.com/m1zuki/todo-quota-api/internal/errors"
)

// RequireTodoQuota rejects todo creation for non-pro users holding the free
// quota of todos. Pro users are exempt unconditionally. The gate expects
// RequireAccount to have run first; a request without a resolved user fails
// rather than slipping past the cap.
func RequireTodoQuota() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			apierrors.BadRequest(c, "user was not resolved for the request")
			c.Abort()
			return
		}

		if !user.Pro && len(user.Todos) >= constants.FreeTodoQuota {
			apierrors.Forbidden(c, "cannot create any todo, limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}
