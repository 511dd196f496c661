package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/m1zuki/todo-quota-api/internal/constants"
	apierrors "github.com/m1zuki/todo-quota-api/internal/errors"
	"github.com/m1zuki/todo-quota-api/internal/services"
	"github.com/m1zuki/todo-quota-api/internal/utils"
)

// RequireUserByID resolves a user from the id path parameter. Shape
// validation runs before the lookup, so a malformed id yields 400 and a
// well-formed but unknown id yields 404.
func RequireUserByID(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			apierrors.BadRequest(c, "no user id was provided")
			c.Abort()
			return
		}

		if !utils.IsValidID(id) {
			apierrors.BadRequest(c, "the given id is not valid")
			c.Abort()
			return
		}

		user, err := users.GetUser(id)
		if err != nil {
			apierrors.NotFound(c, "user not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, *user)
		c.Next()
	}
}
