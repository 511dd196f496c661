package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/m1zuki/todo-quota-api/internal/constants"
	apierrors "github.com/m1zuki/todo-quota-api/internal/errors"
	"github.com/m1zuki/todo-quota-api/internal/models"
	"github.com/m1zuki/todo-quota-api/internal/services"
	"github.com/m1zuki/todo-quota-api/internal/utils"
)

// RequireTodo resolves a todo by the id path parameter within the requesting
// user's collection. The check order matters: the id's shape is validated
// before any lookup, so a malformed id is always a 400, while a well-formed
// id that matches nothing — including a todo owned by a different user —
// is a 404. Existence never leaks across users.
func RequireTodo(users *services.UserService) gin.HandlerFunc {
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

		id := c.Param("id")
		if !utils.IsValidID(id) {
			apierrors.BadRequest(c, "the given id is not valid")
			c.Abort()
			return
		}

		var todo *models.Todo
		for i := range user.Todos {
			if user.Todos[i].ID == id {
				todo = &user.Todos[i]
				break
			}
		}
		if todo == nil {
			apierrors.NotFound(c, "the given id does not belong to any todo of the user")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, *user)
		c.Set(constants.ContextKeyTodo, *todo)
		c.Next()
	}
}

// GetTodo retrieves the resolved todo from context
func GetTodo(c *gin.Context) (models.Todo, bool) {
	value, exists := c.Get(constants.ContextKeyTodo)
	if !exists {
		return models.Todo{}, false
	}

	todo, ok := value.(models.Todo)
	return todo, ok
}
