package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/m1zuki/todo-quota-api/internal/constants"
	"github.com/m1zuki/todo-quota-api/internal/middleware"
	"github.com/m1zuki/todo-quota-api/internal/services"
)

// NewRouter wires every route with its gate chain.
func NewRouter(userService *services.UserService, todoService *services.TodoService, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, constants.HeaderUsername)
	r.Use(cors.New(corsConfig))

	userHandler := NewUserHandler(userService)
	todoHandler := NewTodoHandler(todoService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Account routes
	users := r.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", middleware.RequireUserByID(userService), userHandler.GetUser)
		users.PATCH("/:id/pro", middleware.RequireUserByID(userService), userHandler.UpgradeToPro)
	}

	// Todo routes (identified by the username header)
	todos := r.Group("/todos")
	{
		todos.GET("", middleware.RequireAccount(userService), todoHandler.ListTodos)
		todos.POST("", middleware.RequireAccount(userService), middleware.RequireTodoQuota(), todoHandler.CreateTodo)
		todos.PUT("/:id", middleware.RequireTodo(userService), todoHandler.UpdateTodo)
		todos.PATCH("/:id/done", middleware.RequireTodo(userService), todoHandler.CompleteTodo)
		todos.DELETE("/:id", middleware.RequireAccount(userService), middleware.RequireTodo(userService), todoHandler.DeleteTodo)
	}

	return r
}
