package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/m1zuki/todo-quota-api/internal/config"
	"github.com/m1zuki/todo-quota-api/internal/handlers"
	"github.com/m1zuki/todo-quota-api/internal/repository"
	"github.com/m1zuki/todo-quota-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// The directory is the only shared state: constructed once here and
	// handed to every service and gate.
	userRepo := repository.NewMemoryUserRepository()
	userService := services.NewUserService(userRepo)
	todoService := services.NewTodoService(userRepo)

	r := handlers.NewRouter(userService, todoService, cfg.AllowOriginList())

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
