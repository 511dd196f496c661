package constants

// Context keys used to pass resolved entities from middleware to handlers
const (
	ContextKeyUser = "user"
	ContextKeyTodo = "todo"
)

// HeaderUsername identifies the requesting account on todo routes
const HeaderUsername = "username"

// FreeTodoQuota is the maximum number of todos a non-pro account may hold
const FreeTodoQuota = 10
