package models

// User is an account in the directory. Todos belong exclusively to their
// user and are reachable only through the owning User.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Pro      bool   `json:"pro"`
	Todos    []Todo `json:"todos"`
}

// Clone returns a copy of the user whose todo slice does not alias the
// receiver's, so callers never observe concurrent mutations.
func (u User) Clone() User {
	todos := make([]Todo, len(u.Todos))
	copy(todos, u.Todos)
	u.Todos = todos
	return u
}
