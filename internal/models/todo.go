package models

import "time"

type Todo struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Deadline  *time.Time `json:"deadline"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"created_at"`
}
