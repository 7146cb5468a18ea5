package model

import "time"

type Student struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Grade     string    `json:"grade"` // например "10th Grade"
	CreatedAt time.Time `json:"created_at"`
}
