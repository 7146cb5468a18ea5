package model

import "time"

type Class struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Subject    string    `json:"subject"`
	Instructor string    `json:"instructor"`
	Schedule   string    `json:"schedule"` // свободный формат, например "Mon,Wed,Fri 10:00-11:00"
	Room       *string   `json:"room"`     // указатель - может быть nil
	CreatedAt  time.Time `json:"created_at"`
}
