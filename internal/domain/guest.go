package domain

import (
	"fmt"
	"time"
)

type Guest struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name" validate:"required"`
	LastName   string    `json:"last_name" validate:"required"`
	Email      string    `json:"email" validate:"required,email"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	IDDocument string    `json:"id_document,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (g *Guest) FullName() string {
	return fmt.Sprintf("%s %s", g.FirstName, g.LastName)
}
