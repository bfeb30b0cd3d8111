package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password"` // bcrypt hashed
	CreatedAt time.Time `db:"created_at"`
}

func NewUser(username, hashedPassword string) *User {
	return &User{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}
}

func (u *User) GetID() string {
	return u.ID
}

func (u *User) GetUsername() string {
	return u.Username
}
