package domain

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Author    string    `db:"author"` // username of the creator (or last editor)
	CreatedAt time.Time `db:"created_at"`
}

func NewPost(title, content, author string) *Post {
	return &Post{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Author:    author,
		CreatedAt: time.Now(),
	}
}
