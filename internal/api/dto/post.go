package dto

import "time"

// CreatePostRequest represents the post creation request
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdatePostRequest represents the post update request (full replace)
type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// PostResponse represents a post on the wire. The id field is named
// "_id" for compatibility with existing clients.
type PostResponse struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostResponse carries the id of the new post
type CreatePostResponse struct {
	ID string `json:"id"`
}
