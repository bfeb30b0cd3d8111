package repository

import (
	"context"

	"github.com/daan/miniblog/internal/core/domain"
)

// PostFilter narrows List results. Zero value means no filtering.
type PostFilter struct {
	Author string
}

// PostRepository persists blog posts. Find returns (nil, nil) when the
// id is unknown or not a valid identifier; Update and Delete report
// absence through their bool result rather than an error.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, filter PostFilter) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
