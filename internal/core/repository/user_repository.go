package repository

import (
	"context"

	"github.com/daan/miniblog/internal/core/domain"
)

// UserRepository persists user accounts. Find returns (nil, nil) when
// no matching user exists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, username string) error
}
