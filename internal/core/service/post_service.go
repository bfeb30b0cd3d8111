package service

import (
	"context"
	"time"

	"github.com/daan/miniblog/internal/core/domain"
	"github.com/daan/miniblog/internal/core/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost stores a new post with a server-assigned id and timestamp.
func (s *PostService) CreatePost(ctx context.Context, title, content, author string) (*domain.Post, error) {
	post := domain.NewPost(title, content, author)
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, filter repository.PostFilter) ([]*domain.Post, error) {
	return s.postRepo.List(ctx, filter)
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// UpdatePost fully replaces title, content and author and stamps a new
// timestamp. The author becomes the current editor. ErrNotFound covers
// both an unknown id and a replacement that changes nothing.
func (s *PostService) UpdatePost(ctx context.Context, id, title, content, author string) error {
	post := &domain.Post{
		ID:        id,
		Title:     title,
		Content:   content,
		Author:    author,
		CreatedAt: time.Now(),
	}

	updated, err := s.postRepo.Update(ctx, post)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	deleted, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
