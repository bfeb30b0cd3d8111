package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/daan/miniblog/internal/core/domain"
	"github.com/daan/miniblog/internal/core/repository"
	"github.com/google/uuid"
)

type postRepository struct {
	db *DB
}

func NewPostRepository(db *DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO post (id, title, content, author, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID,
		post.Title,
		post.Content,
		post.Author,
		post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	// Identifiers are generated UUIDs; malformed ids read as absent.
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	query := `
		SELECT id, title, content, author, created_at
		FROM post
		WHERE id = ?
	`
	var post domain.Post
	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter repository.PostFilter) ([]*domain.Post, error) {
	query := `
		SELECT id, title, content, author, created_at
		FROM post
	`
	args := []interface{}{}
	if filter.Author != "" {
		query += ` WHERE author = ?`
		args = append(args, filter.Author)
	}
	query += ` ORDER BY created_at, id`

	var posts []*domain.Post
	err := r.db.SelectContext(ctx, &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) (bool, error) {
	if _, err := uuid.Parse(post.ID); err != nil {
		return false, nil
	}

	// The predicate mirrors a single-document replace: no row is touched
	// when the id is unknown or the replacement changes nothing.
	query := `
		UPDATE post
		SET title = ?, content = ?, author = ?, created_at = ?
		WHERE id = ?
		AND (title != ? OR content != ? OR author != ? OR created_at != ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		post.Title,
		post.Content,
		post.Author,
		post.CreatedAt,
		post.ID,
		post.Title,
		post.Content,
		post.Author,
		post.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	query := `DELETE FROM post WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
