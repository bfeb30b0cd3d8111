package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/daan/miniblog/internal/core/domain"
	"github.com/daan/miniblog/internal/core/repository"
)

func setupPostRepo(t *testing.T) repository.PostRepository {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewPostRepository(db)
}

func TestPostCreateAndFind(t *testing.T) {
	repo := setupPostRepo(t)
	ctx := context.Background()

	post := domain.NewPost("Test Post", "This is a test post.", "alice")
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	found, err := repo.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("failed to find post: %v", err)
	}
	if found == nil {
		t.Fatal("expected post to be found")
	}
	if found.Title != post.Title || found.Content != post.Content || found.Author != post.Author {
		t.Errorf("round trip mismatch: got %+v", found)
	}
	if delta := found.CreatedAt.Sub(post.CreatedAt); delta < -time.Second || delta > time.Second {
		t.Errorf("expected created_at near %v, got %v", post.CreatedAt, found.CreatedAt)
	}
}

func TestPostFindMalformedID(t *testing.T) {
	repo := setupPostRepo(t)
	ctx := context.Background()

	// Malformed identifiers read as absent, never as an error
	found, err := repo.FindByID(ctx, "not-a-valid-identifier")
	if err != nil {
		t.Fatalf("expected soft absence, got error: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for malformed id, got %+v", found)
	}
}

func TestPostList(t *testing.T) {
	repo := setupPostRepo(t)
	ctx := context.Background()

	base := time.Now()
	for i, title := range []string{"first", "second", "third"} {
		post := domain.NewPost(title, "content", "alice")
		post.CreatedAt = base.Add(time.Duration(i) * time.Second)
		if err := repo.Create(ctx, post); err != nil {
			t.Fatalf("failed to create post %q: %v", title, err)
		}
	}

	posts, err := repo.List(ctx, repository.PostFilter{})
	if err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}

	// Insertion order is stable
	for i, title := range []string{"first", "second", "third"} {
		if posts[i].Title != title {
			t.Errorf("posts[%d]: expected title %q, got %q", i, title, posts[i].Title)
		}
	}
}

func TestPostListAuthorFilter(t *testing.T) {
	repo := setupPostRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, domain.NewPost("a", "x", "alice")); err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	if err := repo.Create(ctx, domain.NewPost("b", "y", "bob")); err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	posts, err := repo.List(ctx, repository.PostFilter{Author: "bob"})
	if err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}
	if len(posts) != 1 || posts[0].Author != "bob" {
		t.Errorf("expected exactly bob's post, got %+v", posts)
	}
}

func TestPostUpdate(t *testing.T) {
	repo := setupPostRepo(t)
	ctx := context.Background()

	post := domain.NewPost("Original", "Original content.", "alice")
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	replacement := &domain.Post{
		ID:        post.ID,
		Title:     "Replaced",
		Content:   "Replaced content.",
		Author:    "bob",
		CreatedAt: time.Now(),
	}
	updated, err := repo.Update(ctx, replacement)
	if err != nil {
		t.Fatalf("failed to update post: %v", err)
	}
	if !updated {
		t.Fatal("expected update to report success")
	}

	found, err := repo.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("failed to find post: %v", err)
	}
	if found.Title != "Replaced" || found.Author != "bob" {
		t.Errorf("expected replaced fields, got %+v", found)
	}
}

func TestPostUpdateNoChanges(t *testing.T) {
	repo := setupPostRepo(t)
	ctx := context.Background()

	post := domain.NewPost("Stable", "Nothing changes.", "alice")
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	// Replay the stored values verbatim: nothing changes, so the update
	// reports failure, mirroring a zero modified-count
	stored, err := repo.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("failed to find post: %v", err)
	}

	updated, err := repo.Update(ctx, stored)
	if err != nil {
		t.Fatalf("failed to update post: %v", err)
	}
	if updated {
		t.Error("expected identical replacement to report no changes")
	}
}

func TestPostUpdateMissing(t *testing.T) {
	repo := setupPostRepo(t)
	ctx := context.Background()

	missing := domain.NewPost("Ghost", "Not stored.", "alice")
	updated, err := repo.Update(ctx, missing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated {
		t.Error("expected update of missing post to report failure")
	}

	malformed := &domain.Post{ID: "garbage", Title: "x", Content: "y", Author: "z", CreatedAt: time.Now()}
	updated, err = repo.Update(ctx, malformed)
	if err != nil {
		t.Fatalf("unexpected error for malformed id: %v", err)
	}
	if updated {
		t.Error("expected update with malformed id to report failure")
	}
}

func TestPostDelete(t *testing.T) {
	repo := setupPostRepo(t)
	ctx := context.Background()

	post := domain.NewPost("Doomed", "Short-lived.", "alice")
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	deleted, err := repo.Delete(ctx, post.ID)
	if err != nil {
		t.Fatalf("failed to delete post: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report success")
	}

	found, err := repo.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("failed to find post: %v", err)
	}
	if found != nil {
		t.Error("expected post to be gone after delete")
	}

	deleted, err = repo.Delete(ctx, post.ID)
	if err != nil {
		t.Fatalf("unexpected error on repeated delete: %v", err)
	}
	if deleted {
		t.Error("expected repeated delete to report failure")
	}

	deleted, err = repo.Delete(ctx, "malformed-id")
	if err != nil {
		t.Fatalf("unexpected error for malformed id: %v", err)
	}
	if deleted {
		t.Error("expected delete with malformed id to report failure")
	}
}
