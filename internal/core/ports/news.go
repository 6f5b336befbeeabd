package ports

import (
	"context"

	"github.com/simonindia/hr-portal/internal/core/domain"
)

// CreatePostInput carries the fields accepted when publishing a news post.
// ImagePath is the already-stored attachment path, or empty for no image.
type CreatePostInput struct {
	Title     string
	Category  string
	Content   string
	ImagePath string
	Author    string
}

// UpdatePostInput carries the fields accepted when editing a news post.
// An empty ImagePath means "keep the current attachment".
type UpdatePostInput struct {
	ID        int
	Title     string
	Category  string
	Content   string
	ImagePath string
}

// NewsService defines use-case operations for news posts.
type NewsService interface {
	List(ctx context.Context) ([]*domain.NewsPost, error)
	Create(ctx context.Context, input CreatePostInput) (int, error)
	Update(ctx context.Context, input UpdatePostInput) error
	Delete(ctx context.Context, id int) error
}

// NewsRepository defines persistence operations for news posts.
type NewsRepository interface {
	// List returns all posts ordered by timestamp descending.
	List(ctx context.Context) ([]*domain.NewsPost, error)
	FindByID(ctx context.Context, id int) (*domain.NewsPost, error)
	// Insert assigns a fresh id, stores the post, and returns the id.
	Insert(ctx context.Context, post *domain.NewsPost) (int, error)
	// Update replaces the stored post; domain.ErrPostNotFound when id is unknown.
	Update(ctx context.Context, post *domain.NewsPost) error
	// Delete removes the post; domain.ErrPostNotFound when id is unknown.
	Delete(ctx context.Context, id int) error
}
