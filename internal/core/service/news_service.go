package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/simonindia/hr-portal/internal/core/domain"
	"github.com/simonindia/hr-portal/internal/core/ports"
)

// ImageRemover abstracts best-effort deletion of stored post images.
type ImageRemover interface {
	Remove(relPath string) error
}

// NewsService implements create/read/update/delete for news posts,
// including the image-attachment lifecycle tied to each post.
type NewsService struct {
	repo   ports.NewsRepository
	images ImageRemover
	log    zerolog.Logger
}

func NewNewsService(repo ports.NewsRepository, images ImageRemover, log zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, images: images, log: log}
}

// List returns all posts, newest first. No pagination: the collection is
// small and a full scan is acceptable.
func (s *NewsService) List(ctx context.Context) ([]*domain.NewsPost, error) {
	return s.repo.List(ctx)
}

func (s *NewsService) Create(ctx context.Context, input ports.CreatePostInput) (int, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return 0, domain.ErrMissingTitleOrContent
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultCategory
	}

	author := input.Author
	if author == "" {
		author = domain.DefaultAuthor
	}

	post := &domain.NewsPost{
		Title:     title,
		Category:  category,
		Content:   content,
		ImagePath: input.ImagePath,
		Author:    author,
		Timestamp: time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create post")
		return 0, err
	}

	s.log.Info().Int("post_id", id).Str("category", category).Msg("post created")
	return id, nil
}

// Update rewrites title, category, content and timestamp. A new image
// replaces the old one, whose file is removed best-effort; without a new
// image the existing attachment is kept untouched.
func (s *NewsService) Update(ctx context.Context, input ports.UpdatePostInput) error {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return domain.ErrMissingTitleOrContent
	}

	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultCategory
	}

	imagePath := existing.ImagePath
	if input.ImagePath != "" {
		if existing.ImagePath != "" && existing.ImagePath != input.ImagePath {
			s.removeImage(existing.ImagePath)
		}
		imagePath = input.ImagePath
	}

	post := &domain.NewsPost{
		ID:        input.ID,
		Title:     title,
		Category:  category,
		Content:   content,
		ImagePath: imagePath,
		Author:    existing.Author,
		Timestamp: time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, post); err != nil {
		s.log.Error().Err(err).Int("post_id", input.ID).Msg("failed to update post")
		return err
	}

	s.log.Info().Int("post_id", input.ID).Msg("post updated")
	return nil
}

// Delete removes the record and its image file. The file deletion is
// best-effort and never blocks the record deletion.
func (s *NewsService) Delete(ctx context.Context, id int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.ImagePath != "" {
		s.removeImage(existing.ImagePath)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int("post_id", id).Msg("failed to delete post")
		return err
	}

	s.log.Info().Int("post_id", id).Msg("post deleted")
	return nil
}

func (s *NewsService) removeImage(relPath string) {
	if err := s.images.Remove(relPath); err != nil {
		s.log.Warn().Err(err).Str("image_path", relPath).Msg("image cleanup failed")
	}
}
