package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/simonindia/hr-portal/internal/core/domain"
	"github.com/simonindia/hr-portal/internal/core/ports"
)

type stubNewsRepo struct {
	posts  map[int]*domain.NewsPost
	nextID int
}

func newStubNewsRepo() *stubNewsRepo {
	return &stubNewsRepo{posts: make(map[int]*domain.NewsPost)}
}

func clonePost(p *domain.NewsPost) *domain.NewsPost {
	clone := *p
	return &clone
}

func (r *stubNewsRepo) List(_ context.Context) ([]*domain.NewsPost, error) {
	out := make([]*domain.NewsPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *stubNewsRepo) FindByID(_ context.Context, id int) (*domain.NewsPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r *stubNewsRepo) Insert(_ context.Context, post *domain.NewsPost) (int, error) {
	r.nextID++
	post.ID = r.nextID
	r.posts[post.ID] = clonePost(post)
	return post.ID, nil
}

func (r *stubNewsRepo) Update(_ context.Context, post *domain.NewsPost) error {
	if _, ok := r.posts[post.ID]; !ok {
		return domain.ErrPostNotFound
	}
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *stubNewsRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type stubRemover struct {
	removed []string
	err     error
}

func (s *stubRemover) Remove(relPath string) error {
	s.removed = append(s.removed, relPath)
	return s.err
}

func TestNewsService_Create_Validation(t *testing.T) {
	svc := NewNewsService(newStubNewsRepo(), &stubRemover{}, zerolog.Nop())

	cases := []struct {
		name  string
		input ports.CreatePostInput
	}{
		{"empty title", ports.CreatePostInput{Title: "", Content: "body"}},
		{"empty content", ports.CreatePostInput{Title: "Hi", Content: ""}},
		{"whitespace title", ports.CreatePostInput{Title: "   ", Content: "body"}},
		{"whitespace content", ports.CreatePostInput{Title: "Hi", Content: "\n\t "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.input); !errors.Is(err, domain.ErrMissingTitleOrContent) {
				t.Fatalf("expected ErrMissingTitleOrContent, got %v", err)
			}
		})
	}
}

func TestNewsService_Create_Defaults(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, &stubRemover{}, zerolog.Nop())

	id, err := svc.Create(context.Background(), ports.CreatePostInput{Title: " Hi ", Content: " Body "})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	post := repo.posts[id]
	if post.Title != "Hi" || post.Content != "Body" {
		t.Fatalf("expected trimmed fields, got %q / %q", post.Title, post.Content)
	}
	if post.Category != domain.DefaultCategory {
		t.Fatalf("expected default category, got %q", post.Category)
	}
	if post.Author != domain.DefaultAuthor {
		t.Fatalf("expected default author, got %q", post.Author)
	}
	if post.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
}

func TestNewsService_Create_IDsIncrease(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, &stubRemover{}, zerolog.Nop())

	var last int
	for i := 0; i < 5; i++ {
		id, err := svc.Create(context.Background(), ports.CreatePostInput{Title: "T", Content: "C"})
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		if id <= last {
			t.Fatalf("expected strictly increasing ids, got %d after %d", id, last)
		}
		last = id
	}

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(posts) != 5 {
		t.Fatalf("expected 5 posts, got %d", len(posts))
	}
}

func TestNewsService_Update_KeepsImageWhenNoneSupplied(t *testing.T) {
	repo := newStubNewsRepo()
	remover := &stubRemover{}
	svc := NewNewsService(repo, remover, zerolog.Nop())

	repo.posts[1] = &domain.NewsPost{
		ID: 1, Title: "Old", Category: "General", Content: "Old body",
		ImagePath: "uploads/images/old.png", Author: "HR Team",
		Timestamp: time.Now().Add(-time.Hour),
	}
	repo.nextID = 1

	err := svc.Update(context.Background(), ports.UpdatePostInput{ID: 1, Title: "New", Category: "Events", Content: "New body"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	post := repo.posts[1]
	if post.ImagePath != "uploads/images/old.png" {
		t.Fatalf("imagePath changed: %q", post.ImagePath)
	}
	if len(remover.removed) != 0 {
		t.Fatalf("no file should have been removed, got %v", remover.removed)
	}
	if post.Title != "New" || post.Content != "New body" {
		t.Fatalf("fields not updated: %+v", post)
	}
}

func TestNewsService_Update_ReplacesImage(t *testing.T) {
	repo := newStubNewsRepo()
	remover := &stubRemover{}
	svc := NewNewsService(repo, remover, zerolog.Nop())

	repo.posts[1] = &domain.NewsPost{
		ID: 1, Title: "Old", Category: "General", Content: "Body",
		ImagePath: "uploads/images/old.png", Author: "HR Team",
	}
	repo.nextID = 1

	err := svc.Update(context.Background(), ports.UpdatePostInput{
		ID: 1, Title: "Old", Category: "General", Content: "Body",
		ImagePath: "uploads/images/new.png",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if repo.posts[1].ImagePath != "uploads/images/new.png" {
		t.Fatalf("imagePath not replaced: %q", repo.posts[1].ImagePath)
	}
	if len(remover.removed) != 1 || remover.removed[0] != "uploads/images/old.png" {
		t.Fatalf("old image not removed: %v", remover.removed)
	}
}

func TestNewsService_Update_RemoveFailureNotFatal(t *testing.T) {
	repo := newStubNewsRepo()
	remover := &stubRemover{err: errors.New("disk unhappy")}
	svc := NewNewsService(repo, remover, zerolog.Nop())

	repo.posts[1] = &domain.NewsPost{
		ID: 1, Title: "T", Category: "General", Content: "C",
		ImagePath: "uploads/images/old.png",
	}
	repo.nextID = 1

	err := svc.Update(context.Background(), ports.UpdatePostInput{
		ID: 1, Title: "T", Category: "General", Content: "C",
		ImagePath: "uploads/images/new.png",
	})
	if err != nil {
		t.Fatalf("cleanup failure must not fail the update: %v", err)
	}
}

func TestNewsService_Update_NotFound(t *testing.T) {
	svc := NewNewsService(newStubNewsRepo(), &stubRemover{}, zerolog.Nop())

	err := svc.Update(context.Background(), ports.UpdatePostInput{ID: 42, Title: "T", Content: "C"})
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestNewsService_Delete_RemovesRecordAndImage(t *testing.T) {
	repo := newStubNewsRepo()
	remover := &stubRemover{}
	svc := NewNewsService(repo, remover, zerolog.Nop())

	repo.posts[1] = &domain.NewsPost{ID: 1, Title: "T", Content: "C", ImagePath: "uploads/images/a.png"}
	repo.nextID = 1

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(remover.removed) != 1 || remover.removed[0] != "uploads/images/a.png" {
		t.Fatalf("image not removed: %v", remover.removed)
	}

	if _, err := repo.FindByID(context.Background(), 1); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound on second delete, got %v", err)
	}
}

func TestNewsService_List_NewestFirst(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, &stubRemover{}, zerolog.Nop())

	base := time.Now()
	for i := 0; i < 3; i++ {
		repo.nextID++
		repo.posts[repo.nextID] = &domain.NewsPost{
			ID: repo.nextID, Title: "T", Content: "C",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
	}

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].Timestamp.After(posts[i-1].Timestamp) {
			t.Fatalf("posts not ordered newest first")
		}
	}
}
