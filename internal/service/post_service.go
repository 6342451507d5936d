package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dashboard/internal/cache"
	apperrors "dashboard/internal/errors"
	"dashboard/internal/model"
	"dashboard/internal/repository"
)

const (
	authorNameCacheTTL = 5 * time.Minute

	// UnknownAuthor is the display name substituted when a post's author
	// no longer resolves to a user.
	UnknownAuthor = "Unknown"
)

// PostService exposes post operations.
type PostService interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, text string) (*model.PostView, error)
	// ListPosts returns all posts newest-first with author names resolved.
	ListPosts(ctx context.Context) ([]model.PostView, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewPostService builds a PostService with repositories and cache.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, cache *cache.Client) PostService {
	return &postService{postRepo: postRepo, userRepo: userRepo, cache: cache}
}

func authorNameCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("author_name:%s", id)
}

// CreatePost stores a new post. Text must be non-empty.
func (s *postService) CreatePost(ctx context.Context, authorID uuid.UUID, text string) (*model.PostView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrValidation
	}

	post := &model.Post{
		Text:     text,
		AuthorID: authorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	view := newPostView(*post)
	view.AuthorName = s.resolveAuthorName(ctx, authorID)
	return &view, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]model.PostView, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	views := make([]model.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, newPostView(post))
	}
	return views, nil
}

// resolveAuthorName looks up a user's display name, consulting the cache
// first. Unresolvable authors yield the placeholder rather than an error.
func (s *postService) resolveAuthorName(ctx context.Context, authorID uuid.UUID) string {
	key := authorNameCacheKey(authorID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var name string
		if err := json.Unmarshal(data, &name); err == nil && name != "" {
			return name
		}
	}

	user, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil || user.Name == "" {
		return UnknownAuthor
	}

	if payload, err := json.Marshal(user.Name); err == nil {
		_ = s.cache.Set(ctx, key, payload, authorNameCacheTTL)
	}
	return user.Name
}

// newPostView maps a post (with its preloaded author, if any) to the read
// model, substituting the placeholder for unresolvable authors.
func newPostView(post model.Post) model.PostView {
	name := post.Author.Name
	if name == "" {
		name = UnknownAuthor
	}
	return model.PostView{
		ID:         post.ID,
		Text:       post.Text,
		AuthorID:   post.AuthorID,
		AuthorName: name,
		CreatedAt:  post.CreatedAt,
	}
}
