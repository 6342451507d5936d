package service

import (
	"context"
	"fmt"
	"strings"

	"dashboard/internal/model"
	"dashboard/internal/repository"
)

// SearchResults groups matches per entity type.
type SearchResults struct {
	Users       []model.User      `json:"users"`
	Posts       []model.PostView  `json:"posts"`
	Communities []model.Community `json:"communities"`
}

// SearchService performs a case-insensitive substring search across user
// names, post texts and community names. The corpus is loaded and scanned
// linearly per call; there is no index.
type SearchService interface {
	// Search returns nil results for an empty or whitespace-only query
	// ("no active search"), which is distinct from a search with zero
	// matches.
	Search(ctx context.Context, query string) (*SearchResults, error)
}

type searchService struct {
	userRepo      repository.UserRepository
	postRepo      repository.PostRepository
	communityRepo repository.CommunityRepository
}

// NewSearchService builds a SearchService over the three repositories.
func NewSearchService(userRepo repository.UserRepository, postRepo repository.PostRepository, communityRepo repository.CommunityRepository) SearchService {
	return &searchService{
		userRepo:      userRepo,
		postRepo:      postRepo,
		communityRepo: communityRepo,
	}
}

func (s *searchService) Search(ctx context.Context, query string) (*SearchResults, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	needle := strings.ToLower(query)

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	communities, err := s.communityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load communities: %w", err)
	}

	results := &SearchResults{
		Users:       []model.User{},
		Posts:       []model.PostView{},
		Communities: []model.Community{},
	}
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			results.Users = append(results.Users, u)
		}
	}
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Text), needle) {
			results.Posts = append(results.Posts, newPostView(p))
		}
	}
	for _, c := range communities {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			results.Communities = append(results.Communities, c)
		}
	}
	return results, nil
}
