package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "dashboard/internal/errors"
	"dashboard/internal/model"
	"dashboard/internal/repository"
)

// CommunityService exposes community operations.
type CommunityService interface {
	CreateCommunity(ctx context.Context, creatorID uuid.UUID, name string) (*model.Community, error)
	// ListCommunities returns all communities newest-first.
	ListCommunities(ctx context.Context) ([]model.Community, error)
}

type communityService struct {
	communityRepo repository.CommunityRepository
	userRepo      repository.UserRepository
}

// NewCommunityService builds a CommunityService.
func NewCommunityService(communityRepo repository.CommunityRepository, userRepo repository.UserRepository) CommunityService {
	return &communityService{communityRepo: communityRepo, userRepo: userRepo}
}

// CreateCommunity stores a new community with the creator as its sole
// initial member.
func (s *communityService) CreateCommunity(ctx context.Context, creatorID uuid.UUID, name string) (*model.Community, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrValidation
	}

	creator, err := s.userRepo.FindByID(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("find creator: %w", err)
	}

	community := &model.Community{
		Name:    name,
		Members: []model.User{*creator},
	}
	if err := s.communityRepo.Create(ctx, community); err != nil {
		return nil, fmt.Errorf("create community: %w", err)
	}
	return community, nil
}

func (s *communityService) ListCommunities(ctx context.Context) ([]model.Community, error) {
	communities, err := s.communityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list communities: %w", err)
	}
	return communities, nil
}
