package repository

import (
	"context"

	"gorm.io/gorm"

	"dashboard/internal/model"
)

// CommunityRepository defines community persistence operations.
type CommunityRepository interface {
	// Create persists the community together with its member associations.
	Create(ctx context.Context, community *model.Community) error
	// List returns all communities newest-first with members preloaded.
	List(ctx context.Context) ([]model.Community, error)
}

type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository builds a GORM-backed repository.
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(ctx context.Context, community *model.Community) error {
	return r.db.WithContext(ctx).Create(community).Error
}

func (r *communityRepository) List(ctx context.Context) ([]model.Community, error) {
	var communities []model.Community
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Order("created_at DESC, id DESC").
		Find(&communities).Error; err != nil {
		return nil, err
	}
	return communities, nil
}
