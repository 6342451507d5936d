package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dashboard/internal/model"
)

// ConnectionRepository defines connection persistence operations.
type ConnectionRepository interface {
	Create(ctx context.Context, conn *model.Connection) error
	// ListByUser returns the user's connections newest-first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Connection, error)
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository builds a GORM-backed repository.
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *model.Connection) error {
	return r.db.WithContext(ctx).Create(conn).Error
}

func (r *connectionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Connection, error) {
	var conns []model.Connection
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&conns).Error; err != nil {
		return nil, err
	}
	return conns, nil
}
