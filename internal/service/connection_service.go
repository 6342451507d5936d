package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	apperrors "dashboard/internal/errors"
	"dashboard/internal/geocode"
	"dashboard/internal/model"
	"dashboard/internal/repository"
)

// ConnectionService exposes connection operations.
type ConnectionService interface {
	CreateConnection(ctx context.Context, userID uuid.UUID, name, location string) (*model.Connection, error)
	// ListConnections returns the user's connections newest-first.
	ListConnections(ctx context.Context, userID uuid.UUID) ([]model.Connection, error)
}

type connectionService struct {
	connRepo repository.ConnectionRepository
	resolver geocode.Resolver
}

// NewConnectionService builds a ConnectionService with the repository and
// an injected geocoding resolver.
func NewConnectionService(connRepo repository.ConnectionRepository, resolver geocode.Resolver) ConnectionService {
	return &connectionService{connRepo: connRepo, resolver: resolver}
}

// CreateConnection geocodes the location and stores the connection.
// Geocoding failure is absorbed: the fixed fallback coordinate is stored
// and the failure is only logged.
func (s *connectionService) CreateConnection(ctx context.Context, userID uuid.UUID, name, location string) (*model.Connection, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(location) == "" {
		return nil, apperrors.ErrValidation
	}

	coords, err := s.resolver.Resolve(ctx, location)
	if err != nil {
		log.Printf("geocoding %q failed, using fallback coordinate: %v", location, err)
		coords = geocode.Fallback
	}

	conn := &model.Connection{
		Name:     name,
		Location: location,
		Lat:      coords.Lat,
		Lng:      coords.Lng,
		UserID:   userID,
	}
	if err := s.connRepo.Create(ctx, conn); err != nil {
		return nil, fmt.Errorf("create connection: %w", err)
	}
	return conn, nil
}

func (s *connectionService) ListConnections(ctx context.Context, userID uuid.UUID) ([]model.Connection, error) {
	conns, err := s.connRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}
	return conns, nil
}
