package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/strideline/routes-backend-go/internal/models"
	"github.com/strideline/routes-backend-go/internal/repository"
)

// ActivityService handles business logic for activities.
type ActivityService struct {
	repo *repository.ActivityRepository
}

// NewActivityService creates a new activity service.
func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// Ingest validates and stores an activity delivered by the sync
// pipeline.
func (s *ActivityService) Ingest(ctx context.Context, a *models.Activity) error {
	if a.ID == 0 {
		return fmt.Errorf("activity id is required")
	}
	if a.UserID == 0 {
		return fmt.Errorf("activity user id is required")
	}
	if a.StreamsData != "" && !json.Valid([]byte(a.StreamsData)) {
		return fmt.Errorf("streams data is not valid JSON")
	}

	return s.repo.Insert(ctx, a)
}

// GetByID retrieves a single activity, or nil when it does not exist.
func (s *ActivityService) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	return s.repo.GetByID(ctx, id)
}
