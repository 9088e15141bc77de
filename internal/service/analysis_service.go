package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/strideline/routes-backend-go/internal/analysis"
	"github.com/strideline/routes-backend-go/internal/models"
	"github.com/strideline/routes-backend-go/internal/repository"
)

// ActivityAnalysis bundles the closed-form analytics computed for one
// activity. Either part may be nil when the activity lacks the data it
// needs.
type ActivityAnalysis struct {
	RacePredictions []analysis.RacePrediction `json:"racePredictions,omitempty"`
	Cadence         *analysis.CadenceAnalysis `json:"cadence,omitempty"`
}

// AnalysisService computes per-activity analytics.
type AnalysisService struct {
	log        *zap.Logger
	activities *repository.ActivityRepository
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(log *zap.Logger, activities *repository.ActivityRepository) *AnalysisService {
	return &AnalysisService{log: log, activities: activities}
}

// AnalyzeActivity returns race predictions and cadence analysis for an
// activity, or nil when the activity does not exist. Missing streams or
// an unusable effort degrade to empty sections, not errors.
func (s *AnalysisService) AnalyzeActivity(ctx context.Context, activityID int64) (*ActivityAnalysis, error) {
	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, nil
	}

	result := &ActivityAnalysis{
		RacePredictions: analysis.PredictRaceTimes(activity.Distance, time.Duration(activity.MovingTime)*time.Second),
	}

	if activity.StreamsData != "" {
		var streams models.StreamSet
		if err := json.Unmarshal([]byte(activity.StreamsData), &streams); err != nil {
			s.log.Warn("failed to parse streams data for analysis",
				zap.Int64("activityId", activityID), zap.Error(err))
		} else if streams.Cadence != nil {
			result.Cadence = analysis.AnalyzeCadence(streams.Cadence.Data)
		}
	}

	return result, nil
}
